package main

import (
	"github.com/coregx/ahocorasick"
)

// extractLiterals recognizes a pattern that is a bare top-level
// alternation of at least two plain literal runs, each at least 2 bytes
// long (ab|cd|efg, no nested groups, stars, Σ/ε, or surface '.', '?',
// '[' and \s \d \w), and returns those runs. It is a line-skipping
// heuristic only — every line it keeps still runs through the full
// compiled automaton — so it is conservative: anything that isn't
// obviously a flat literal alternation returns nil and the prefilter is
// skipped.
func extractLiterals(pattern string) []string {
	parts := splitTopLevelAlt(pattern)
	if len(parts) < 2 {
		return nil
	}
	literals := make([]string, 0, len(parts))
	for _, p := range parts {
		lit, ok := plainLiteral(p)
		if !ok || len(lit) < 2 {
			return nil
		}
		literals = append(literals, lit)
	}
	return literals
}

// splitTopLevelAlt splits pattern on '|' that appears outside any
// parenthesized group, preserving escape pairs.
func splitTopLevelAlt(pattern string) []string {
	rs := []rune(pattern)
	depth := 0
	var parts []string
	var cur []rune
	for i := 0; i < len(rs); i++ {
		switch rs[i] {
		case '(':
			depth++
			cur = append(cur, rs[i])
		case ')':
			depth--
			cur = append(cur, rs[i])
		case '|':
			if depth == 0 {
				parts = append(parts, string(cur))
				cur = nil
				continue
			}
			cur = append(cur, rs[i])
		case '\\':
			cur = append(cur, rs[i])
			if i+1 < len(rs) {
				cur = append(cur, rs[i+1])
				i++
			}
		default:
			cur = append(cur, rs[i])
		}
	}
	parts = append(parts, string(cur))
	return parts
}

// plainLiteral reports whether s contains no structural metacharacter
// (unescaped) of the canonical or surface grammar and no \s \d \w
// shorthand, returning its unescaped literal text.
func plainLiteral(s string) (string, bool) {
	rs := []rune(s)
	out := make([]rune, 0, len(rs))
	for i := 0; i < len(rs); i++ {
		switch rs[i] {
		case '\\':
			if i+1 >= len(rs) {
				return "", false
			}
			if next := rs[i+1]; next == 's' || next == 'd' || next == 'w' {
				return "", false
			}
			out = append(out, rs[i+1])
			i++
		case '*', '|', '(', ')', 'Σ', 'ε', '.', '?', '[':
			return "", false
		default:
			out = append(out, rs[i])
		}
	}
	return string(out), true
}

// buildPrefilter compiles an Aho-Corasick automaton over pattern's literal
// alternatives: before running the full engine on every line, skip lines
// that contain none of the required literals. Returns nil, false when
// pattern isn't a flat literal alternation worth prefiltering.
func buildPrefilter(pattern string) (*ahocorasick.Automaton, bool) {
	literals := extractLiterals(pattern)
	if len(literals) < 2 {
		return nil, false
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern([]byte(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, false
	}
	return auto, true
}
