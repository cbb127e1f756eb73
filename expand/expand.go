// Package expand rewrites the extended surface regex syntax (character
// classes, ranges, \s \d \w shorthands, '.', '?') into the canonical core
// grammar consumed by package parse: only CHAR, \CHAR, Σ, ε, |, *, ( ).
//
// Rules are applied left to right with a two-character lookahead window;
// nothing here understands alternation or concatenation structure — that
// is parse's job.
package expand

import "strings"

// metachars is the canonical grammar's metacharacter set: any other rune
// is literal.
const metachars = "*\\|()Σε"

// IsMeta reports whether r is a canonical-grammar metacharacter.
func IsMeta(r rune) bool {
	return strings.ContainsRune(metachars, r)
}

// digitRange and wordRanges realize \d and \w as literal alternations over
// their constituent ranges.
var digitRange = [2]rune{'0', '9'}

var wordRanges = [][2]rune{
	{'a', 'z'},
	{'A', 'Z'},
	{'0', '9'},
}

// Expand rewrites pattern (extended surface syntax) into the canonical core
// grammar. It never consults pattern structure beyond the two-character
// lookahead needed to recognize a shorthand or escape; unmatched classes or
// malformed ranges fail with an *Error carrying a position in pattern and a
// short snippet.
func Expand(pattern string) (string, error) {
	src := []rune(pattern)
	var out strings.Builder
	i := 0
	for i < len(src) {
		r := src[i]
		switch {
		case r == '\\':
			// Outside a class, \x is preserved verbatim; the parser
			// consumes the escape itself.
			if i+1 >= len(src) {
				// Let the parser report the dangling backslash; expand
				// just passes it through.
				out.WriteRune(r)
				i++
				continue
			}
			next := src[i+1]
			switch next {
			case 's':
				out.WriteString("( |\n|\r|\t)")
				i += 2
			case 'd':
				out.WriteString(classFromRanges([][2]rune{digitRange}))
				i += 2
			case 'w':
				out.WriteString(classFromRangesWithExtra(wordRanges, '_'))
				i += 2
			default:
				out.WriteRune(r)
				out.WriteRune(next)
				i += 2
			}
		case r == '.':
			out.WriteRune('Σ')
			i++
		case r == '?':
			out.WriteRune('ε')
			i++
		case r == '[':
			body, consumed, err := expandClass(src, i)
			if err != nil {
				return "", err
			}
			out.WriteString(body)
			i += consumed
		default:
			// A top-level literal never collides with the canonical
			// metacharacters: the only ways to produce one are \x (handled
			// above) and a [...] class member (handled by writeLiteral in
			// expandClass/classFromRanges). Anything reaching here passes
			// through unchanged.
			out.WriteRune(r)
			i++
		}
	}
	return out.String(), nil
}

// writeLiteral emits a class-member rune into the canonical output,
// auto-escaping it if it happens to collide with a canonical
// metacharacter, so it survives as a literal through the canonical parser.
func writeLiteral(out *strings.Builder, r rune) {
	if IsMeta(r) {
		out.WriteByte('\\')
	}
	out.WriteRune(r)
}

// classFromRanges renders an inclusive-range set as a canonical
// alternation, e.g. [('0','9')] -> "(0|1|2|...|9)".
func classFromRanges(ranges [][2]rune) string {
	var b strings.Builder
	b.WriteByte('(')
	first := true
	for _, rg := range ranges {
		for r := rg[0]; r <= rg[1]; r++ {
			if !first {
				b.WriteByte('|')
			}
			first = false
			writeLiteral(&b, r)
		}
	}
	b.WriteByte(')')
	return b.String()
}

// classFromRangesWithExtra is classFromRanges plus one extra literal
// alternative appended at the end (used for \w's trailing '_').
func classFromRangesWithExtra(ranges [][2]rune, extra rune) string {
	var b strings.Builder
	b.WriteByte('(')
	first := true
	for _, rg := range ranges {
		for r := rg[0]; r <= rg[1]; r++ {
			if !first {
				b.WriteByte('|')
			}
			first = false
			writeLiteral(&b, r)
		}
	}
	if !first {
		b.WriteByte('|')
	}
	writeLiteral(&b, extra)
	b.WriteByte(')')
	return b.String()
}

// classToken is one literal-or-range entry inside a [...] class.
type classToken struct {
	lo, hi rune
}

// expandClass rewrites the '[' at src[start] (through its matching ']')
// into a canonical alternation and returns how many runes of src it
// consumed.
func expandClass(src []rune, start int) (string, int, error) {
	i := start + 1
	var tokens []classToken
	for {
		if i >= len(src) {
			return "", 0, newError(src, start, ErrUnterminatedClass)
		}
		if src[i] == ']' {
			i++
			break
		}

		var lo rune
		if src[i] == '\\' {
			if i+1 >= len(src) {
				return "", 0, newError(src, i, ErrUnterminatedClass)
			}
			lo = src[i+1]
			i += 2
		} else {
			lo = src[i]
			i++
		}

		// Range? a '-' followed by something other than the closing
		// bracket introduces an inclusive range.
		if i < len(src) && src[i] == '-' && i+1 < len(src) && src[i+1] != ']' {
			j := i + 1
			var hi rune
			if src[j] == '\\' {
				if j+1 >= len(src) {
					return "", 0, newError(src, j, ErrUnterminatedClass)
				}
				hi = src[j+1]
				j += 2
			} else {
				hi = src[j]
				j++
			}
			if hi < lo {
				return "", 0, newError(src, i, ErrInvalidRange)
			}
			tokens = append(tokens, classToken{lo, hi})
			i = j
			continue
		}

		tokens = append(tokens, classToken{lo, lo})
	}

	var b strings.Builder
	b.WriteByte('(')
	first := true
	for _, tok := range tokens {
		for r := tok.lo; r <= tok.hi; r++ {
			if !first {
				b.WriteByte('|')
			}
			first = false
			writeLiteral(&b, r)
		}
	}
	b.WriteByte(')')
	return b.String(), i - start, nil
}
