// Package sigmatch compiles a small regular-expression grammar into a
// finite automaton and matches strings against it.
//
// The pipeline is, leaf to root: a pattern expander rewrites the extended
// surface syntax ([...], ranges, \s \d \w, '.', '?') into the canonical
// core grammar (|, *, (), \, Σ, ε); a recursive-descent parser drives a
// Thompson construction into an NFA; subset construction determinizes the
// NFA into a DFA; completion adds a trap sink so every read is total;
// minimization collapses the completed DFA to the fewest states accepting
// the same language.
//
// Compiled automata are immutable and safe to use concurrently from
// multiple goroutines.
//
// Example:
//
//	re, err := sigmatch.Compile(`a(b|c)d`, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.Match("abd") // true
package sigmatch

import (
	"fmt"
	"strings"

	"github.com/coregx/sigmatch/dfa"
	"github.com/coregx/sigmatch/expand"
	"github.com/coregx/sigmatch/match"
	"github.com/coregx/sigmatch/parse"
)

// Flags controls compilation behavior.
type Flags uint8

// FlagIgnoreCase makes every literal ASCII-letter transition also accept
// the opposite case.
const FlagIgnoreCase Flags = 1 << 0

// SyntaxError is raised when a pattern cannot be compiled: an unmatched
// parenthesis, a '*' with no preceding atom, a trailing '\', an
// unterminated '[', an invalid range, or an unsupported feature — all
// reported under the single Kind "pattern-syntax". It carries a 0-indexed
// rune position and a ±3-character snippet. For errors found while
// expanding ('[' and range errors) they refer to the source pattern; for
// errors found while parsing they refer to the expanded canonical pattern,
// and are not mapped back to the source, which differs wherever a class,
// shorthand, '.' or '?' was rewritten.
type SyntaxError struct {
	Pos     int
	Snippet string
	Kind    string
	Err     error
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %v (position %d, near %q)", e.Kind, e.Err, e.Pos, e.Snippet)
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *SyntaxError) Unwrap() error { return e.Err }

func wrapExpandErr(err error) *SyntaxError {
	if ee, ok := err.(*expand.Error); ok {
		return &SyntaxError{Pos: ee.Pos, Snippet: ee.Snippet, Kind: "pattern-syntax", Err: ee}
	}
	return &SyntaxError{Kind: "pattern-syntax", Err: err}
}

func wrapParseErr(err error) *SyntaxError {
	if pe, ok := err.(*parse.Error); ok {
		return &SyntaxError{Pos: pe.Pos, Snippet: pe.Snippet, Kind: "pattern-syntax", Err: pe}
	}
	return &SyntaxError{Kind: "pattern-syntax", Err: err}
}

// Automaton is a compiled regular expression: the minimized, completed DFA
// produced by the pipeline, plus the source pattern it was compiled from.
//
// An Automaton is safe to use concurrently from multiple goroutines once
// Compile returns it — it carries no mutable state after construction.
type Automaton struct {
	dfa     *dfa.Automaton
	pattern string
}

// Pattern returns the source pattern the Automaton was compiled from.
func (a *Automaton) Pattern() string { return a.pattern }

// Compile runs the full pipeline over pattern: expand, parse + Thompson
// build, subset construction, completion, minimization. An empty pattern
// compiles successfully to an automaton accepting only the empty string.
func Compile(pattern string, flags Flags) (*Automaton, error) {
	canonical, err := expand.Expand(pattern)
	if err != nil {
		return nil, wrapExpandErr(err)
	}

	n, err := parse.Parse(canonical, parse.Flags(flags))
	if err != nil {
		return nil, wrapParseErr(err)
	}

	d := dfa.Determinize(n)
	d = dfa.Complete(d)
	d = dfa.Minimize(d)

	return &Automaton{dfa: d, pattern: pattern}, nil
}

// MustCompile is Compile but panics instead of returning an error, for
// patterns known to be valid at compile time.
func MustCompile(pattern string, flags Flags) *Automaton {
	a, err := Compile(pattern, flags)
	if err != nil {
		panic(err)
	}
	return a
}

// Match reports whether s is accepted in full.
func (a *Automaton) Match(s string) bool {
	return match.Match(a.dfa, s)
}

// Mismatch is the complement of Match. An inverted-automaton stage isn't
// needed to compute it — !Match(s) already is the complement — so it is
// exposed here as a one-line convenience rather than built out.
func (a *Automaton) Mismatch(s string) bool {
	return !a.Match(s)
}

// ReadLazy returns the length, in bytes, of the shortest accepting prefix
// of s, or 0 if none exists.
func (a *Automaton) ReadLazy(s string) int {
	return match.ReadLazy(a.dfa, s)
}

// ReadGreedy returns the length, in bytes, of the longest accepting prefix
// of s, or 0 if none exists.
func (a *Automaton) ReadGreedy(s string) int {
	return match.ReadGreedy(a.dfa, s)
}

// ReadGreedyFollow is ReadGreedy with one codepoint of lookahead against a
// set of follower automata: a visited final state only counts if at least
// one follower accepts the next codepoint, or input is exhausted. This is
// the tokenizer-facing peeking variant used to disambiguate a maximal-munch
// token boundary from what could legally follow it.
func (a *Automaton) ReadGreedyFollow(s string, followers ...*Automaton) int {
	fs := make([]*dfa.Automaton, len(followers))
	for i, f := range followers {
		fs[i] = f.dfa
	}
	return match.ReadGreedyFollow(a.dfa, s, fs)
}

// metaRunes is the set of runes that carry special meaning somewhere in
// the surface or canonical grammar: the canonical metacharacters plus the
// surface aliases '.', '?', and the class opener '['.
const metaRunes = "*\\|()Σε.?["

// Escape returns t with a backslash prefixed to every rune that would
// otherwise be read as a metacharacter, so that
// Compile(Escape(t), 0).Match(t) is always true and Compile(Escape(t),
// 0).Match(s) is false for every s != t.
func Escape(t string) string {
	var b strings.Builder
	for _, r := range t {
		if strings.ContainsRune(metaRunes, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
