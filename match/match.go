// Package match implements the matching modes over a completed or
// minimized DFA: full-string accept/reject, lazy prefix, greedy prefix,
// plus the peeking greedy variant an external tokenizer can use to
// disambiguate a token boundary.
//
// The matcher never fails: Match returns a bool, the Read* functions
// return 0 to mean "no prefix matched". Internally each walks the state
// machine {scanning, trapped, doneAccept, doneReject}, breaking out of the
// scan the instant the trap is entered since the trap is absorbing and
// never final.
package match

import (
	"unicode/utf8"

	"github.com/coregx/sigmatch/dfa"
)

// Match reports whether s is accepted in full: advance by Read on every
// codepoint, rejecting immediately if the trap is entered, accepting at
// end-of-input iff the final state is accepting.
func Match(a *dfa.Automaton, s string) bool {
	state := a.Initial()
	for _, c := range s {
		next, ok := a.Read(state, c)
		if !ok || a.IsTrap(next) {
			return false
		}
		state = next
	}
	return a.Node(state).Final()
}

// ReadLazy returns the length, in bytes, of the shortest prefix of s at
// which the automaton is in a final state. If the trap is entered before
// any final state is reached, it returns 0.
func ReadLazy(a *dfa.Automaton, s string) int {
	state := a.Initial()
	if a.Node(state).Final() {
		return 0
	}
	pos := 0
	for _, c := range s {
		next, ok := a.Read(state, c)
		if !ok || a.IsTrap(next) {
			return 0
		}
		state = next
		pos += utf8.RuneLen(c)
		if a.Node(state).Final() {
			return pos
		}
	}
	return 0
}

// ReadGreedy returns the length, in bytes, of the longest prefix of s at
// which the automaton was ever in a final state, 0 if none. It advances
// while neither trapped nor exhausted, remembering the largest such
// prefix length.
func ReadGreedy(a *dfa.Automaton, s string) int {
	state := a.Initial()
	best := -1
	if a.Node(state).Final() {
		best = 0
	}
	pos := 0
	for _, c := range s {
		next, ok := a.Read(state, c)
		if !ok || a.IsTrap(next) {
			break
		}
		state = next
		pos += utf8.RuneLen(c)
		if a.Node(state).Final() {
			best = pos
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

// ReadGreedyFollow is ReadGreedy with one symbol of lookahead: a visited
// final state only counts as a candidate if at least one follower
// automaton's start state accepts the next input codepoint (or the input
// is exhausted, leaving nothing to disambiguate against). This is the
// tokenizer-facing peeking variant: public automaton surface, not a
// pipeline stage of its own.
func ReadGreedyFollow(a *dfa.Automaton, s string, followers []*dfa.Automaton) int {
	rs := []rune(s)
	offsets := make([]int, len(rs)+1)
	for i, r := range rs {
		offsets[i+1] = offsets[i] + utf8.RuneLen(r)
	}

	state := a.Initial()
	best := -1
	if a.Node(state).Final() && followOK(rs, 0, followers) {
		best = offsets[0]
	}
	for i := 0; i < len(rs); i++ {
		next, ok := a.Read(state, rs[i])
		if !ok || a.IsTrap(next) {
			break
		}
		state = next
		pos := i + 1
		if a.Node(state).Final() && followOK(rs, pos, followers) {
			best = offsets[pos]
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

// followOK reports whether the codepoint at rs[pos] (or end-of-input) is
// consistent with at least one follower's start set.
func followOK(rs []rune, pos int, followers []*dfa.Automaton) bool {
	if len(followers) == 0 {
		return true
	}
	if pos >= len(rs) {
		return true
	}
	next := rs[pos]
	for _, f := range followers {
		if f == nil {
			continue
		}
		target, ok := f.Read(f.Initial(), next)
		if ok && !f.IsTrap(target) {
			return true
		}
	}
	return false
}
