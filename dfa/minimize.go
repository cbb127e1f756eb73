package dfa

import (
	"strconv"
	"strings"

	"github.com/coregx/sigmatch/alphabet"
)

// Minimize runs signature-refinement partitioning (Moore's algorithm) over
// a completed automaton a and returns the minimal automaton accepting the
// same language. a must already be complete (Complete's result) — every
// reachable state must have full Σ coverage, which Minimize relies on to
// read a defined target for every alphabet position on every state.
//
// Class ids are assigned by first-seen order among distinct signatures
// each round; this reaches the same fixed-point partition as a
// radix-encoded numbering would, with simpler bookkeeping.
func Minimize(a *Automaton) *Automaton {
	n := a.Len()
	order := a.Alphabet().Ordered()

	class := make([]int, n)
	for i := 0; i < n; i++ {
		if a.nodes[i].final {
			class[i] = 1
		} else {
			class[i] = 0
		}
	}

	for {
		seen := make(map[string]int)
		next := make([]int, n)
		nextClassID := 0
		for i := 0; i < n; i++ {
			sig := signature(a, ID(i), class, order)
			c, ok := seen[sig]
			if !ok {
				c = nextClassID
				seen[sig] = c
				nextClassID++
			}
			next[i] = c
		}
		if equalPartition(class, next) {
			break
		}
		class = next
	}

	return rebuild(a, class)
}

// transitionFor reads node's target under label l using the deterministic
// read contract: an explicit entry for l if present, else the entry for Σ.
// Reading the Σ position itself is just the node's own Σ entry (there is
// nothing further to fall back to).
func transitionFor(node *Node, l alphabet.Label) (ID, bool) {
	if l.IsSigma() {
		t, ok := node.trans[alphabet.SigmaLabel]
		return t, ok
	}
	if t, ok := node.trans[l]; ok {
		return t, true
	}
	t, ok := node.trans[alphabet.SigmaLabel]
	return t, ok
}

// signature encodes state id's current class plus, for every alphabet
// position, the current class of the state reached under that label. Two
// states with identical signatures are indistinguishable this round and
// merge into the same next-round class.
func signature(a *Automaton, id ID, class []int, order []alphabet.Label) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(class[id]))
	node := &a.nodes[id]
	for _, l := range order {
		b.WriteByte('|')
		if t, ok := transitionFor(node, l); ok {
			b.WriteString(strconv.Itoa(class[t]))
		} else {
			b.WriteByte('-') // "no transition" marker; unreachable once a is complete
		}
	}
	return b.String()
}

func equalPartition(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// rebuild constructs the minimized automaton: one fresh node per distinct
// class, preserving finality and remapping every transition target
// through class.
func rebuild(a *Automaton, class []int) *Automaton {
	numClasses := 0
	for _, c := range class {
		if c+1 > numClasses {
			numClasses = c + 1
		}
	}

	nodes := make([]Node, numClasses)
	for i := range nodes {
		nodes[i] = Node{id: ID(i), trans: make(map[alphabet.Label]ID)}
	}
	for i := 0; i < a.Len(); i++ {
		c := class[i]
		nodes[c].final = nodes[c].final || a.nodes[i].final
		for l, target := range a.nodes[i].trans {
			nodes[c].trans[l] = ID(class[target])
		}
	}

	out := &Automaton{
		nodes:   nodes,
		initial: ID(class[a.initial]),
	}
	if trap, ok := a.TrapID(); ok {
		out.trapID = ID(class[trap])
		out.hasTrap = true
	}
	return out
}
