// Package dfa implements the deterministic automaton stages of the
// pipeline: subset construction (NFA → DFA), completion with a trap sink,
// and minimization by signature refinement.
package dfa

import "github.com/coregx/sigmatch/alphabet"

// ID identifies a DFA node, unique within one Automaton.
type ID uint32

// Node is a single deterministic state: a finality flag and a transition
// table mapping each label to exactly one target. The table never carries
// an Epsilon entry. A Σ entry, when present, is the default target for any
// concrete symbol with no explicit entry.
type Node struct {
	id    ID
	final bool
	trans map[alphabet.Label]ID
}

// ID returns the node's identifier.
func (n *Node) ID() ID { return n.id }

// Final reports whether n is an accepting state.
func (n *Node) Final() bool { return n.final }

// Automaton is a deterministic finite automaton: an arena of Nodes plus a
// distinguished initial node. Once Complete has run over it, reading any
// codepoint from any reachable node is total.
type Automaton struct {
	nodes   []Node
	initial ID
	trapID  ID
	hasTrap bool
}

// Initial returns the automaton's initial node id.
func (a *Automaton) Initial() ID { return a.initial }

// Node returns the node for id.
func (a *Automaton) Node(id ID) *Node { return &a.nodes[id] }

// Len returns the number of nodes.
func (a *Automaton) Len() int { return len(a.nodes) }

// TrapID returns the shared trap state's id and whether the automaton has
// been completed (and therefore has one). Reading the trap state again
// under any symbol always returns the trap state.
func (a *Automaton) TrapID() (ID, bool) { return a.trapID, a.hasTrap }

// IsTrap reports whether id names the shared trap state.
func (a *Automaton) IsTrap(id ID) bool { return a.hasTrap && id == a.trapID }

// Read returns the target reached from state on codepoint c: the target of
// c's own transition if present, else the target of Σ if present, else
// (0, false) — "no transition," undefined on an incomplete DFA and never
// occurring on a completed one.
func (a *Automaton) Read(state ID, c rune) (ID, bool) {
	n := &a.nodes[state]
	if t, ok := n.trans[alphabet.Char(c)]; ok {
		return t, true
	}
	if t, ok := n.trans[alphabet.SigmaLabel]; ok {
		return t, true
	}
	return 0, false
}

// Alphabet returns the union of concrete labels appearing on any node's
// transition table, Σ included when present on at least one node.
func (a *Automaton) Alphabet() *alphabet.Alphabet {
	al := alphabet.New()
	for i := range a.nodes {
		for l := range a.nodes[i].trans {
			al.Add(l)
		}
	}
	return al
}
