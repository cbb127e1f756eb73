// Package nfa implements the nondeterministic finite automaton produced by
// Thompson construction: ε-transitions are permitted and a single label may
// fan out to several target states.
package nfa

import "github.com/coregx/sigmatch/alphabet"

// ID identifies an NFA node. Ids are assigned sequentially starting at 0
// within a single compilation; they are stable for the lifetime of the NFA
// but meaningless across separate compilations.
type ID uint32

// Node is a single NFA state: a finality flag and a transition table
// mapping each label to the (possibly multi-valued) set of targets reached
// under that label. The table may contain an Epsilon entry and may list
// more than one target for the same label — both forbidden on a dfa.Node.
type Node struct {
	id    ID
	final bool
	trans map[alphabet.Label][]ID
}

// ID returns the node's identifier.
func (n *Node) ID() ID { return n.id }

// Final reports whether n is an accepting state.
func (n *Node) Final() bool { return n.final }

// Targets returns the targets reached from n under label l, or nil if n has
// no transition on l.
func (n *Node) Targets(l alphabet.Label) []ID {
	return n.trans[l]
}

// Labels returns every label n has an explicit transition for, including
// Epsilon when present.
func (n *Node) Labels() []alphabet.Label {
	out := make([]alphabet.Label, 0, len(n.trans))
	for l := range n.trans {
		out = append(out, l)
	}
	return out
}

// NFA is an arena of Nodes plus a distinguished initial node. It is
// immutable once construction (package parse, via Builder) completes.
type NFA struct {
	nodes   []Node
	initial ID
}

// Initial returns the NFA's initial node id.
func (n *NFA) Initial() ID { return n.initial }

// Node returns the node for id.
func (n *NFA) Node(id ID) *Node { return &n.nodes[id] }

// Len returns the number of nodes in the NFA.
func (n *NFA) Len() int { return len(n.nodes) }

// Alphabet returns the union of non-ε labels appearing on any reachable
// transition, Σ included as a distinguished member when present.
func (n *NFA) Alphabet() *alphabet.Alphabet {
	a := alphabet.New()
	for i := range n.nodes {
		for l := range n.nodes[i].trans {
			if !l.IsEpsilon() {
				a.Add(l)
			}
		}
	}
	return a
}
