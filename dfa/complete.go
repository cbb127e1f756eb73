package dfa

import "github.com/coregx/sigmatch/alphabet"

// Complete adds a shared trap state to a and a Σ edge from every state
// lacking one, so that Read becomes total. The trap is non-final with a Σ
// self-loop. All states produced by Determinize are reachable from the
// initial state by construction, so no separate reachability walk is
// needed before deciding which states need the edge.
func Complete(a *Automaton) *Automaton {
	nodes := make([]Node, len(a.nodes)+1)
	for i := range a.nodes {
		trans := make(map[alphabet.Label]ID, len(a.nodes[i].trans))
		for l, t := range a.nodes[i].trans {
			trans[l] = t
		}
		nodes[i] = Node{id: a.nodes[i].id, final: a.nodes[i].final, trans: trans}
	}

	trapID := ID(len(a.nodes))
	nodes[trapID] = Node{
		id:    trapID,
		final: false,
		trans: map[alphabet.Label]ID{alphabet.SigmaLabel: trapID},
	}

	for i := range nodes[:trapID] {
		if _, ok := nodes[i].trans[alphabet.SigmaLabel]; !ok {
			nodes[i].trans[alphabet.SigmaLabel] = trapID
		}
	}

	return &Automaton{
		nodes:   nodes,
		initial: a.initial,
		trapID:  trapID,
		hasTrap: true,
	}
}
