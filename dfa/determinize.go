package dfa

import (
	"github.com/coregx/sigmatch/alphabet"
	"github.com/coregx/sigmatch/internal/idset"
	"github.com/coregx/sigmatch/nfa"
)

// Determinize runs subset construction over n and returns the resulting
// DFA. The DFA is not yet complete: a reachable state whose NFA
// subset has no Σ member and no transition for some symbol simply has no
// entry for that symbol, until Complete runs.
func Determinize(n *nfa.NFA) *Automaton {
	frozenToID := make(map[idset.Frozen]ID)
	frozenSet := make(map[idset.Frozen][]nfa.ID)
	var nodes []Node

	startClosure := n.Closure([]nfa.ID{n.Initial()})
	startIDs := startClosure.Slice()
	startFrozen := startClosure.Freeze()

	startID := ID(0)
	frozenToID[startFrozen] = startID
	frozenSet[startFrozen] = toNFAIDs(startIDs)
	nodes = append(nodes, Node{
		id:    startID,
		final: anyFinal(n, toNFAIDs(startIDs)),
		trans: make(map[alphabet.Label]ID),
	})

	worklist := []idset.Frozen{startFrozen}
	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		curID := frozenToID[cur]
		curSet := frozenSet[cur]

		al := alphabet.New()
		for _, id := range curSet {
			for _, l := range n.Node(id).Labels() {
				if !l.IsEpsilon() {
					al.Add(l)
				}
			}
		}

		for _, l := range al.Ordered() {
			var frontier []nfa.ID
			for _, id := range curSet {
				node := n.Node(id)
				frontier = append(frontier, node.Targets(l)...)
				if l.IsConcrete() {
					// An NFA Σ edge also reads every concrete symbol, so its
					// targets join the concrete label's frontier.
					frontier = append(frontier, node.Targets(alphabet.SigmaLabel)...)
				}
			}
			if len(frontier) == 0 {
				continue
			}
			closure := n.Closure(frontier)
			frozen := closure.Freeze()
			targetID, exists := frozenToID[frozen]
			if !exists {
				ids := toNFAIDs(closure.Slice())
				targetID = ID(len(nodes))
				frozenToID[frozen] = targetID
				frozenSet[frozen] = ids
				nodes = append(nodes, Node{
					id:    targetID,
					final: anyFinal(n, ids),
					trans: make(map[alphabet.Label]ID),
				})
				worklist = append(worklist, frozen)
			}
			nodes[curID].trans[l] = targetID
		}
	}

	return &Automaton{nodes: nodes, initial: startID}
}

func toNFAIDs(raw []uint32) []nfa.ID {
	out := make([]nfa.ID, len(raw))
	for i, id := range raw {
		out[i] = nfa.ID(id)
	}
	return out
}

func anyFinal(n *nfa.NFA, ids []nfa.ID) bool {
	for _, id := range ids {
		if n.Node(id).Final() {
			return true
		}
	}
	return false
}
