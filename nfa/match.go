package nfa

import (
	"github.com/coregx/sigmatch/alphabet"
	"github.com/coregx/sigmatch/internal/idset"
)

// Closure computes the ε-closure of frontier: repeated union of ε-targets
// until a fixed point.
func (n *NFA) Closure(frontier []ID) *idset.Set {
	seen := idset.New()
	stack := append([]ID(nil), frontier...)
	for _, id := range frontier {
		seen.Add(uint32(id))
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range n.Node(id).Targets(alphabet.EpsilonLabel) {
			if seen.Add(uint32(next)) {
				stack = append(stack, next)
			}
		}
	}
	return seen
}

// Match runs the full-string matcher over s: the state set
// starts at the ε-closure of {initial}; each input codepoint advances the
// set by unioning every concrete-label and Σ-label read, then re-closing
// under ε; the set rejects the instant it becomes empty; after consuming
// all of s, s is accepted iff some member state is final.
func (n *NFA) Match(s string) bool {
	current := n.Closure([]ID{n.initial}).Slice()
	for _, c := range s {
		frontier := make([]uint32, 0, len(current))
		seen := make(map[uint32]struct{})
		for _, id := range current {
			node := n.Node(ID(id))
			for _, target := range node.Targets(alphabet.Char(c)) {
				if _, ok := seen[uint32(target)]; !ok {
					seen[uint32(target)] = struct{}{}
					frontier = append(frontier, uint32(target))
				}
			}
			for _, target := range node.Targets(alphabet.SigmaLabel) {
				if _, ok := seen[uint32(target)]; !ok {
					seen[uint32(target)] = struct{}{}
					frontier = append(frontier, uint32(target))
				}
			}
		}
		if len(frontier) == 0 {
			return false
		}
		ids := make([]ID, len(frontier))
		for i, f := range frontier {
			ids[i] = ID(f)
		}
		current = n.Closure(ids).Slice()
	}
	for _, id := range current {
		if n.Node(ID(id)).Final() {
			return true
		}
	}
	return false
}

