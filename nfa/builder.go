package nfa

import "github.com/coregx/sigmatch/alphabet"

// Builder constructs an NFA incrementally using a low-level, per-node API,
// mirroring a classic Thompson-construction builder: callers allocate bare
// nodes and wire transitions between them one at a time. It owns its own
// monotonic id counter so that separate compilations never share state: each
// Builder owns its own counter, with no mutable global.
type Builder struct {
	nodes []Node
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// NewNode allocates a fresh, non-final node with no transitions and
// returns its id.
func (b *Builder) NewNode() ID {
	id := ID(len(b.nodes))
	b.nodes = append(b.nodes, Node{id: id, trans: make(map[alphabet.Label][]ID)})
	return id
}

// AddTrans adds a transition from -l-> to. Multiple calls with the same
// (from, l) accumulate targets, realizing the "set of target nodes"
// transition table nondeterministic nodes require.
func (b *Builder) AddTrans(from ID, l alphabet.Label, to ID) {
	b.nodes[from].trans[l] = append(b.nodes[from].trans[l], to)
}

// AddEpsilon adds a void transition from -ε-> to.
func (b *Builder) AddEpsilon(from, to ID) {
	b.AddTrans(from, alphabet.EpsilonLabel, to)
}

// SetFinal marks id as an accepting state.
func (b *Builder) SetFinal(id ID, final bool) {
	b.nodes[id].final = final
}

// Frag is a fragment of an in-progress Thompson construction: an entry
// point and an exit point. Composing fragments (concatenation,
// alternation, Kleene star) only ever wires entry/exit points together with
// ε edges; it never mutates a fragment's own nodes.
type Frag struct {
	Start ID
	End   ID
}

// Literal builds a single-transition fragment for a concrete codepoint, the
// "CHAR contributes a fresh state reached by a single concrete-symbol
// transition" rule a single char contributes.
func (b *Builder) Literal(r rune) Frag {
	start := b.NewNode()
	end := b.NewNode()
	b.AddTrans(start, alphabet.Char(r), end)
	return Frag{Start: start, End: end}
}

// CatchAll builds a single-transition fragment for Σ ("Σ contributes a
// fresh state reached by a Σ-labeled transition").
func (b *Builder) CatchAll() Frag {
	start := b.NewNode()
	end := b.NewNode()
	b.AddTrans(start, alphabet.SigmaLabel, end)
	return Frag{Start: start, End: end}
}

// Empty builds the ε fragment: "ε contributes a void edge (no new labeled
// transition)" — realized as a single node that is simultaneously its own
// entry and exit, so concatenating it with anything is a no-op.
func (b *Builder) Empty() Frag {
	n := b.NewNode()
	return Frag{Start: n, End: n}
}

// Concat threads the tail of a through the head of c: "concatenation
// threads the current tail node through successive atoms."
func (b *Builder) Concat(a, c Frag) Frag {
	b.AddEpsilon(a.End, c.Start)
	return Frag{Start: a.Start, End: c.End}
}

// Alt builds the alternation fragment for a set of branches: "alternation
// branches from a shared branch-entry node and merges into a shared
// branch-exit node via ε."
func (b *Builder) Alt(branches []Frag) Frag {
	entry := b.NewNode()
	exit := b.NewNode()
	for _, br := range branches {
		b.AddEpsilon(entry, br.Start)
		b.AddEpsilon(br.End, exit)
	}
	return Frag{Start: entry, End: exit}
}

// Star wraps body in the Kleene-star fragment: "an ε edge skips the body,
// and the body's exit has an ε edge back to the body's entry and forward
// to a new exit."
func (b *Builder) Star(body Frag) Frag {
	entry := b.NewNode()
	exit := b.NewNode()
	b.AddEpsilon(entry, body.Start) // enter the body
	b.AddEpsilon(entry, exit)       // skip the body entirely
	b.AddEpsilon(body.End, body.Start)
	b.AddEpsilon(body.End, exit)
	return Frag{Start: entry, End: exit}
}

// Build finalizes construction: marks whole.End as the unique accepting
// state and returns the completed NFA rooted at whole.Start.
func (b *Builder) Build(whole Frag) *NFA {
	b.SetFinal(whole.End, true)
	return &NFA{nodes: b.nodes, initial: whole.Start}
}
