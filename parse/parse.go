// Package parse implements the recursive-descent parser for the canonical
// core grammar and drives an nfa.Builder to emit the corresponding
// Thompson NFA.
//
//	regex    := alt
//	alt      := concat ('|' concat)*
//	concat   := atom*
//	atom     := ('\' CHAR | 'Σ' | 'ε' | CHAR | '(' alt ')') '*'?
//
// The parser uses a one-symbol peek to decide whether a trailing '*'
// applies to the atom just parsed.
package parse

import (
	"unicode"

	"github.com/coregx/sigmatch/alphabet"
	"github.com/coregx/sigmatch/nfa"
)

// Flags controls parser behavior. Bit 0 is IGNORE_CASE; other bits are
// reserved.
type Flags uint8

// FlagIgnoreCase makes every literal ASCII-letter transition also accept
// the opposite case on the same (from, to) pair.
const FlagIgnoreCase Flags = 1 << 0

// parser holds the mutable state of one parse over one canonical pattern.
type parser struct {
	src     []rune
	pos     int
	flags   Flags
	builder *nfa.Builder
}

// Parse parses the canonical pattern and returns the Thompson NFA it
// builds. An empty pattern parses successfully to an NFA accepting only
// the empty string.
func Parse(pattern string, flags Flags) (*nfa.NFA, error) {
	p := &parser{
		src:     []rune(pattern),
		builder: nfa.NewBuilder(),
		flags:   flags,
	}
	frag, err := p.parseAlt()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		// A ')' with no matching '(' stops alt/concat early, leaving
		// unconsumed input.
		return nil, newError(p.src, p.pos, ErrUnmatchedParen)
	}
	return p.builder.Build(frag), nil
}

func (p *parser) peek() (rune, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) peekAt(offset int) (rune, bool) {
	idx := p.pos + offset
	if idx >= len(p.src) {
		return 0, false
	}
	return p.src[idx], true
}

// parseAlt implements alt := concat ('|' concat)*.
func (p *parser) parseAlt() (nfa.Frag, error) {
	first, err := p.parseConcat()
	if err != nil {
		return nfa.Frag{}, err
	}
	branches := []nfa.Frag{first}
	for {
		r, ok := p.peek()
		if !ok || r != '|' {
			break
		}
		p.pos++ // consume '|'
		next, err := p.parseConcat()
		if err != nil {
			return nfa.Frag{}, err
		}
		branches = append(branches, next)
	}
	if len(branches) == 1 {
		return branches[0], nil
	}
	return p.builder.Alt(branches), nil
}

// parseConcat implements concat := atom*, threading each atom's tail into
// the next.
func (p *parser) parseConcat() (nfa.Frag, error) {
	var acc *nfa.Frag
	for {
		r, ok := p.peek()
		if !ok || r == '|' || r == ')' {
			break
		}
		atom, err := p.parseAtom()
		if err != nil {
			return nfa.Frag{}, err
		}
		if acc == nil {
			f := atom
			acc = &f
		} else {
			f := p.builder.Concat(*acc, atom)
			acc = &f
		}
	}
	if acc == nil {
		f := p.builder.Empty()
		return f, nil
	}
	return *acc, nil
}

// parseAtom implements atom := ('\' CHAR | 'Σ' | 'ε' | CHAR | '(' alt ')') '*'?.
func (p *parser) parseAtom() (nfa.Frag, error) {
	startPos := p.pos
	r, ok := p.peek()
	if !ok {
		return nfa.Frag{}, newError(p.src, startPos, ErrDanglingStar)
	}

	var frag nfa.Frag
	switch r {
	case '*':
		return nfa.Frag{}, newError(p.src, startPos, ErrDanglingStar)
	case '\\':
		p.pos++
		c, ok := p.peek()
		if !ok {
			return nfa.Frag{}, newError(p.src, startPos, ErrDanglingEscape)
		}
		p.pos++
		frag = p.literal(c)
	case 'Σ':
		p.pos++
		frag = p.builder.CatchAll()
	case 'ε':
		p.pos++
		frag = p.builder.Empty()
	case '(':
		p.pos++
		inner, err := p.parseAlt()
		if err != nil {
			return nfa.Frag{}, err
		}
		closeRune, ok := p.peek()
		if !ok || closeRune != ')' {
			return nfa.Frag{}, newError(p.src, startPos, ErrUnmatchedParen)
		}
		p.pos++
		frag = inner
	case ')':
		return nfa.Frag{}, newError(p.src, startPos, ErrUnmatchedParen)
	default:
		p.pos++
		frag = p.literal(r)
	}

	// Two-character lookahead: a '*' right after the atom we just closed
	// wraps it in Kleene star.
	if star, ok := p.peek(); ok && star == '*' {
		p.pos++
		frag = p.builder.Star(frag)
	}
	return frag, nil
}

// literal builds the fragment for a literal codepoint c, adding the
// opposite-case sibling transition when IGNORE_CASE is set and c is an
// ASCII letter.
func (p *parser) literal(c rune) nfa.Frag {
	frag := p.builder.Literal(c)
	if p.flags&FlagIgnoreCase != 0 && isASCIILetter(c) {
		p.builder.AddTrans(frag.Start, alphabet.Char(swapCase(c)), frag.End)
	}
	return frag
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func swapCase(r rune) rune {
	if unicode.IsUpper(r) {
		return unicode.ToLower(r)
	}
	return unicode.ToUpper(r)
}
