package grammar

import "unicode"

// Class is a position in the Chomsky hierarchy.
type Class int

const (
	Invalid Class = iota
	Unrestricted
	ContextSensitive
	ContextFree
	Regular
)

func (c Class) String() string {
	switch c {
	case Unrestricted:
		return "Type-0 (Unrestricted)"
	case ContextSensitive:
		return "Type-1 (Context-Sensitive)"
	case ContextFree:
		return "Type-2 (Context-Free)"
	case Regular:
		return "Type-3 (Regular)"
	}
	return "Not a valid Chomsky type"
}

// Classify applies four shape checks to every body, in this order:
//
//  1. some body is longer than the number of alternatives of its head: Type-0;
//  2. some body is not shorter than that number: Type-1;
//  3. every body is a single uppercase symbol: Type-2;
//  4. every body is a nonterminal followed by a terminal, or empty: Type-3.
//
// The measure for the first two checks is the count of alternatives listed for
// the head, not the length of the head symbol: heads are single nonterminals, so
// their length is always one and would leave Type-0 and Type-1 unreachable.
// An ε body counts as one symbol.
//
// When none of them decides, the grammar is Invalid. The order is significant:
// the first two checks return the coarser label as soon as they fail.
func (g *Grammar) Classify() Class {
	if !g.every(func(body Production, alts int) bool { return len(body) <= alts }) {
		return Unrestricted
	}
	if !g.every(func(body Production, alts int) bool { return len(body) < alts }) {
		return ContextSensitive
	}
	if g.every(func(body Production, _ int) bool { return len(body) == 1 && isUpper(body[0]) }) {
		return ContextFree
	}
	if g.every(func(body Production, _ int) bool {
		return (len(body) == 2 && g.IsNonterminal(body[0]) && g.IsTerminal(body[1])) || body.IsEmpty()
	}) {
		return Regular
	}
	return Invalid
}

// every reports whether pred holds for each body; alts is the number of
// alternatives of the body's head.
func (g *Grammar) every(pred func(body Production, alts int) bool) bool {
	for _, h := range g.heads {
		alts := g.rules[h]
		for _, body := range alts {
			if !pred(body, len(alts)) {
				return false
			}
		}
	}
	return true
}

// isUpper holds when s has at least one cased letter and no lowercase one.
func isUpper(s Symbol) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}
