// Package grammar models generative grammars over single symbols: a nonterminal
// on the left of each rule and ordered alternatives on the right. It classifies a
// rule set against the Chomsky hierarchy and derives random strings from it.
package grammar

import (
	"fmt"
	"sort"
)

// Symbol is a terminal or nonterminal.
type Symbol string

// Epsilon marks the empty production. It may appear in a body without being
// declared.
const Epsilon Symbol = "ε"

// Production is the right-hand side of a rule.
type Production []Symbol

// IsEmpty reports whether p is the empty production: no symbols, or Epsilon alone.
func (p Production) IsEmpty() bool {
	return len(p) == 0 || (len(p) == 1 && p[0] == Epsilon)
}

// Prod splits s into one-character symbols, so "ε" gives the one-symbol
// production {Epsilon}. "" gives no symbols, which New stores as {Epsilon}.
func Prod(s string) Production {
	out := Production{}
	for _, r := range s {
		out = append(out, Symbol(string(r)))
	}
	return out
}

// Rule lists the alternatives of one nonterminal.
type Rule struct {
	Head         Symbol
	Alternatives []Production
}

type Grammar struct {
	nonterminals []Symbol
	terminals    []Symbol
	nt           map[Symbol]struct{}
	t            map[Symbol]struct{}

	heads []Symbol // declaration order
	rules map[Symbol][]Production
	start Symbol
}

// New validates and builds a grammar. Rules sharing a head are concatenated in
// order. All inputs are copied. Every empty production is stored as {Epsilon},
// so an ε body has length one however the grammar was entered.
func New(nonterminals, terminals []Symbol, rules []Rule, start Symbol) (*Grammar, error) {
	g := &Grammar{
		nt:    make(map[Symbol]struct{}, len(nonterminals)),
		t:     make(map[Symbol]struct{}, len(terminals)),
		rules: make(map[Symbol][]Production, len(rules)),
	}
	for _, s := range nonterminals {
		if err := checkDeclared(s); err != nil {
			return nil, err
		}
		if _, dup := g.nt[s]; !dup {
			g.nt[s] = struct{}{}
			g.nonterminals = append(g.nonterminals, s)
		}
	}
	for _, s := range terminals {
		if err := checkDeclared(s); err != nil {
			return nil, err
		}
		if _, ok := g.nt[s]; ok {
			return nil, &InvariantError{Code: ErrCodeOverlap, Message: "symbol is declared both nonterminal and terminal", Symbol: s}
		}
		if _, dup := g.t[s]; !dup {
			g.t[s] = struct{}{}
			g.terminals = append(g.terminals, s)
		}
	}
	sortSymbols(g.nonterminals)
	sortSymbols(g.terminals)

	if !g.IsNonterminal(start) {
		return nil, &InvariantError{Code: ErrCodeStartUndeclared, Message: "start symbol is not a nonterminal", Symbol: start}
	}
	g.start = start

	for _, r := range rules {
		if !g.IsNonterminal(r.Head) {
			return nil, &InvariantError{Code: ErrCodeHeadUndeclared, Message: "rule head is not a nonterminal", Head: r.Head, Symbol: r.Head}
		}
		for _, body := range r.Alternatives {
			for _, s := range body {
				if s == Epsilon || g.IsNonterminal(s) || g.IsTerminal(s) {
					continue
				}
				return nil, &InvariantError{Code: ErrCodeUndeclaredSymbol, Message: "production uses an undeclared symbol", Head: r.Head, Symbol: s}
			}
		}
		if _, seen := g.rules[r.Head]; !seen {
			g.heads = append(g.heads, r.Head)
		}
		for _, body := range r.Alternatives {
			if body.IsEmpty() {
				body = Production{Epsilon}
			}
			g.rules[r.Head] = append(g.rules[r.Head], append(Production{}, body...))
		}
	}
	return g, nil
}

// MustNew is like New but panics on an invalid description.
func MustNew(nonterminals, terminals []Symbol, rules []Rule, start Symbol) *Grammar {
	g, err := New(nonterminals, terminals, rules, start)
	if err != nil {
		panic(err)
	}
	return g
}

func checkDeclared(s Symbol) error {
	switch s {
	case "":
		return &InvariantError{Code: ErrCodeEmptySymbol, Message: "empty symbol declared"}
	case Epsilon:
		return &InvariantError{Code: ErrCodeReservedEpsilon, Message: fmt.Sprintf("%s is reserved for the empty production", Epsilon), Symbol: s}
	}
	return nil
}

func (g *Grammar) IsNonterminal(s Symbol) bool {
	_, ok := g.nt[s]
	return ok
}

func (g *Grammar) IsTerminal(s Symbol) bool {
	_, ok := g.t[s]
	return ok
}

func (g *Grammar) Start() Symbol { return g.start }

func (g *Grammar) Nonterminals() []Symbol { return append([]Symbol{}, g.nonterminals...) }

func (g *Grammar) Terminals() []Symbol { return append([]Symbol{}, g.terminals...) }

// Alternatives returns a copy of the productions of head.
func (g *Grammar) Alternatives(head Symbol) []Production {
	src := g.rules[head]
	out := make([]Production, len(src))
	for i, p := range src {
		out[i] = append(Production{}, p...)
	}
	return out
}

// Rules returns a copy of the rule set in declaration order.
func (g *Grammar) Rules() []Rule {
	out := make([]Rule, 0, len(g.heads))
	for _, h := range g.heads {
		out = append(out, Rule{Head: h, Alternatives: g.Alternatives(h)})
	}
	return out
}

func sortSymbols(s []Symbol) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}
