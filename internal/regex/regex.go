// Package regex compiles regular expressions into finite automata: a Thompson
// NFA is built from the pattern and its ε moves are eliminated, so the result
// is an ordinary automaton.Automaton over the pattern's literal runes.
//
// Syntax: literals, concatenation, | * + ? ( ), [a-z] classes, {m}, {m,} and
// {m,n} repeats, # for the empty word and \ to escape an operator.
package regex

import (
	"fmt"
	"sort"

	"formlang/internal/automaton"
)

// Compile turns pattern into an automaton accepting exactly the words that
// match it in full. States are named q0, q1, ... in discovery order from q0,
// the start state.
func Compile(pattern string) (*automaton.Automaton, error) {
	root, err := newParser(pattern).parse()
	if err != nil {
		return nil, err
	}
	b := &builder{}
	frag := b.build(root)
	accept := b.newState()
	patchOuts(frag.outs, accept)

	a, err := eliminate(frag.start, accept, alphabet(root))
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", pattern, err)
	}
	return a, nil
}

func MustCompile(pattern string) *automaton.Automaton {
	a, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return a
}

// eliminate keeps the start state and every state entered by a symbol edge.
// A kept state p moves on c to r when some state in the ε-closure of p has a
// c edge to r, and it accepts when its closure contains accept.
func eliminate(start, accept *nfaState, alpha []automaton.Symbol) (*automaton.Automaton, error) {
	names := map[int]automaton.State{}
	var queue []*nfaState
	visit := func(s *nfaState) automaton.State {
		if n, ok := names[s.id]; ok {
			return n
		}
		n := automaton.Name(fmt.Sprintf("q%d", len(names)))
		names[s.id] = n
		queue = append(queue, s)
		return n
	}
	visit(start)

	var (
		states       []automaton.State
		acceptStates []automaton.State
		transitions  []automaton.Transition
	)
	for i := 0; i < len(queue); i++ {
		p := queue[i]
		from := names[p.id]
		states = append(states, from)

		moves := map[rune]map[int]*nfaState{}
		for _, q := range closure(p) {
			if q == accept {
				acceptStates = append(acceptStates, from)
			}
			for _, e := range q.edges {
				if moves[e.symbol] == nil {
					moves[e.symbol] = map[int]*nfaState{}
				}
				moves[e.symbol][e.to.id] = e.to
			}
		}

		syms := make([]rune, 0, len(moves))
		for r := range moves {
			syms = append(syms, r)
		}
		sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
		for _, r := range syms {
			targets := sortedStates(moves[r])
			to := make([]automaton.State, len(targets))
			for j, t := range targets {
				to[j] = visit(t)
			}
			transitions = append(transitions, automaton.Transition{
				From:   from,
				Symbol: automaton.Symbol(string(r)),
				To:     to,
			})
		}
	}
	return automaton.New(states, alpha, transitions, names[start.id], acceptStates)
}

// closure returns the states reachable from s over ε edges, s included, in id
// order.
func closure(s *nfaState) []*nfaState {
	seen := map[int]*nfaState{s.id: s}
	stack := []*nfaState{s}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range cur.eps {
			if _, ok := seen[n.id]; !ok {
				seen[n.id] = n
				stack = append(stack, n)
			}
		}
	}
	return sortedStates(seen)
}

func sortedStates(set map[int]*nfaState) []*nfaState {
	out := make([]*nfaState, 0, len(set))
	for _, s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// alphabet collects the literal runes of the pattern.
func alphabet(root *node) []automaton.Symbol {
	set := map[rune]struct{}{}
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		switch n.typ {
		case nChar:
			set[n.ch] = struct{}{}
		case nSet:
			for _, r := range n.set {
				set[r] = struct{}{}
			}
		}
		walk(n.left)
		walk(n.right)
	}
	walk(root)

	runes := make([]rune, 0, len(set))
	for r := range set {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	out := make([]automaton.Symbol, len(runes))
	for i, r := range runes {
		out[i] = automaton.Symbol(string(r))
	}
	return out
}
