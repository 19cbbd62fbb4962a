// Package automaton models finite automata whose transition function maps a
// (state, symbol) pair to a set of states. Deterministic automata are the special
// case where every such set has one member.
//
// An Automaton is immutable once built; operations such as ConvertToDFA and
// Minimize return new values.
package automaton

import "sort"

// Symbol is one letter of an automaton's alphabet.
type Symbol string

// Symbols splits s into one-character symbols.
func Symbols(s string) []Symbol {
	out := make([]Symbol, 0, len(s))
	for _, r := range s {
		out = append(out, Symbol(string(r)))
	}
	return out
}

// Transition is one entry of the transition function: From --Symbol--> To.
type Transition struct {
	From   State
	Symbol Symbol
	To     []State
}

type transKey struct {
	from string
	sym  Symbol
}

type Automaton struct {
	states   map[string]State
	order    []State // sorted by key
	alphabet []Symbol
	alpha    map[Symbol]struct{}

	trans      map[transKey][]State // targets sorted by key
	transOrder []transKey
	transFrom  map[transKey]State

	start  State
	accept map[string]struct{}
}

// New validates the description of an automaton and builds it. Transitions that
// share a (From, Symbol) pair are merged; the merged entry keeps the position of
// the first one.
func New(states []State, alphabet []Symbol, transitions []Transition, start State, accept []State) (*Automaton, error) {
	if len(states) == 0 {
		return nil, invariantf(ErrCodeNoStates, nil, "", "automaton needs at least one state")
	}
	known := make(map[string]struct{}, len(states))
	for _, s := range states {
		if s == nil {
			return nil, invariantf(ErrCodeNilState, nil, "", "state set contains nil")
		}
		known[s.Key()] = struct{}{}
	}
	has := func(s State) bool {
		if s == nil {
			return false
		}
		_, ok := known[s.Key()]
		return ok
	}

	alpha := make(map[Symbol]struct{}, len(alphabet))
	for _, sym := range alphabet {
		if sym == "" {
			return nil, invariantf(ErrCodeEmptySymbol, nil, "", "alphabet contains the empty symbol")
		}
		alpha[sym] = struct{}{}
	}

	if start == nil {
		return nil, invariantf(ErrCodeNilState, nil, "", "start state is nil")
	}
	if !has(start) {
		return nil, invariantf(ErrCodeStartNotInStates, start, "", "start state is not a member of the state set")
	}
	for _, s := range accept {
		if !has(s) {
			if s == nil {
				return nil, invariantf(ErrCodeNilState, nil, "", "accept set contains nil")
			}
			return nil, invariantf(ErrCodeAcceptNotInStates, s, "", "accept state is not a member of the state set")
		}
	}
	for _, t := range transitions {
		if !has(t.From) {
			if t.From == nil {
				return nil, invariantf(ErrCodeNilState, nil, t.Symbol, "transition source is nil")
			}
			return nil, invariantf(ErrCodeUnknownSource, t.From, t.Symbol, "transition leaves an undeclared state")
		}
		if _, ok := alpha[t.Symbol]; !ok {
			return nil, invariantf(ErrCodeUnknownSymbol, t.From, t.Symbol, "transition symbol is not in the alphabet")
		}
		for _, to := range t.To {
			if !has(to) {
				if to == nil {
					return nil, invariantf(ErrCodeNilState, t.From, t.Symbol, "transition target is nil")
				}
				return nil, invariantf(ErrCodeUnknownTarget, to, t.Symbol, "transition enters an undeclared state")
			}
		}
	}
	return build(states, alphabet, transitions, start, accept), nil
}

// MustNew is like New but panics on an invalid description.
func MustNew(states []State, alphabet []Symbol, transitions []Transition, start State, accept []State) *Automaton {
	a, err := New(states, alphabet, transitions, start, accept)
	if err != nil {
		panic(err)
	}
	return a
}

// build assumes the invariants checked by New hold.
func build(states []State, alphabet []Symbol, transitions []Transition, start State, accept []State) *Automaton {
	a := &Automaton{
		states:    make(map[string]State, len(states)),
		alpha:     make(map[Symbol]struct{}, len(alphabet)),
		trans:     make(map[transKey][]State),
		transFrom: make(map[transKey]State),
		accept:    make(map[string]struct{}, len(accept)),
	}
	for _, s := range states {
		if _, dup := a.states[s.Key()]; dup {
			continue
		}
		a.states[s.Key()] = s
		a.order = append(a.order, s)
	}
	sortStates(a.order)

	for _, sym := range alphabet {
		if _, dup := a.alpha[sym]; dup {
			continue
		}
		a.alpha[sym] = struct{}{}
		a.alphabet = append(a.alphabet, sym)
	}
	sort.Slice(a.alphabet, func(i, j int) bool { return a.alphabet[i] < a.alphabet[j] })

	a.start = a.states[start.Key()]
	for _, s := range accept {
		a.accept[s.Key()] = struct{}{}
	}

	for _, t := range transitions {
		k := transKey{from: t.From.Key(), sym: t.Symbol}
		if _, seen := a.transFrom[k]; !seen {
			a.transFrom[k] = a.states[k.from]
			a.transOrder = append(a.transOrder, k)
		}
		targets := append(a.trans[k], t.To...)
		a.trans[k] = dedupe(targets, a.states)
	}
	return a
}

// dedupe sorts targets by key, drops duplicates and swaps each target for the
// canonical value stored in the state set.
func dedupe(targets []State, canon map[string]State) []State {
	seen := make(map[string]struct{}, len(targets))
	out := make([]State, 0, len(targets))
	for _, t := range targets {
		k := t.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, canon[k])
	}
	sortStates(out)
	return out
}

// States returns the state set ordered by key.
func (a *Automaton) States() []State {
	out := make([]State, len(a.order))
	copy(out, a.order)
	return out
}

// Alphabet returns the alphabet in lexical order.
func (a *Automaton) Alphabet() []Symbol {
	out := make([]Symbol, len(a.alphabet))
	copy(out, a.alphabet)
	return out
}

func (a *Automaton) Start() State { return a.start }

// AcceptStates returns the accepting states ordered by key.
func (a *Automaton) AcceptStates() []State {
	var out []State
	for _, s := range a.order {
		if a.IsAccepting(s) {
			out = append(out, s)
		}
	}
	return out
}

func (a *Automaton) IsAccepting(s State) bool {
	if s == nil {
		return false
	}
	_, ok := a.accept[s.Key()]
	return ok
}

func (a *Automaton) HasState(s State) bool {
	if s == nil {
		return false
	}
	_, ok := a.states[s.Key()]
	return ok
}

func (a *Automaton) HasSymbol(sym Symbol) bool {
	_, ok := a.alpha[sym]
	return ok
}

// Targets returns the states reachable from s on sym, ordered by key.
func (a *Automaton) Targets(s State, sym Symbol) []State {
	if s == nil {
		return nil
	}
	targets := a.trans[transKey{from: s.Key(), sym: sym}]
	out := make([]State, len(targets))
	copy(out, targets)
	return out
}

// Transitions returns the transition entries in the order they were declared.
func (a *Automaton) Transitions() []Transition {
	out := make([]Transition, 0, len(a.transOrder))
	for _, k := range a.transOrder {
		out = append(out, Transition{From: a.transFrom[k], Symbol: k.sym, To: a.Targets(a.transFrom[k], k.sym)})
	}
	return out
}

func (a *Automaton) targets(key string, sym Symbol) []State {
	return a.trans[transKey{from: key, sym: sym}]
}
