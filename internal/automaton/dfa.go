package automaton

// ConvertToDFA determinises the automaton by subset construction. Each state of
// the result is a SubsetState of the receiver's states; only subsets reachable
// from {start} are built. A subset accepts when it holds an accepting state.
// Empty target unions produce no transition, so the result may be partial.
func (a *Automaton) ConvertToDFA() *Automaton {
	start := NewSubsetState(a.start)

	var (
		states      []State
		accept      []State
		transitions []Transition
	)
	queued := map[string]struct{}{start.Key(): {}}
	queue := []SubsetState{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		states = append(states, cur)
		if a.anyAccepting(cur) {
			accept = append(accept, cur)
		}
		for _, sym := range a.alphabet {
			next := a.move(cur, sym)
			if next.Len() == 0 {
				continue
			}
			transitions = append(transitions, Transition{From: cur, Symbol: sym, To: []State{next}})
			if _, ok := queued[next.Key()]; !ok {
				queued[next.Key()] = struct{}{}
				queue = append(queue, next)
			}
		}
	}
	return build(states, a.alphabet, transitions, start, accept)
}

// move unions the targets of every member of set on sym.
func (a *Automaton) move(set SubsetState, sym Symbol) SubsetState {
	var next []State
	for _, s := range set.members {
		next = append(next, a.targets(s.Key(), sym)...)
	}
	return NewSubsetState(next...)
}

func (a *Automaton) anyAccepting(set SubsetState) bool {
	for _, s := range set.members {
		if a.IsAccepting(s) {
			return true
		}
	}
	return false
}
