package automaton

// IsDeterministic walks the reachable states breadth-first from the start state.
// Every visited state must have exactly one target for every alphabet symbol.
// A state that comes off the queue a second time also makes the automaton
// non-deterministic, so any cycle or re-converging path yields false even when
// all transitions are single-valued. IsSingleValued checks the transition
// function alone.
func (a *Automaton) IsDeterministic() bool {
	visited := make(map[string]struct{})
	queue := []State{a.start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if _, ok := visited[cur.Key()]; ok {
			return false
		}
		visited[cur.Key()] = struct{}{}
		for _, sym := range a.alphabet {
			next := a.targets(cur.Key(), sym)
			if len(next) != 1 {
				return false
			}
			queue = append(queue, next...)
		}
	}
	return true
}

// IsSingleValued reports whether every reachable state has at most one target
// per alphabet symbol. Missing transitions are allowed, so the partial output of
// ConvertToDFA is single-valued.
func (a *Automaton) IsSingleValued() bool {
	visited := map[string]struct{}{a.start.Key(): {}}
	queue := []State{a.start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, sym := range a.alphabet {
			next := a.targets(cur.Key(), sym)
			if len(next) > 1 {
				return false
			}
			if len(next) == 0 {
				continue
			}
			if _, ok := visited[next[0].Key()]; !ok {
				visited[next[0].Key()] = struct{}{}
				queue = append(queue, next[0])
			}
		}
	}
	return true
}

// Reachable returns the states reachable from the start state, in breadth-first
// order with symbols taken in alphabet order.
func (a *Automaton) Reachable() []State {
	visited := map[string]struct{}{a.start.Key(): {}}
	order := []State{a.start}
	for i := 0; i < len(order); i++ {
		for _, sym := range a.alphabet {
			for _, t := range a.targets(order[i].Key(), sym) {
				if _, ok := visited[t.Key()]; ok {
					continue
				}
				visited[t.Key()] = struct{}{}
				order = append(order, t)
			}
		}
	}
	return order
}
