package automaton

// Accepts runs the automaton once, following a single target per step. When a
// transition has several targets the one with the smallest key is taken, so the
// answer is only meaningful for deterministic automata. Unknown symbols and
// missing transitions reject the input.
func (a *Automaton) Accepts(input []Symbol) bool {
	cur := a.start
	for _, sym := range input {
		if !a.HasSymbol(sym) {
			return false
		}
		next := a.targets(cur.Key(), sym)
		if len(next) == 0 {
			return false
		}
		cur = next[0]
	}
	return a.IsAccepting(cur)
}

// AcceptsString is Accepts over the characters of s.
func (a *Automaton) AcceptsString(s string) bool { return a.Accepts(Symbols(s)) }

// Simulate follows every target of every transition and accepts when any run
// ends in an accepting state.
func (a *Automaton) Simulate(input []Symbol) bool {
	cur := map[string]State{a.start.Key(): a.start}
	for _, sym := range input {
		if cur = a.step(cur, sym); len(cur) == 0 {
			return false
		}
	}
	for _, s := range cur {
		if a.IsAccepting(s) {
			return true
		}
	}
	return false
}

// Trace returns the state sets Simulate passes through: the start state, then
// the set reached after each symbol. It stops at the first symbol that leaves
// no run alive. Each set is sorted by key.
func (a *Automaton) Trace(input []Symbol) [][]State {
	cur := map[string]State{a.start.Key(): a.start}
	out := [][]State{{a.start}}
	for _, sym := range input {
		if cur = a.step(cur, sym); len(cur) == 0 {
			break
		}
		set := make([]State, 0, len(cur))
		for _, s := range cur {
			set = append(set, s)
		}
		sortStates(set)
		out = append(out, set)
	}
	return out
}

func (a *Automaton) step(cur map[string]State, sym Symbol) map[string]State {
	next := make(map[string]State)
	if !a.HasSymbol(sym) {
		return next
	}
	for k := range cur {
		for _, t := range a.targets(k, sym) {
			next[t.Key()] = t
		}
	}
	return next
}
