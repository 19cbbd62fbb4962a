package automaton

import "sort"

// Equivalent reports whether a and b accept the same language, reading every
// multi-valued transition nondeterministically. It walks the product of both
// determinised automata and looks for a reachable pair that disagrees on
// acceptance; a missing transition leads to an implicit rejecting sink.
func Equivalent(a, b *Automaton) bool {
	da, db := a.ConvertToDFA(), b.ConvertToDFA()
	alpha := unionSymbols(da.alphabet, db.alphabet)

	type pair struct{ x, y string } // "" is the sink
	accepts := func(d *Automaton, k string) bool {
		if k == "" {
			return false
		}
		_, ok := d.accept[k]
		return ok
	}
	step := func(d *Automaton, k string, sym Symbol) string {
		if k == "" {
			return ""
		}
		next := d.targets(k, sym)
		if len(next) == 0 {
			return ""
		}
		return next[0].Key()
	}

	start := pair{da.start.Key(), db.start.Key()}
	seen := map[pair]struct{}{start: {}}
	queue := []pair{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if accepts(da, p.x) != accepts(db, p.y) {
			return false
		}
		for _, sym := range alpha {
			np := pair{step(da, p.x, sym), step(db, p.y, sym)}
			if np.x == "" && np.y == "" {
				continue
			}
			if _, ok := seen[np]; !ok {
				seen[np] = struct{}{}
				queue = append(queue, np)
			}
		}
	}
	return true
}

func unionSymbols(a, b []Symbol) []Symbol {
	m := map[Symbol]struct{}{}
	for _, s := range a {
		m[s] = struct{}{}
	}
	for _, s := range b {
		m[s] = struct{}{}
	}
	out := make([]Symbol, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
