package automaton

import (
	"fmt"
	"strings"
)

// Minimize returns the smallest automaton equivalent to a under the reachable,
// possibly partial, deterministic transition function. Automata with
// multi-valued transitions are determinised first. Each state of the result is
// the SubsetState of the merged states.
func Minimize(a *Automaton) *Automaton {
	d := a
	if !a.hasSingleTargets() {
		d = a.ConvertToDFA()
	}
	reach := d.Reachable()

	// --- 1. initial partition: accepting vs. the rest ------------------------
	block := make(map[string]int, len(reach))
	for _, s := range reach {
		if d.IsAccepting(s) {
			block[s.Key()] = 1
		} else {
			block[s.Key()] = 0
		}
	}

	// --- 2. refine by successor blocks until stable ---------------------------
	count := countBlocks(block)
	for {
		next := make(map[string]int, len(reach))
		ids := make(map[string]int)
		for _, s := range reach {
			sig := d.signature(s, block)
			id, ok := ids[sig]
			if !ok {
				id = len(ids)
				ids[sig] = id
			}
			next[s.Key()] = id
		}
		block = next
		if len(ids) == count {
			break
		}
		count = len(ids)
	}

	// --- 3. build the quotient automaton --------------------------------------
	groups := make(map[int][]State)
	var firstSeen []int
	for _, s := range reach {
		b := block[s.Key()]
		if _, ok := groups[b]; !ok {
			firstSeen = append(firstSeen, b)
		}
		groups[b] = append(groups[b], s)
	}
	merged := make(map[int]SubsetState, len(groups))
	for b, members := range groups {
		merged[b] = NewSubsetState(members...)
	}

	var (
		states      []State
		accept      []State
		transitions []Transition
	)
	for _, b := range firstSeen {
		rep := groups[b][0]
		states = append(states, merged[b])
		if d.IsAccepting(rep) {
			accept = append(accept, merged[b])
		}
		for _, sym := range d.alphabet {
			next := d.targets(rep.Key(), sym)
			if len(next) == 0 {
				continue
			}
			transitions = append(transitions, Transition{From: merged[b], Symbol: sym, To: []State{merged[block[next[0].Key()]]}})
		}
	}
	return build(states, d.alphabet, transitions, merged[block[d.start.Key()]], accept)
}

func (a *Automaton) hasSingleTargets() bool {
	for _, targets := range a.trans {
		if len(targets) > 1 {
			return false
		}
	}
	return true
}

// signature encodes a state's block and the blocks its transitions lead to;
// -1 stands for a missing transition.
func (a *Automaton) signature(s State, block map[string]int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d", block[s.Key()])
	for _, sym := range a.alphabet {
		next := a.targets(s.Key(), sym)
		if len(next) == 0 {
			b.WriteString(",-1")
			continue
		}
		fmt.Fprintf(&b, ",%d", block[next[0].Key()])
	}
	return b.String()
}

func countBlocks(block map[string]int) int {
	seen := make(map[int]struct{})
	for _, b := range block {
		seen[b] = struct{}{}
	}
	return len(seen)
}
