package automaton

import (
	"fmt"
	"strings"
)

func (a *Automaton) String() string {
	var b strings.Builder
	b.WriteString("Finite Automaton:\n")
	fmt.Fprintf(&b, "States: %s\n", joinStates(a.order))
	syms := make([]string, len(a.alphabet))
	for i, s := range a.alphabet {
		syms[i] = string(s)
	}
	fmt.Fprintf(&b, "Alphabet: {%s}\n", strings.Join(syms, ", "))
	b.WriteString("Transitions:\n")
	for _, t := range a.Transitions() {
		fmt.Fprintf(&b, "%s --%s--> %s\n", t.From, t.Symbol, joinStates(t.To))
	}
	fmt.Fprintf(&b, "Start state: %s\n", a.start)
	fmt.Fprintf(&b, "Accept states: %s\n", joinStates(a.AcceptStates()))
	return b.String()
}

func joinStates(states []State) string {
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = s.String()
	}
	return "{" + strings.Join(names, ", ") + "}"
}
