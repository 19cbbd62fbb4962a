// Package render draws automata as Graphviz DOT or Mermaid flowcharts. States
// get stable ids s0, s1, ... in key order, so output is deterministic.
package render

import (
	"fmt"
	"strings"

	"formlang/internal/automaton"
)

// DOT returns a Graphviz digraph of a: accepting states are double circles and
// the start state is entered from a point.
func DOT(a *automaton.Automaton) string {
	ids := nodeIDs(a)

	var sb strings.Builder
	sb.WriteString("digraph G {\n")
	sb.WriteString("    rankdir=LR;\n")
	for _, s := range a.States() {
		shape := "circle"
		if a.IsAccepting(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&sb, "    %s [label=\"%s\", shape=%s];\n", ids[s.Key()], escape(s.String()), shape)
	}
	for _, t := range a.Transitions() {
		for _, to := range t.To {
			fmt.Fprintf(&sb, "    %s -> %s [label=\"%s\"];\n", ids[t.From.Key()], ids[to.Key()], escape(string(t.Symbol)))
		}
	}
	fmt.Fprintf(&sb, "    _start [shape=point]; _start -> %s;\n", ids[a.Start().Key()])
	sb.WriteString("}\n")
	return sb.String()
}

func nodeIDs(a *automaton.Automaton) map[string]string {
	ids := make(map[string]string)
	for i, s := range a.States() {
		ids[s.Key()] = fmt.Sprintf("s%d", i)
	}
	return ids
}

func escape(label string) string {
	label = strings.ReplaceAll(label, `\`, `\\`)
	return strings.ReplaceAll(label, `"`, `\"`)
}
