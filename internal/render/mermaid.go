package render

import (
	"fmt"
	"strings"

	"formlang/internal/automaton"
)

// Overlay marks states of a run on a Mermaid chart.
type Overlay struct {
	Visited []automaton.State
	Current []automaton.State
}

// TraceOverlay records the states a simulation of input passes through; the
// states alive after the last step are current.
func TraceOverlay(a *automaton.Automaton, input []automaton.Symbol) *Overlay {
	steps := a.Trace(input)
	o := &Overlay{}
	seen := make(map[string]bool)
	for _, set := range steps {
		for _, s := range set {
			if !seen[s.Key()] {
				seen[s.Key()] = true
				o.Visited = append(o.Visited, s)
			}
		}
	}
	if len(steps) == len(input)+1 {
		o.Current = steps[len(steps)-1]
	}
	return o
}

// Mermaid returns a left-to-right flowchart of a. States are circles, accepting
// states double circles, and the start state carries the "start" class.
// A non-nil overlay adds visited and current styling.
func Mermaid(a *automaton.Automaton, overlay *Overlay) string {
	ids := nodeIDs(a)

	var sb strings.Builder
	sb.WriteString("graph LR\n")
	for _, s := range a.States() {
		opener, closer := "((", "))"
		if a.IsAccepting(s) {
			opener, closer = "(((", ")))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", ids[s.Key()], opener, quote(s.String()), closer)
	}
	for _, t := range a.Transitions() {
		for _, to := range t.To {
			fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", ids[t.From.Key()], quote(string(t.Symbol)), ids[to.Key()])
		}
	}
	sb.WriteString("    classDef start stroke-width:3px;\n")
	fmt.Fprintf(&sb, "    class %s start;\n", ids[a.Start().Key()])

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		for _, s := range overlay.Visited {
			if id, ok := ids[s.Key()]; ok {
				fmt.Fprintf(&sb, "    class %s visited;\n", id)
			}
		}
		for _, s := range overlay.Current {
			if id, ok := ids[s.Key()]; ok {
				fmt.Fprintf(&sb, "    class %s current;\n", id)
			}
		}
	}
	return sb.String()
}

// Mermaid labels cannot hold a double quote.
func quote(label string) string {
	return strings.ReplaceAll(label, "\"", "'")
}
