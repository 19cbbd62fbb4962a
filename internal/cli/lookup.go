package cli

import (
	"errors"
	"strings"

	"formlang/internal/automaton"
	"formlang/internal/grammar"
	"formlang/internal/workbench"
)

func (o *RootOptions) automaton(name string) (*automaton.Automaton, error) {
	wb, err := o.workbench()
	if err != nil {
		return nil, err
	}
	a, err := wb.Automaton(name)
	if err != nil {
		return nil, entryError(err)
	}
	o.logger().Debug("automaton built", "name", name,
		"states", len(a.States()), "transitions", len(a.Transitions()))
	return a, nil
}

func (o *RootOptions) grammar(name string) (*grammar.Grammar, error) {
	wb, err := o.workbench()
	if err != nil {
		return nil, err
	}
	g, err := wb.Grammar(name)
	if err != nil {
		return nil, entryError(err)
	}
	o.logger().Debug("grammar built", "name", name,
		"nonterminals", len(g.Nonterminals()), "rules", len(g.Rules()))
	return g, nil
}

func entryError(err error) error {
	if errors.Is(err, workbench.ErrNotFound) {
		return WrapExitError(ExitCommandError, "lookup failed", err)
	}
	return WrapExitError(ExitFailure, "invalid definition", err)
}

// splitWord turns a command-line word into symbols: one per character, or
// the pieces between sep when sep is set.
func splitWord(word, sep string) []automaton.Symbol {
	if sep == "" {
		return automaton.Symbols(word)
	}
	if word == "" {
		return nil
	}
	parts := strings.Split(word, sep)
	out := make([]automaton.Symbol, len(parts))
	for i, p := range parts {
		out[i] = automaton.Symbol(p)
	}
	return out
}

func showWord(word string) string {
	if word == "" {
		return string(grammar.Epsilon)
	}
	return word
}
