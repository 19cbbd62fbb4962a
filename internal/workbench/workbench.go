// Package workbench loads named automata and grammars from a YAML file.
//
//	automata:
//	  lab:
//	    states: [q0, q1]
//	    alphabet: [a, b]
//	    start: q0
//	    accept: [q1]
//	    transitions:
//	      - {from: q0, symbol: a, to: [q1]}
//	  ends-in-ab:
//	    regex: (a|b)*ab
//	grammars:
//	  lab:
//	    nonterminals: [S, A]
//	    terminals: [a, b]
//	    start: S
//	    productions:
//	      S: [aA, ε]
//	      A: [bS]
//	  expr:
//	    text: |
//	      E -> E+T | T
//
// Production bodies given as strings are split into one symbol per character;
// a list body names its symbols explicitly. "" and "ε" are the empty body.
package workbench

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"formlang/internal/automaton"
	"formlang/internal/grammar"
	"formlang/internal/regex"
)

type File struct {
	Automata map[string]AutomatonSpec `yaml:"automata"`
	Grammars map[string]GrammarSpec   `yaml:"grammars"`
}

// AutomatonSpec describes an automaton either explicitly or by a regex.
type AutomatonSpec struct {
	States      []string         `yaml:"states,omitempty"`
	Alphabet    []string         `yaml:"alphabet,omitempty"`
	Start       string           `yaml:"start,omitempty"`
	Accept      []string         `yaml:"accept,omitempty"`
	Transitions []TransitionSpec `yaml:"transitions,omitempty"`
	Regex       string           `yaml:"regex,omitempty"`
}

type TransitionSpec struct {
	From   string   `yaml:"from"`
	Symbol string   `yaml:"symbol"`
	To     []string `yaml:"to"`
}

// GrammarSpec describes a grammar either structurally or in the text format
// read by grammar.Parse.
type GrammarSpec struct {
	Nonterminals []string `yaml:"nonterminals,omitempty"`
	Terminals    []string `yaml:"terminals,omitempty"`
	Start        string   `yaml:"start,omitempty"`
	Productions  Rules    `yaml:"productions,omitempty"`
	Text         string   `yaml:"text,omitempty"`
}

// Rules keeps productions in file order.
type Rules []grammar.Rule

func (r *Rules) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: productions must be a mapping", value.Line)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, bodies := value.Content[i], value.Content[i+1]
		rule := grammar.Rule{Head: grammar.Symbol(key.Value)}

		var items []*yaml.Node
		switch bodies.Kind {
		case yaml.ScalarNode:
			items = []*yaml.Node{bodies}
		case yaml.SequenceNode:
			items = bodies.Content
		default:
			return fmt.Errorf("line %d: bodies of %s must be a string or a list", bodies.Line, key.Value)
		}
		for _, item := range items {
			body, err := decodeBody(item)
			if err != nil {
				return err
			}
			rule.Alternatives = append(rule.Alternatives, body)
		}
		*r = append(*r, rule)
	}
	return nil
}

func decodeBody(n *yaml.Node) (grammar.Production, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return grammar.Prod(n.Value), nil
	case yaml.SequenceNode:
		var symbols []string
		if err := n.Decode(&symbols); err != nil {
			return nil, err
		}
		body := grammar.Production{}
		for _, s := range symbols {
			body = append(body, grammar.Symbol(s))
		}
		return body, nil
	}
	return nil, fmt.Errorf("line %d: a body must be a string or a list of symbols", n.Line)
}

// Load reads and decodes the workbench at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workbench: %w", err)
	}
	defer f.Close()

	wb, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return wb, nil
}

// Decode reads a workbench document. Unknown keys are rejected.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var wb File
	if err := dec.Decode(&wb); err != nil {
		if errors.Is(err, io.EOF) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("decode workbench: %w", err)
	}
	return &wb, nil
}

// Automaton builds the named automaton.
func (wb *File) Automaton(name string) (*automaton.Automaton, error) {
	spec, ok := wb.Automata[name]
	if !ok {
		return nil, fmt.Errorf("automaton %q: %w", name, ErrNotFound)
	}
	a, err := spec.Build()
	if err != nil {
		return nil, &EntryError{Kind: "automaton", Name: name, Err: err}
	}
	return a, nil
}

// Grammar builds the named grammar.
func (wb *File) Grammar(name string) (*grammar.Grammar, error) {
	spec, ok := wb.Grammars[name]
	if !ok {
		return nil, fmt.Errorf("grammar %q: %w", name, ErrNotFound)
	}
	g, err := spec.Build()
	if err != nil {
		return nil, &EntryError{Kind: "grammar", Name: name, Err: err}
	}
	return g, nil
}

// AutomatonNames returns the defined automata, sorted.
func (wb *File) AutomatonNames() []string { return sortedKeys(wb.Automata) }

// GrammarNames returns the defined grammars, sorted.
func (wb *File) GrammarNames() []string { return sortedKeys(wb.Grammars) }

// Validate builds every entry and reports all failures at once.
func (wb *File) Validate() error {
	var errs []error
	for _, name := range wb.AutomatonNames() {
		if _, err := wb.Automaton(name); err != nil {
			errs = append(errs, err)
		}
	}
	for _, name := range wb.GrammarNames() {
		if _, err := wb.Grammar(name); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// Build constructs the automaton. A regex entry may not list states or
// transitions as well.
func (s AutomatonSpec) Build() (*automaton.Automaton, error) {
	if s.Regex != "" {
		if len(s.States) > 0 || len(s.Transitions) > 0 || s.Start != "" || len(s.Accept) > 0 || len(s.Alphabet) > 0 {
			return nil, errors.New("regex cannot be combined with an explicit description")
		}
		return regex.Compile(s.Regex)
	}

	alphabet := make([]automaton.Symbol, len(s.Alphabet))
	for i, sym := range s.Alphabet {
		alphabet[i] = automaton.Symbol(sym)
	}
	transitions := make([]automaton.Transition, len(s.Transitions))
	for i, t := range s.Transitions {
		transitions[i] = automaton.Transition{
			From:   automaton.Name(t.From),
			Symbol: automaton.Symbol(t.Symbol),
			To:     automaton.Names(t.To...),
		}
	}
	return automaton.New(
		automaton.Names(s.States...),
		alphabet,
		transitions,
		automaton.Name(s.Start),
		automaton.Names(s.Accept...),
	)
}

// Build constructs the grammar.
func (s GrammarSpec) Build() (*grammar.Grammar, error) {
	if s.Text != "" {
		if len(s.Nonterminals) > 0 || len(s.Terminals) > 0 || s.Start != "" || len(s.Productions) > 0 {
			return nil, errors.New("text cannot be combined with a structured description")
		}
		return grammar.Parse(s.Text)
	}
	return grammar.New(symbols(s.Nonterminals), symbols(s.Terminals), s.Productions, grammar.Symbol(s.Start))
}

func symbols(ss []string) []grammar.Symbol {
	out := make([]grammar.Symbol, len(ss))
	for i, s := range ss {
		out[i] = grammar.Symbol(s)
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
