package automaton

import (
	"fmt"
	"strings"
)

// RegularGrammarRules derives right-linear rule lines from the transitions, in
// transition order. A transition into an accepting state yields
// "<from> -> symbol". Any other transition first yields the rule listing every
// move out of the target, then "<from> -> <target> symbol". The last line binds
// the start symbol S. Lines are neither merged nor deduplicated.
func (a *Automaton) RegularGrammarRules() []string {
	var rules []string
	for _, k := range a.transOrder {
		from := a.transFrom[k]
		for _, next := range a.trans[k] {
			if a.IsAccepting(next) {
				rules = append(rules, fmt.Sprintf("<%s> -> %s", from, k.sym))
				continue
			}
			rules = append(rules, strings.TrimRight(fmt.Sprintf("<%s> -> %s", next, strings.Join(a.moves(next), "|")), " "))
			rules = append(rules, fmt.Sprintf("<%s> -> <%s> %s", from, next, k.sym))
		}
	}
	return append(rules, fmt.Sprintf("S -> <%s>", a.start))
}

// ToRegularGrammar joins RegularGrammarRules with newlines.
func (a *Automaton) ToRegularGrammar() string {
	return strings.Join(a.RegularGrammarRules(), "\n")
}

func (a *Automaton) moves(s State) []string {
	var out []string
	for _, sym := range a.alphabet {
		for _, t := range a.targets(s.Key(), sym) {
			out = append(out, fmt.Sprintf("%s<%s>", sym, t))
		}
	}
	return out
}
