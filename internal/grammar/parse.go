package grammar

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Text format, one rule per line:
//
//	# comment
//	S -> aA | <Tail> 'id'
//	A -> b | ε
//
// Symbols are single characters, <bracketed> nonterminal names or 'quoted'
// terminal names. Rule heads, bracketed names and uppercase characters are
// nonterminals; everything else is a terminal. The first head is the start
// symbol.

type ruleSet struct {
	Rules []*ruleLine `parser:"EOL* ( @@ EOL* )*"`
}

type ruleLine struct {
	Head   string      `parser:"@(Bracketed | Char) Arrow"`
	Bodies []*bodyText `parser:"@@ ( Pipe @@ )*"`
}

type bodyText struct {
	Epsilon bool     `parser:"  @Epsilon"`
	Symbols []string `parser:"| @(Bracketed | Quoted | Char)+"`
}

var textLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "EOL", Pattern: `[\r\n]+`},
	{Name: "Space", Pattern: `[ \t]+`},
	{Name: "Arrow", Pattern: `->|→`},
	{Name: "Pipe", Pattern: `\|`},
	{Name: "Epsilon", Pattern: `ε`},
	{Name: "Bracketed", Pattern: `<[^<>\s]+>`},
	{Name: "Quoted", Pattern: `'[^'\s]+'`},
	{Name: "Char", Pattern: `[^\s|<>#']`},
})

var textParser = participle.MustBuild[ruleSet](
	participle.Lexer(textLexer),
	participle.Elide("Comment", "Space"),
)

// Parse reads a grammar in the text format.
func Parse(text string) (*Grammar, error) {
	set, err := textParser.ParseString("grammar", text)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if len(set.Rules) == 0 {
		return nil, fmt.Errorf("parse grammar: no rules")
	}

	isNT := map[Symbol]bool{}
	var order []Symbol
	note := func(s Symbol, nonterminal bool) {
		if _, seen := isNT[s]; !seen {
			order = append(order, s)
		}
		isNT[s] = isNT[s] || nonterminal
	}

	rules := make([]Rule, 0, len(set.Rules))
	for _, line := range set.Rules {
		head := unwrap(line.Head)
		note(head, true)
		rule := Rule{Head: head}
		for _, b := range line.Bodies {
			body := Production{}
			if !b.Epsilon {
				for _, tok := range b.Symbols {
					s := unwrap(tok)
					note(s, strings.HasPrefix(tok, "<") || (!strings.HasPrefix(tok, "'") && isUpper(s)))
					body = append(body, s)
				}
			}
			rule.Alternatives = append(rule.Alternatives, body)
		}
		rules = append(rules, rule)
	}

	var nonterminals, terminals []Symbol
	for _, s := range order {
		if isNT[s] {
			nonterminals = append(nonterminals, s)
		} else {
			terminals = append(terminals, s)
		}
	}
	return New(nonterminals, terminals, rules, rules[0].Head)
}

func unwrap(tok string) Symbol {
	if len(tok) >= 2 && (tok[0] == '<' || tok[0] == '\'') {
		return Symbol(tok[1 : len(tok)-1])
	}
	return Symbol(tok)
}

// String prints the grammar in the text format, start rule first.
func (g *Grammar) String() string {
	heads := []Symbol{}
	if _, ok := g.rules[g.start]; ok {
		heads = append(heads, g.start)
	}
	for _, h := range g.heads {
		if h != g.start {
			heads = append(heads, h)
		}
	}

	var b strings.Builder
	for _, h := range heads {
		bodies := make([]string, len(g.rules[h]))
		for i, p := range g.rules[h] {
			bodies[i] = g.formatBody(p)
		}
		fmt.Fprintf(&b, "%s -> %s\n", g.formatSymbol(h), strings.Join(bodies, " | "))
	}
	return b.String()
}

func (g *Grammar) formatBody(p Production) string {
	if p.IsEmpty() {
		return string(Epsilon)
	}
	var b strings.Builder
	for _, s := range p {
		b.WriteString(g.formatSymbol(s))
	}
	return b.String()
}

func (g *Grammar) formatSymbol(s Symbol) string {
	single := utf8.RuneCountInString(string(s)) == 1
	if g.IsNonterminal(s) {
		_, isHead := g.rules[s]
		if single && (isUpper(s) || isHead) {
			return string(s)
		}
		return "<" + string(s) + ">"
	}
	if g.IsTerminal(s) && (!single || isUpper(s)) {
		return "'" + string(s) + "'"
	}
	return string(s)
}

// formatBody renders a production outside of any grammar: single-character
// symbols stay bare, longer ones are bracketed.
func formatBody(p Production) string {
	if p.IsEmpty() {
		return string(Epsilon)
	}
	var b strings.Builder
	for _, s := range p {
		if utf8.RuneCountInString(string(s)) == 1 {
			b.WriteString(string(s))
		} else {
			b.WriteString("<" + string(s) + ">")
		}
	}
	return b.String()
}
