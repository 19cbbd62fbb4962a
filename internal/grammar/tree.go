package grammar

import (
	"fmt"
	"strings"
)

// DerivationTree records one derivation: a node per symbol, with the chosen
// alternative expanded into children.
type DerivationTree struct {
	Symbol    Symbol
	Terminal  bool
	Children  []*DerivationTree
	Expansion Production // nil when the node was not expanded
}

// GenerateTree derives from symbol like GenerateString and keeps the tree. For
// a nonterminal symbol and rng in the same state both consume the same random
// choices, so GenerateTree(...).Yield() equals GenerateString(...).
func (g *Grammar) GenerateTree(rng Rand, symbol Symbol, maxDepth int) *DerivationTree {
	node := &DerivationTree{Symbol: symbol, Terminal: g.IsTerminal(symbol)}
	if !g.IsNonterminal(symbol) {
		return node
	}
	body, ok := g.choose(rng, symbol, maxDepth)
	if !ok {
		return node
	}
	node.Expansion = append(Production{}, body...)
	for _, s := range body {
		node.Children = append(node.Children, g.GenerateTree(rng, s, maxDepth-1))
	}
	return node
}

// Yield concatenates the terminal leaves of the tree.
func (t *DerivationTree) Yield() string {
	var b strings.Builder
	t.walk(func(n *DerivationTree) {
		if n.Terminal {
			b.WriteString(string(n.Symbol))
		}
	})
	return b.String()
}

func (t *DerivationTree) walk(fn func(*DerivationTree)) {
	fn(t)
	for _, c := range t.Children {
		c.walk(fn)
	}
}

// Depth is the length of the longest root-to-leaf path.
func (t *DerivationTree) Depth() int {
	max := 0
	for _, c := range t.Children {
		if d := c.Depth() + 1; d > max {
			max = d
		}
	}
	return max
}

// Steps returns the rule applications of the tree in leftmost order, formatted
// as "A -> body".
func (t *DerivationTree) Steps() []string {
	var out []string
	if t.Expansion != nil {
		out = append(out, fmt.Sprintf("%s -> %s", t.Symbol, formatBody(t.Expansion)))
	}
	for _, c := range t.Children {
		out = append(out, c.Steps()...)
	}
	return out
}

// String renders the tree as an s-expression, e.g. (S a (A b)).
func (t *DerivationTree) String() string {
	if len(t.Children) == 0 {
		return string(t.Symbol)
	}
	parts := make([]string, len(t.Children))
	for i, c := range t.Children {
		parts[i] = c.String()
	}
	return fmt.Sprintf("(%s %s)", t.Symbol, strings.Join(parts, " "))
}
