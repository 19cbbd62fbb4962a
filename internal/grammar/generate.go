package grammar

import "strings"

// Rand is the randomness source used for derivations; *math/rand.Rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}

type frame struct {
	sym   Symbol
	depth int
}

// GenerateString derives a string from symbol, choosing each alternative
// uniformly with rng. Every expansion costs one unit of maxDepth; a nonterminal
// met with no depth left, or without alternatives, contributes nothing, so the
// result may be a truncated derivation. Terminals are copied, Epsilon is dropped.
// maxDepth <= 0 yields "".
func (g *Grammar) GenerateString(rng Rand, symbol Symbol, maxDepth int) string {
	if maxDepth <= 0 {
		return ""
	}
	var out strings.Builder
	stack := []frame{{sym: symbol, depth: maxDepth}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch {
		case g.IsTerminal(f.sym):
			out.WriteString(string(f.sym))
		case g.IsNonterminal(f.sym):
			body, ok := g.choose(rng, f.sym, f.depth)
			if !ok {
				continue
			}
			for i := len(body) - 1; i >= 0; i-- {
				stack = append(stack, frame{sym: body[i], depth: f.depth - 1})
			}
		}
	}
	return out.String()
}

// GenerateStrings derives count strings from the start symbol, in order.
func (g *Grammar) GenerateStrings(rng Rand, count, maxDepth int) []string {
	if count < 0 {
		count = 0
	}
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, g.GenerateString(rng, g.start, maxDepth))
	}
	return out
}

func (g *Grammar) choose(rng Rand, head Symbol, depth int) (Production, bool) {
	alts := g.rules[head]
	if depth <= 0 || len(alts) == 0 {
		return nil, false
	}
	return alts[rng.Intn(len(alts))], true
}
