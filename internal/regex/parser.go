package regex

import (
	"fmt"
	"sort"
)

// maxRepeat bounds the counts accepted in {m,n}.
const maxRepeat = 1000

// SyntaxError describes a malformed pattern.
type SyntaxError struct {
	Pattern string
	Offset  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("regex %q: %s at offset %d", e.Pattern, e.Message, e.Offset)
}

type parser struct {
	pattern string
	lex     *lexer
	look    token
}

func newParser(pat string) *parser {
	p := &parser{pattern: pat, lex: newLexer(pat)}
	p.look = p.lex.next()
	return p
}

func (p *parser) scan() { p.look = p.lex.next() }

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Pattern: p.pattern, Offset: p.look.pos, Message: fmt.Sprintf(format, args...)}
}

// parse reads the whole pattern.
func (p *parser) parse() (*node, error) {
	n, err := p.parseExpr(1)
	if err != nil {
		return nil, err
	}
	if p.look.typ != tEOF {
		return nil, p.errorf("unexpected %s", p.look.typ)
	}
	return n, nil
}

// Binding powers: union 1, implicit concatenation 2. Postfix operators bind
// tightest and are handled right after an atom.
func precedence(t tokenType) int {
	switch t {
	case tUnion:
		return 1
	case tChar, tLParen, tLBracket, tEpsilon, tDash, tComma:
		return 2
	}
	return 0
}

func (p *parser) parseExpr(minPrec int) (*node, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if left, err = p.parsePostfix(left); err != nil {
		return nil, err
	}

	for prec := precedence(p.look.typ); prec >= minPrec && prec > 0; prec = precedence(p.look.typ) {
		typ := nConcat
		if p.look.typ == tUnion {
			typ = nUnion
			p.scan()
		}
		right, err := p.parseExpr(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &node{typ: typ, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseAtom() (*node, error) {
	switch p.look.typ {
	case tChar, tDash, tComma:
		n := &node{typ: nChar, ch: p.look.ch}
		p.scan()
		return n, nil
	case tEpsilon:
		p.scan()
		return &node{typ: nEmpty}, nil
	case tLParen:
		p.scan()
		inner, err := p.parseExpr(1)
		if err != nil {
			return nil, err
		}
		if p.look.typ != tRParen {
			return nil, p.errorf("expected ')'")
		}
		p.scan()
		return inner, nil
	case tLBracket:
		p.scan()
		set, err := p.parseClass()
		if err != nil {
			return nil, err
		}
		return &node{typ: nSet, set: set}, nil
	case tEOF:
		return nil, p.errorf("missing operand")
	}
	return nil, p.errorf("unexpected %s", p.look.typ)
}

func (p *parser) parsePostfix(left *node) (*node, error) {
	for {
		switch p.look.typ {
		case tStar:
			left = &node{typ: nStar, left: left}
			p.scan()
		case tPlus:
			left = &node{typ: nPlus, left: left}
			p.scan()
		case tQMark:
			left = &node{typ: nQMark, left: left}
			p.scan()
		case tLBrace:
			min, max, err := p.parseRepeat()
			if err != nil {
				return nil, err
			}
			left = &node{typ: nRepeat, left: left, min: min, max: max}
		default:
			return left, nil
		}
	}
}

// parseClass reads the members of [...] after the opening bracket. A dash
// between two members makes a range; elsewhere it is literal.
func (p *parser) parseClass() ([]rune, error) {
	set := map[rune]struct{}{}
	for p.look.typ != tRBracket {
		if p.look.typ == tEOF {
			return nil, p.errorf("missing ']'")
		}
		lo := p.look.ch
		p.scan()
		if p.look.typ == tDash {
			p.scan()
			if p.look.typ == tRBracket || p.look.typ == tEOF {
				set[lo] = struct{}{}
				set['-'] = struct{}{}
				continue
			}
			hi := p.look.ch
			if hi < lo {
				return nil, p.errorf("invalid range %c-%c", lo, hi)
			}
			p.scan()
			for r := lo; r <= hi; r++ {
				set[r] = struct{}{}
			}
			continue
		}
		set[lo] = struct{}{}
	}
	p.scan()
	if len(set) == 0 {
		return nil, p.errorf("empty character class")
	}

	out := make([]rune, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// parseRepeat reads {m}, {m,} or {m,n}.
func (p *parser) parseRepeat() (int, int, error) {
	p.scan() // '{'
	min, ok := p.number()
	if !ok {
		return 0, 0, p.errorf("expected number")
	}
	max := min
	if p.look.typ == tComma {
		p.scan()
		if max, ok = p.number(); !ok {
			max = -1
		}
	}
	if p.look.typ != tRBrace {
		return 0, 0, p.errorf("expected '}'")
	}
	if max != -1 && max < min {
		return 0, 0, p.errorf("repeat maximum %d is below minimum %d", max, min)
	}
	if min > maxRepeat || max > maxRepeat {
		return 0, 0, p.errorf("repeat count above %d", maxRepeat)
	}
	p.scan()
	return min, max, nil
}

func (p *parser) number() (int, bool) {
	n, digits := 0, 0
	for p.look.typ == tChar && p.look.ch >= '0' && p.look.ch <= '9' {
		n = n*10 + int(p.look.ch-'0')
		digits++
		if n > maxRepeat {
			n = maxRepeat + 1
		}
		p.scan()
	}
	return n, digits > 0
}
