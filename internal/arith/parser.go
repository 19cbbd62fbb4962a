package arith

import (
	"fmt"
	"strconv"
)

// SyntaxError reports the token at which parsing stopped.
type SyntaxError struct {
	Token   Token
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Token.Kind == EOF || e.Token.Kind == Illegal {
		return "syntax error: " + e.Message
	}
	return fmt.Sprintf("syntax error at %d:%d: %s", e.Token.Line, e.Token.Column, e.Message)
}

// Parser is a recursive-descent parser over the token stream:
//
//	expression = term { ("+" | "-") term }
//	term       = factor { ("*" | "/") factor }
//	factor     = INTEGER | ID | "(" expression ")" | "-" factor
type Parser struct {
	lexer *Lexer
	cur   Token
}

func NewParser(l *Lexer) *Parser {
	return &Parser{lexer: l, cur: l.NextToken()}
}

// Parse parses a complete expression from src.
func Parse(src string) (Node, error) {
	l, err := NewLexer([]byte(src))
	if err != nil {
		return nil, err
	}
	p := NewParser(l)
	n, err := p.Expression()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != EOF {
		return nil, p.unexpected()
	}
	return n, nil
}

func (p *Parser) Expression() (Node, error) {
	node, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == Plus || p.cur.Kind == Minus {
		op := p.cur.Literal[0]
		p.advance()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		node = &Binary{Op: op, Left: node, Right: right}
	}
	return node, nil
}

func (p *Parser) term() (Node, error) {
	node, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == Mul || p.cur.Kind == Div {
		op := p.cur.Literal[0]
		p.advance()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		node = &Binary{Op: op, Left: node, Right: right}
	}
	return node, nil
}

func (p *Parser) factor() (Node, error) {
	tok := p.cur
	switch tok.Kind {
	case Integer:
		v, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, &SyntaxError{Token: tok, Message: err.Error()}
		}
		p.advance()
		return &Number{Value: v}, nil
	case Ident:
		p.advance()
		return &Variable{Name: tok.Literal}, nil
	case Minus:
		p.advance()
		operand, err := p.factor()
		if err != nil {
			return nil, err
		}
		return &Negate{Operand: operand}, nil
	case LParen:
		p.advance()
		node, err := p.Expression()
		if err != nil {
			return nil, err
		}
		if err := p.eat(RParen); err != nil {
			return nil, err
		}
		return node, nil
	}
	return nil, p.unexpected()
}

func (p *Parser) advance() { p.cur = p.lexer.NextToken() }

func (p *Parser) eat(kind Kind) error {
	if p.cur.Kind != kind {
		return &SyntaxError{Token: p.cur, Message: fmt.Sprintf("expected %s, but found %s", kind, p.cur.Kind)}
	}
	p.advance()
	return nil
}

func (p *Parser) unexpected() error {
	switch p.cur.Kind {
	case Illegal:
		return &SyntaxError{Token: p.cur, Message: p.cur.Literal}
	case EOF:
		return &SyntaxError{Token: p.cur, Message: "unexpected end of input"}
	}
	return &SyntaxError{Token: p.cur, Message: fmt.Sprintf("unexpected %s", p.cur)}
}

// Eval parses and evaluates src in env.
func Eval(src string, env Env) (int64, error) {
	n, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return n.Eval(env)
}
