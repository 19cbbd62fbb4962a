package arith

import "fmt"

// Kind classifies a token.
type Kind string

const (
	Illegal Kind = "ILLEGAL"
	EOF     Kind = "EOF"
	Integer Kind = "INTEGER"
	Ident   Kind = "ID"
	Plus    Kind = "PLUS"
	Minus   Kind = "MINUS"
	Mul     Kind = "MUL"
	Div     Kind = "DIV"
	LParen  Kind = "LPAREN"
	RParen  Kind = "RPAREN"
)

type Token struct {
	Kind    Kind
	Literal string
	Line    int
	Column  int
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Kind, t.Literal)
}
