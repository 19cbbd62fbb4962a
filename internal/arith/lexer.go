package arith

import (
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

var (
	compileOnce sync.Once
	compiled    *lexmachine.Lexer
	compileErr  error
)

func tokenizer() (*lexmachine.Lexer, error) {
	compileOnce.Do(func() {
		lx := lexmachine.NewLexer()
		lx.Add([]byte(`[ \t\n\r]+`), skip)
		lx.Add([]byte(`[+]`), tokAction(Plus))
		lx.Add([]byte(`-`), tokAction(Minus))
		lx.Add([]byte(`[*]`), tokAction(Mul))
		lx.Add([]byte(`/`), tokAction(Div))
		lx.Add([]byte(`[(]`), tokAction(LParen))
		lx.Add([]byte(`[)]`), tokAction(RParen))
		lx.Add([]byte(`[0-9]+`), tokAction(Integer))
		lx.Add([]byte(`[a-zA-Z_][a-zA-Z0-9_]*`), tokAction(Ident))
		compileErr = lx.Compile()
		compiled = lx
	})
	return compiled, compileErr
}

// Lexer turns arithmetic source into tokens.
type Lexer struct {
	scanner *lexmachine.Scanner
	final   *Token
}

func NewLexer(input []byte) (*Lexer, error) {
	lx, err := tokenizer()
	if err != nil {
		return nil, fmt.Errorf("compile tokenizer: %w", err)
	}
	scanner, err := lx.Scanner(input)
	if err != nil {
		return nil, err
	}
	return &Lexer{scanner: scanner}, nil
}

// NextToken returns the next token. At the end of input it keeps returning
// EOF; after a character it cannot match it keeps returning ILLEGAL with the
// scanner's message as literal.
func (l *Lexer) NextToken() Token {
	if l.final != nil {
		return *l.final
	}
	tok, err, eof := l.scanner.Next()
	switch {
	case eof:
		l.final = &Token{Kind: EOF}
	case err != nil:
		l.final = &Token{Kind: Illegal, Literal: err.Error()}
	default:
		return tok.(Token)
	}
	return *l.final
}

// Tokenize scans the whole input. The returned slice ends with EOF.
func Tokenize(input string) ([]Token, error) {
	l, err := NewLexer([]byte(input))
	if err != nil {
		return nil, err
	}
	var out []Token
	for {
		tok := l.NextToken()
		if tok.Kind == Illegal {
			return out, fmt.Errorf("tokenize: %s", tok.Literal)
		}
		out = append(out, tok)
		if tok.Kind == EOF {
			return out, nil
		}
	}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func tokAction(kind Kind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return Token{
			Kind:    kind,
			Literal: string(m.Bytes),
			Line:    m.StartLine,
			Column:  m.StartColumn,
		}, nil
	}
}
