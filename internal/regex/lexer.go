package regex

import "unicode/utf8"

type tokenType int

const (
	tEOF      tokenType = iota
	tChar               // literal rune
	tLParen             // (
	tRParen             // )
	tStar               // *
	tPlus               // +
	tQMark              // ?
	tUnion              // |
	tLBracket           // [
	tRBracket           // ]
	tDash               // - inside []
	tLBrace             // {
	tRBrace             // }
	tComma              // , inside {}
	tEpsilon            // #
)

func (t tokenType) String() string {
	switch t {
	case tEOF:
		return "end of pattern"
	case tChar:
		return "literal"
	case tLParen:
		return "'('"
	case tRParen:
		return "')'"
	case tStar:
		return "'*'"
	case tPlus:
		return "'+'"
	case tQMark:
		return "'?'"
	case tUnion:
		return "'|'"
	case tLBracket:
		return "'['"
	case tRBracket:
		return "']'"
	case tDash:
		return "'-'"
	case tLBrace:
		return "'{'"
	case tRBrace:
		return "'}'"
	case tComma:
		return "','"
	case tEpsilon:
		return "'#'"
	}
	return "unknown"
}

type token struct {
	typ tokenType
	ch  rune // the literal rune, or the operator itself
	pos int  // byte offset in the pattern
}

type lexer struct {
	input string
	pos   int
}

func newLexer(s string) *lexer { return &lexer{input: s} }

func (l *lexer) next() token {
	start := l.pos
	if l.pos >= len(l.input) {
		return token{typ: tEOF, pos: start}
	}
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	tok := token{ch: r, pos: start}
	switch r {
	case '(':
		tok.typ = tLParen
	case ')':
		tok.typ = tRParen
	case '*':
		tok.typ = tStar
	case '+':
		tok.typ = tPlus
	case '?':
		tok.typ = tQMark
	case '|':
		tok.typ = tUnion
	case '[':
		tok.typ = tLBracket
	case ']':
		tok.typ = tRBracket
	case '-':
		tok.typ = tDash
	case '{':
		tok.typ = tLBrace
	case '}':
		tok.typ = tRBrace
	case ',':
		tok.typ = tComma
	case '#':
		tok.typ = tEpsilon
	case '\\':
		tok.typ = tChar
		// a trailing backslash stands for itself
		if l.pos < len(l.input) {
			r2, s2 := utf8.DecodeRuneInString(l.input[l.pos:])
			l.pos += s2
			tok.ch = r2
		}
	default:
		tok.typ = tChar
	}
	return tok
}
