package grammar

import (
	"errors"
	"fmt"
)

// InvariantCode names the construction invariant a grammar violated.
type InvariantCode string

const (
	ErrCodeEmptySymbol      InvariantCode = "EMPTY_SYMBOL"
	ErrCodeOverlap          InvariantCode = "NONTERMINAL_IS_TERMINAL"
	ErrCodeStartUndeclared  InvariantCode = "START_NOT_NONTERMINAL"
	ErrCodeHeadUndeclared   InvariantCode = "HEAD_NOT_NONTERMINAL"
	ErrCodeUndeclaredSymbol InvariantCode = "UNDECLARED_SYMBOL"
	ErrCodeReservedEpsilon  InvariantCode = "EPSILON_DECLARED"
)

// InvariantError is returned by New when a grammar description is inconsistent.
type InvariantError struct {
	Code    InvariantCode
	Message string
	Head    Symbol
	Symbol  Symbol
}

func (e *InvariantError) Error() string {
	switch {
	case e.Head != "" && e.Symbol != "":
		return fmt.Sprintf("%s: %s (rule=%s, symbol=%s)", e.Code, e.Message, e.Head, e.Symbol)
	case e.Symbol != "":
		return fmt.Sprintf("%s: %s (symbol=%s)", e.Code, e.Message, e.Symbol)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvariantError reports whether err wraps an InvariantError with the given code.
func IsInvariantError(err error, code InvariantCode) bool {
	var ie *InvariantError
	if errors.As(err, &ie) {
		return ie.Code == code
	}
	return false
}
