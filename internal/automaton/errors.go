package automaton

import (
	"errors"
	"fmt"
)

// InvariantCode names the construction invariant an automaton violated.
type InvariantCode string

const (
	ErrCodeNoStates          InvariantCode = "NO_STATES"
	ErrCodeNilState          InvariantCode = "NIL_STATE"
	ErrCodeEmptySymbol       InvariantCode = "EMPTY_SYMBOL"
	ErrCodeStartNotInStates  InvariantCode = "START_NOT_IN_STATES"
	ErrCodeAcceptNotInStates InvariantCode = "ACCEPT_NOT_IN_STATES"
	ErrCodeUnknownSource     InvariantCode = "TRANSITION_SOURCE_UNKNOWN"
	ErrCodeUnknownTarget     InvariantCode = "TRANSITION_TARGET_UNKNOWN"
	ErrCodeUnknownSymbol     InvariantCode = "TRANSITION_SYMBOL_UNKNOWN"
)

// InvariantError is returned by New when the description of an automaton is
// inconsistent.
type InvariantError struct {
	Code    InvariantCode
	Message string

	// State and Symbol identify the offending element, when there is one.
	State  string
	Symbol Symbol
}

func (e *InvariantError) Error() string {
	switch {
	case e.State != "" && e.Symbol != "":
		return fmt.Sprintf("%s: %s (state=%s, symbol=%s)", e.Code, e.Message, e.State, e.Symbol)
	case e.State != "":
		return fmt.Sprintf("%s: %s (state=%s)", e.Code, e.Message, e.State)
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

func invariantf(code InvariantCode, st State, sym Symbol, format string, args ...any) *InvariantError {
	e := &InvariantError{Code: code, Message: fmt.Sprintf(format, args...), Symbol: sym}
	if st != nil {
		e.State = st.String()
	}
	return e
}
