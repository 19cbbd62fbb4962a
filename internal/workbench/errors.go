package workbench

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by lookups of undefined entries.
var ErrNotFound = errors.New("not defined in workbench")

// EntryError ties a build failure to the workbench entry that caused it.
type EntryError struct {
	Kind string // "automaton" or "grammar"
	Name string
	Err  error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Kind, e.Name, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// AggregateError collects every failing entry found by Validate.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d invalid entries:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// ValidationErrors returns the collected errors if err is an AggregateError,
// nil otherwise.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
