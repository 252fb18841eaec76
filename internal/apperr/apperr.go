// Package apperr defines the error kinds returned by the series, growth and app packages.
package apperr

import (
	"errors"
	"fmt"
)

// Error kinds. Match with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrMissingColumn   = errors.New("missing column")
	ErrGeneration      = errors.New("generation error")
	ErrEmptyInput      = errors.New("empty input")
)

// Error carries a kind, a message, an optional cause and context values for logging.
type Error struct {
	Kind    error
	Message string
	Cause   error
	Context map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap allows errors.Is and errors.As to reach the cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is this error's kind.
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

// WithContext adds a context value and returns the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// InvalidArgument reports a parameter that violates a precondition.
func InvalidArgument(name string, value any, reason string) *Error {
	return (&Error{
		Kind:    ErrInvalidArgument,
		Message: fmt.Sprintf("%s must be %s, got %v", name, reason, value),
	}).WithContext(name, value)
}

// MissingColumn reports a required column absent from a table.
func MissingColumn(column string) *Error {
	return (&Error{
		Kind:    ErrMissingColumn,
		Message: fmt.Sprintf("column %q is missing", column),
	}).WithContext("column", column)
}

// Generation wraps an unexpected failure while synthesizing data.
func Generation(cause error) *Error {
	return &Error{
		Kind:    ErrGeneration,
		Message: "data generation failed",
		Cause:   cause,
	}
}

// EmptyInput reports an operation requested over zero rows.
func EmptyInput(op string) *Error {
	return (&Error{
		Kind:    ErrEmptyInput,
		Message: op + " requires at least one row",
	}).WithContext("op", op)
}
