// Package apperr defines the error type used for user-facing failures
package apperr

import (
	"fmt"
)

// Error represents a pomobar error.
type Error struct {
	Cause    error
	Message  string
	template string
}

// Error returns the error message, followed by the cause (if any).
func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target carries the same message template. It allows
// errors.Is to match values produced by Fmt or Wrap against the original
// error variable.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Message == e.Message || t.Message == e.template
}

// Fmt formats the message template with the provided arguments.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message:  fmt.Sprintf(e.Message, args...),
		Cause:    e.Cause,
		template: e.Message,
	}
}

// Wrap attaches a cause to the error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message:  e.Message,
		Cause:    err,
		template: e.template,
	}
}
