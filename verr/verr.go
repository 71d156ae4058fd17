// Package verr defines the domain-level error taxonomy the query pipeline
// raises and the engine façade reports. Every error that crosses a package
// boundary in the pipeline is a *verr.Error so the façade can render
// "Failed to execute query: <kind>: <message>" without inspecting concrete
// error types.
package verr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is a closed enumeration of the error categories the query pipeline
// can raise.
type Kind string

const (
	Syntax         Kind = "syntax error"
	NoDatabase     Kind = "no database"
	NotFound       Kind = "not found"
	AlreadyExists  Kind = "already exists"
	TypeError      Kind = "type error"
	ArityMismatch  Kind = "arity mismatch"
	SchemaError    Kind = "schema error"
	IOError        Kind = "i/o error"
	NotImplemented Kind = "not implemented"
	Internal       Kind = "internal error"
)

// Error is a wrapped, kinded error. The wrapped cause (if any) retains its
// stack trace via github.com/pkg/errors so debug logging can print it, while
// Error() renders the flat human-readable message the engine façade surfaces
// to callers.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Message, e.cause.Error())
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New builds a *Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds a *Error of the given kind around an existing error, attaching
// a stack trace to the cause with errors.WithStack.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	if cause == nil {
		return New(kind, format, args...)
	}
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		cause:   errors.WithStack(cause),
	}
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
