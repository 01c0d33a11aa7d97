// Package serrors defines the closed set of semantic error kinds used across
// the service and the single mapping from those kinds to the status, message
// and detail rendered at the API boundary.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

// kind is an unexported implementation of Kind used as a sentinel value for a
// semantic error category.
type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided
// name. Kinds are comparable and can be matched with errors.Is/As through the
// Error wrapper.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrValidation indicates the client input failed the operation's rule set.
	// Errors of this kind carry the ordered list of violations as Data.
	ErrValidation = NewKind("VALIDATION")
	// ErrConflict indicates a unique entity already exists.
	ErrConflict = NewKind("CONFLICT")
	// ErrNotFound indicates a referenced entity does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates a missing, invalid or expired credential.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrStorage indicates a persistence layer fault. Its cause is never shown
	// to the caller.
	ErrStorage = NewKind("STORAGE")
	// ErrBadRequest indicates the request could not be decoded.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrTimeout indicates the operation ran past its deadline.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrInternal indicates an internal server error.
	ErrInternal = NewKind("INTERNAL")
)

// Error represents a semantic error carrying a kind (sentinel), an optional
// wrapped cause, an optional human-readable message and optional structured
// detail. It fully supports errors.Is/errors.As and unwrapping.
//
// Matching semantics:
//   - errors.Is(err, target) matches if target matches either the kind
//     sentinel or the wrapped error.
//   - errors.As(err, target) succeeds for either the kind sentinel or the
//     wrapped error.
//
// Error string formatting:
//   - If both msg and err are set: "<msg>: <err>"
//   - If only msg is set: "<msg>"
//   - If only err is set: "<err>"
//   - If neither set: the kind's Error() string.
type Error struct {
	kind Kind  // semantic kind sentinel
	err  error // wrapped error (optional)
	msg  string
	data []string
}

// With constructs a new semantic error with the given kind and message.
// Use Wrap to also attach a concrete cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind wrapping err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// WithData constructs a semantic error carrying structured detail, such as the
// ordered list of validation violations.
func WithData(k Kind, data []string, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...), data: data}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the semantic kind sentinel or the wrapped error.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As enables type assertions against either the kind sentinel or the wrapped
// error in the chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error, without the cause.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// Data returns the structured detail attached to this error (may be nil).
func (e *Error) Data() []string { return e.data }
