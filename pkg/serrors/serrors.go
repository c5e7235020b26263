// Package serrors implements semantic errors: a sentinel kind (NOT_FOUND,
// CONFLICT, ...) optionally carrying a cause and a caller-facing message.
package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

type kind struct {
	s      string
	status int
}

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided
// name and the HTTP status it is reported with.
func NewKind(name string, status int) Kind { return kind{s: name, status: status} }

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = NewKind("NOT_FOUND", http.StatusNotFound)
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED", http.StatusUnauthorized)
	// ErrForbidden indicates the caller is not allowed to perform the operation,
	// e.g. a wrong registration key or invalid credentials.
	ErrForbidden = NewKind("FORBIDDEN", http.StatusForbidden)
	// ErrBadRequest indicates malformed input caught before reaching the store.
	ErrBadRequest = NewKind("BAD_REQUEST", http.StatusBadRequest)
	// ErrConflict indicates a uniqueness conflict (duplicate email or reference).
	ErrConflict = NewKind("CONFLICT", http.StatusConflict)
	// ErrMethodNotAllowed indicates a routed path called with an unsupported method.
	ErrMethodNotAllowed = NewKind("METHOD_NOT_ALLOWED", http.StatusMethodNotAllowed)
	// ErrConstraintViolation indicates input referencing rows that do not exist.
	ErrConstraintViolation = NewKind("CONSTRAINT_VIOLATION", http.StatusUnprocessableEntity)
	// ErrInternal indicates an internal server error.
	ErrInternal = NewKind("INTERNAL", http.StatusInternalServerError)
)

// Error represents a semantic error carrying a kind (sentinel), an optional
// wrapped error and an optional arbitrary message. It fully supports
// errors.Is/errors.As and unwrapping.
//
// Error string formatting:
//   - If both msg and err are set: "<msg>: <err>"
//   - If only msg is set: "<msg>"
//   - If only err is set: "<err>"
//   - If neither set: the kind's Error() string.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a new semantic error with the given kind and a
// human-readable message. Use Wrap to also keep a concrete cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind wrapping err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
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

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the kind sentinel or the wrapped error.
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

// As extracts either the kind sentinel or a type from the wrapped chain.
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

// Message returns the arbitrary message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// KindOf returns the outermost semantic kind found in err's chain together
// with the message a caller may see. Errors without a kind are reported as
// ErrInternal with a generic message so internals never leak.
func KindOf(err error) (Kind, string) {
	var se *Error
	if errors.As(err, &se) && se.kind != nil && se.kind != ErrInternal {
		msg := se.msg
		if msg == "" {
			msg = defaultMessage(se.kind)
		}

		return se.kind, msg
	}

	var k Kind
	if errors.As(err, &k) && k != ErrInternal {
		return k, defaultMessage(k)
	}

	return ErrInternal, defaultMessage(ErrInternal)
}

// StatusCode returns the HTTP status associated with k.
func StatusCode(k Kind) int {
	if kk, ok := k.(kind); ok {
		return kk.status
	}

	return http.StatusInternalServerError
}

func defaultMessage(k Kind) string {
	switch k {
	case ErrNotFound:
		return "resource not found"
	case ErrUnauthorized:
		return "unauthorized"
	case ErrForbidden:
		return "forbidden"
	case ErrBadRequest:
		return "bad request"
	case ErrConflict:
		return "resource already exists"
	case ErrMethodNotAllowed:
		return "method not allowed"
	case ErrConstraintViolation:
		return "referenced resource does not exist"
	default:
		return "internal error"
	}
}
