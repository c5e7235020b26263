package v1specs

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
)

// ErrSecurityRequirementIsNotSatisfied is reported when a secured operation
// is called without credentials.
var ErrSecurityRequirementIsNotSatisfied = errors.New("security requirement is not satisfied")

// DecodeRequestError is returned when a request body cannot be decoded.
type DecodeRequestError struct {
	OperationContext
	Err error
}

func (d *DecodeRequestError) Error() string {
	return fmt.Sprintf("operation %s: decode request: %s", d.Name, d.Err)
}

func (d *DecodeRequestError) Unwrap() error { return d.Err }

// DecodeParamError is returned when a path or query parameter is invalid.
type DecodeParamError struct {
	Name string
	In   string
	Err  error
}

func (d *DecodeParamError) Error() string {
	return fmt.Sprintf("decode %s: %s parameter: %s", d.In, d.Name, d.Err)
}

func (d *DecodeParamError) Unwrap() error { return d.Err }

// SecurityError wraps a failure of the security handler.
type SecurityError struct {
	OperationContext
	Security string
	Err      error
}

func (s *SecurityError) Error() string {
	return fmt.Sprintf("operation %s: security %q: %s", s.Name, s.Security, s.Err)
}

func (s *SecurityError) Unwrap() error { return s.Err }

// OperationContext identifies the operation an error belongs to.
type OperationContext struct {
	Name OperationName
	ID   string
}

// ErrRouteNotFound is reported for paths no operation is registered on.
var ErrRouteNotFound = errors.New("route not found")

// MethodNotAllowedError is reported when the path is routed but not for the
// request method.
type MethodNotAllowedError struct {
	Method  string
	Allowed []string
}

func (m *MethodNotAllowedError) Error() string {
	return fmt.Sprintf("method %s not allowed, allowed: %s", m.Method, strings.Join(m.Allowed, ", "))
}
