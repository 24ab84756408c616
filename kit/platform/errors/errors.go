package errors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Error codes understood by the HTTP layer. Any new code needs a status
// mapping in kit/transport/http.
const (
	EInternal         = "internal error"
	ENotFound         = "not found"
	EConflict         = "conflict" // action cannot be performed
	EInvalid          = "invalid"  // validation failed
	EEmptyValue       = "empty value"
	EUnavailable      = "unavailable"
	EForbidden        = "forbidden"
	EUnauthorized     = "unauthorized"
	EMethodNotAllowed = "method not allowed"
)

// Violation is a single field-level constraint failure surfaced on
// validation errors.
type Violation struct {
	Field string `json:"field"`
	Msg   string `json:"message"`
}

// Error is the platform error struct.
//
// The Code targets automated handlers so that recovery can occur.
// Msg is used by the system operator to help diagnose and fix the problem.
// Op and Err chain errors together in a logical stack trace.
// Details carries field-level violations for EInvalid errors.
type Error struct {
	Code    string
	Msg     string
	Op      string
	Err     error
	Details []Violation
}

// Error implements the error interface by writing out the recursive messages.
func (e *Error) Error() string {
	if e.Msg != "" && e.Err != nil {
		var b strings.Builder
		b.WriteString(e.Msg)
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
		return b.String()
	} else if e.Msg != "" {
		return e.Msg
	} else if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("<%s>", e.Code)
}

// Unwrap exposes the wrapped error to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorCode returns the code of the root error, if available; otherwise returns EInternal.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}

	e, ok := err.(*Error)
	if !ok {
		return EInternal
	}

	if e == nil {
		return ""
	}

	if e.Code != "" {
		return e.Code
	}

	if e.Err != nil {
		return ErrorCode(e.Err)
	}

	return EInternal
}

// ErrorOp returns the op of the error, if available; otherwise returns an empty string.
func ErrorOp(err error) string {
	if err == nil {
		return ""
	}

	e, ok := err.(*Error)
	if !ok {
		return ""
	}

	if e == nil {
		return ""
	}

	if e.Op != "" {
		return e.Op
	}

	if e.Err != nil {
		return ErrorOp(e.Err)
	}

	return ""
}

// ErrorMessage returns the human-readable message of the error, if available.
// Otherwise returns a generic message so internals never leak to clients.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	e, ok := err.(*Error)
	if !ok {
		return "An internal error has occurred."
	}

	if e == nil {
		return ""
	}

	if e.Msg != "" {
		return e.Msg
	}

	if e.Err != nil {
		return ErrorMessage(e.Err)
	}

	return "An internal error has occurred."
}

// ErrorDetails returns the field violations of the outermost error that has any.
func ErrorDetails(err error) []Violation {
	e, ok := err.(*Error)
	if !ok || e == nil {
		return nil
	}

	if len(e.Details) > 0 {
		return e.Details
	}

	if e.Err != nil {
		return ErrorDetails(e.Err)
	}

	return nil
}

// errEncode is a JSON encoding helper that handles the recursive error stack.
type errEncode struct {
	Code    string      `json:"code"`
	Msg     string      `json:"message,omitempty"`
	Op      string      `json:"op,omitempty"`
	Err     interface{} `json:"error,omitempty"`
	Details []Violation `json:"details,omitempty"`
}

// MarshalJSON recursively marshals the stack of Err.
func (e *Error) MarshalJSON() ([]byte, error) {
	ee := errEncode{
		Code:    e.Code,
		Msg:     e.Msg,
		Op:      e.Op,
		Details: e.Details,
	}
	if e.Err != nil {
		if inner, ok := e.Err.(*Error); ok {
			ee.Err = inner
		} else {
			ee.Err = e.Err.Error()
		}
	}
	return json.Marshal(ee)
}

// HTTPErrorHandler is the interface used by handlers to translate errors to responses.
type HTTPErrorHandler interface {
	HandleHTTPError(ctx context.Context, err error, w http.ResponseWriter)
}
