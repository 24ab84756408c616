package logiflow

import "github.com/logiflow/logiflow/kit/platform/errors"

// Error is the platform error type.
type Error = errors.Error

// Violation is a field-level validation failure.
type Violation = errors.Violation

// Error codes, re-exported so domain packages avoid the deep import.
const (
	EInternal         = errors.EInternal
	ENotFound         = errors.ENotFound
	EConflict         = errors.EConflict
	EInvalid          = errors.EInvalid
	EEmptyValue       = errors.EEmptyValue
	EUnavailable      = errors.EUnavailable
	EForbidden        = errors.EForbidden
	EUnauthorized     = errors.EUnauthorized
	EMethodNotAllowed = errors.EMethodNotAllowed
)

var (
	// ErrorCode returns the code of the root error.
	ErrorCode = errors.ErrorCode
	// ErrorMessage returns the human readable message of the error.
	ErrorMessage = errors.ErrorMessage
	// ErrorDetails returns the field violations carried by the error.
	ErrorDetails = errors.ErrorDetails
	// ErrorOp returns the op of the error.
	ErrorOp = errors.ErrorOp
)

// HTTPErrorHandler is the interface to handle http errors.
type HTTPErrorHandler = errors.HTTPErrorHandler
