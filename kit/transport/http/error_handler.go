package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/logiflow/logiflow/kit/platform/errors"
)

// PlatformErrorCodeHeader carries the machine readable error code of the response.
const PlatformErrorCodeHeader = "X-Platform-Error-Code"

// ErrorHandler is the error handler in http package.
type ErrorHandler int

// HandleHTTPError encodes err with the appropriate status code and format:
// it sets the X-Platform-Error-Code header, the corresponding response
// status, and writes an {error, code, details} JSON body.
func (h ErrorHandler) HandleHTTPError(ctx context.Context, err error, w http.ResponseWriter) {
	if err == nil {
		return
	}

	code := errors.ErrorCode(err)
	httpCode, ok := statusCodePlatformError[code]
	if !ok {
		httpCode = http.StatusBadRequest
	}
	w.Header().Set(PlatformErrorCodeHeader, code)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(httpCode)

	var e struct {
		Code    string             `json:"code"`
		Error   string             `json:"error"`
		Details []errors.Violation `json:"details,omitempty"`
	}
	e.Code = code
	e.Error = errors.ErrorMessage(err)
	e.Details = errors.ErrorDetails(err)

	b, _ := json.Marshal(e)
	_, _ = w.Write(b)
}

// StatusCodeToErrorCode maps an http status code to an error code.
func StatusCodeToErrorCode(statusCode int) string {
	errorCode, ok := httpStatusCodePlatformError[statusCode]
	if ok && errorCode != "" {
		return errorCode
	}

	return errors.EInternal
}

// ErrorCodeToStatusCode maps an error code to an http status code.
func ErrorCodeToStatusCode(ctx context.Context, code string) int {
	if httpCode, ok := statusCodePlatformError[code]; ok {
		return httpCode
	}
	return http.StatusInternalServerError
}

// statusCodePlatformError converts a platform error code to an http status.
var statusCodePlatformError = map[string]int{
	errors.EInternal:         http.StatusInternalServerError,
	errors.EInvalid:          http.StatusBadRequest,
	errors.EEmptyValue:       http.StatusBadRequest,
	errors.EConflict:         http.StatusUnprocessableEntity,
	errors.ENotFound:         http.StatusNotFound,
	errors.EUnavailable:      http.StatusServiceUnavailable,
	errors.EForbidden:        http.StatusForbidden,
	errors.EUnauthorized:     http.StatusUnauthorized,
	errors.EMethodNotAllowed: http.StatusMethodNotAllowed,
}

// httpStatusCodePlatformError is the inverse of statusCodePlatformError.
var httpStatusCodePlatformError = map[int]string{
	http.StatusInternalServerError: errors.EInternal,
	http.StatusBadRequest:          errors.EInvalid,
	http.StatusUnprocessableEntity: errors.EConflict,
	http.StatusNotFound:            errors.ENotFound,
	http.StatusServiceUnavailable:  errors.EUnavailable,
	http.StatusForbidden:           errors.EForbidden,
	http.StatusUnauthorized:        errors.EUnauthorized,
	http.StatusMethodNotAllowed:    errors.EMethodNotAllowed,
}
