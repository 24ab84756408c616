package http

import (
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/logiflow/logiflow/kit/platform/errors"
)

// API provides a consolidated means for handling API request and response
// activity: encoding responses, decoding bodies and writing errors.
type API struct {
	logger       *zap.Logger
	errorHandler ErrorHandler
}

// APIOptFn is a functional option for the API type.
type APIOptFn func(*API)

// WithLog sets the logger used when response writes fail.
func WithLog(logger *zap.Logger) APIOptFn {
	return func(a *API) {
		a.logger = logger
	}
}

// NewAPI creates a new API type.
func NewAPI(opts ...APIOptFn) *API {
	api := &API{}
	for _, opt := range opts {
		opt(api)
	}
	return api
}

// DecodeJSON decodes reader with json.
func (a *API) DecodeJSON(r io.Reader, v interface{}) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return &errors.Error{
			Code: errors.EInvalid,
			Msg:  "invalid json request body",
			Err:  err,
		}
	}
	return nil
}

// Respond encodes v as a JSON response with the given status code. A nil v
// writes just the status.
func (a *API) Respond(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	if v == nil {
		w.WriteHeader(status)
		return
	}

	b, err := json.Marshal(v)
	if err != nil {
		a.Err(w, r, &errors.Error{
			Code: errors.EInternal,
			Msg:  "failed to encode response body",
			Err:  err,
		})
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(b); err != nil && a.logger != nil {
		a.logger.Error("failed to write response body",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}

// Err writes the error to the response writer with the status mapped from
// its error code.
func (a *API) Err(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}
	if a.logger != nil {
		a.logger.Debug("api error encountered",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	a.errorHandler.HandleHTTPError(r.Context(), err, w)
}
