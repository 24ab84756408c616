package http

import (
	"fmt"
	"net/http"

	"github.com/logiflow/logiflow/kit/platform/errors"
)

// HealthHandler returns the status of the process.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	const resp = `{"name":"logiflow","message":"ready to serve requests","status":"pass"}`
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, resp)
}

func notFoundRouteError(path string) error {
	return &errors.Error{
		Code: errors.ENotFound,
		Msg:  fmt.Sprintf("path %q not found", path),
	}
}
