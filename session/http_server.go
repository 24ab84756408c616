package session

import (
	"net/http"

	"github.com/go-chi/chi"
	"go.uber.org/zap"

	"github.com/logiflow/logiflow"
	"github.com/logiflow/logiflow/kit/platform/errors"
	kithttp "github.com/logiflow/logiflow/kit/transport/http"
)

const prefixAuth = "/api/auth"

// SessionHandler represents an HTTP API handler for sign-in.
type SessionHandler struct {
	chi.Router
	api *kithttp.API
	log *zap.Logger

	sessionService logiflow.SessionService
}

// NewSessionHandler returns a new instance of SessionHandler.
func NewSessionHandler(log *zap.Logger, sessionService logiflow.SessionService) *SessionHandler {
	h := &SessionHandler{
		api: kithttp.NewAPI(kithttp.WithLog(log)),
		log: log,

		sessionService: sessionService,
	}

	r := chi.NewRouter()
	r.Post("/login", h.handleSignIn)
	h.Router = r
	return h
}

// Prefix returns the mount path of the handler.
func (h *SessionHandler) Prefix() string { return prefixAuth }

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *signInRequest) Validate() error {
	var violations []errors.Violation
	if req.Email == "" {
		violations = append(violations, errors.Violation{Field: "email", Msg: "email is required"})
	}
	if req.Password == "" {
		violations = append(violations, errors.Violation{Field: "password", Msg: "password is required"})
	}
	if len(violations) > 0 {
		return &errors.Error{
			Code:    errors.EInvalid,
			Msg:     "invalid data",
			Details: violations,
		}
	}
	return nil
}

// handleSignIn is the HTTP handler for the POST /api/auth/login route.
func (h *SessionHandler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req signInRequest
	if err := h.api.DecodeJSON(r.Body, &req); err != nil {
		h.api.Err(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.api.Err(w, r, err)
		return
	}

	session, err := h.sessionService.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusOK, session)
}
