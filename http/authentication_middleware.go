package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi"
	"go.uber.org/zap"

	"github.com/logiflow/logiflow"
	icontext "github.com/logiflow/logiflow/context"
	"github.com/logiflow/logiflow/jsonweb"
	"github.com/logiflow/logiflow/kit/platform/errors"
)

// AuthenticationHandler is a middleware for authenticating incoming requests.
type AuthenticationHandler struct {
	logiflow.HTTPErrorHandler
	log *zap.Logger

	TokenParser   *jsonweb.TokenParser
	UserService   logiflow.UserService
	TenantService logiflow.TenantService

	// Used only for its route matcher; which handler serves a no-auth
	// route is decided by the wrapped Handler.
	noAuthRouter chi.Router

	Handler http.Handler
}

// NewAuthenticationHandler creates an authentication handler.
func NewAuthenticationHandler(log *zap.Logger, h logiflow.HTTPErrorHandler) *AuthenticationHandler {
	return &AuthenticationHandler{
		HTTPErrorHandler: h,
		log:              log,
		Handler:          http.DefaultServeMux,
		noAuthRouter:     chi.NewRouter(),
	}
}

// RegisterNoAuthRoute excludes routes from needing authentication.
func (h *AuthenticationHandler) RegisterNoAuthRoute(method, path string) {
	// the handler specified here does not matter.
	h.noAuthRouter.MethodFunc(method, path, func(w http.ResponseWriter, r *http.Request) {})
}

// ServeHTTP extracts the bearer token from the request, resolves the user
// and tenant it was issued for and places the resulting authorization on
// the request context.
func (h *AuthenticationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if rctx := chi.NewRouteContext(); h.noAuthRouter.Match(rctx, r.Method, r.URL.Path) {
		h.Handler.ServeHTTP(w, r)
		return
	}

	ctx := r.Context()

	auth, err := h.extractAuthorization(ctx, r)
	if err != nil {
		h.log.Debug("request authentication failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		h.HandleHTTPError(ctx, err, w)
		return
	}

	ctx = icontext.SetAuthorizer(ctx, auth)
	h.Handler.ServeHTTP(w, r.WithContext(ctx))
}

// GetToken returns the bearer token from the Authorization header.
func GetToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", &errors.Error{
			Code: errors.EUnauthorized,
			Msg:  "authorization header required",
		}
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", &errors.Error{
			Code: errors.EUnauthorized,
			Msg:  "authorization header must use the Bearer scheme",
		}
	}
	return header[len(prefix):], nil
}

func (h *AuthenticationHandler) extractAuthorization(ctx context.Context, r *http.Request) (*logiflow.Authorization, error) {
	raw, err := GetToken(r)
	if err != nil {
		return nil, err
	}

	token, err := h.TokenParser.Parse(raw)
	if err != nil {
		return nil, err
	}

	user, err := h.UserService.FindUserByID(ctx, token.UserID)
	if err != nil {
		return nil, &errors.Error{
			Code: errors.EUnauthorized,
			Msg:  "token user not found",
			Err:  err,
		}
	}
	if !user.IsActive {
		return nil, &errors.Error{
			Code: errors.EForbidden,
			Msg:  "user is inactive",
		}
	}
	if user.TenantID != token.TenantID {
		return nil, &errors.Error{
			Code: errors.EForbidden,
			Msg:  "token tenant does not match user tenant",
		}
	}

	tenant, err := h.TenantService.FindTenantByID(ctx, token.TenantID)
	if err != nil {
		return nil, &errors.Error{
			Code: errors.EUnauthorized,
			Msg:  "token tenant not found",
			Err:  err,
		}
	}

	return &logiflow.Authorization{
		User:   user,
		Tenant: tenant,
	}, nil
}
