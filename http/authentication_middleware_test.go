package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/logiflow/logiflow"
	icontext "github.com/logiflow/logiflow/context"
	"github.com/logiflow/logiflow/inmem"
	"github.com/logiflow/logiflow/jsonweb"
	kithttp "github.com/logiflow/logiflow/kit/transport/http"
)

const testSigningKey = "test-signing-key"

func newAuthTestHandler(t *testing.T, svc *inmem.Service, next http.Handler) *AuthenticationHandler {
	t.Helper()
	h := NewAuthenticationHandler(zaptest.NewLogger(t), kithttp.ErrorHandler(0))
	h.TokenParser = jsonweb.NewTokenParser(jsonweb.SingleKeyStore("v1", []byte(testSigningKey)))
	h.UserService = svc
	h.TenantService = svc
	h.Handler = next
	return h
}

func signTestToken(t *testing.T, userID, tenantID string) string {
	t.Helper()
	signer := jsonweb.NewTokenSigner("v1", []byte(testSigningKey))
	token, err := signer.Sign(userID, tenantID, time.Now(), time.Hour)
	require.NoError(t, err)
	return token
}

func TestAuthenticationHandler(t *testing.T) {
	svc := inmem.NewService()
	require.NoError(t, svc.Seed(context.Background()))

	var auth *logiflow.Authorization
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		auth, err = icontext.GetAuthorizer(r.Context())
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	})
	h := newAuthTestHandler(t, svc, next)

	r := httptest.NewRequest("GET", "/api/orders", nil)
	r.Header.Set("Authorization", "Bearer "+signTestToken(t, "user-1", "tenant-1"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, auth)
	require.Equal(t, "user-1", auth.User.ID)
	require.Equal(t, "tenant-1", auth.Tenant.ID)
}

func TestAuthenticationHandler_Errors(t *testing.T) {
	svc := inmem.NewService()
	ctx := context.Background()
	require.NoError(t, svc.Seed(ctx))
	require.NoError(t, svc.CreateUser(ctx, &logiflow.User{
		ID:       "user-inactive",
		TenantID: "tenant-1",
		Email:    "gone@acmelogistics.example",
		IsActive: false,
	}))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should not reach the wrapped handler")
	})
	h := newAuthTestHandler(t, svc, next)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			authHeader: "Token abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			authHeader: "Bearer not-a-jwt",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown user",
			authHeader: "Bearer " + signTestToken(t, "user-999", "tenant-1"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "inactive user",
			authHeader: "Bearer " + signTestToken(t, "user-inactive", "tenant-1"),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "tenant mismatch",
			authHeader: "Bearer " + signTestToken(t, "user-1", "tenant-2"),
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/orders", nil)
			if tt.authHeader != "" {
				r.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)
			require.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAuthenticationHandler_ExpiredToken(t *testing.T) {
	svc := inmem.NewService()
	require.NoError(t, svc.Seed(context.Background()))

	h := newAuthTestHandler(t, svc, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should not reach the wrapped handler")
	}))

	signer := jsonweb.NewTokenSigner("v1", []byte(testSigningKey))
	token, err := signer.Sign("user-1", "tenant-1", time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/api/orders", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticationHandler_NoAuthRoutes(t *testing.T) {
	svc := inmem.NewService()

	reached := false
	h := newAuthTestHandler(t, svc, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))
	h.RegisterNoAuthRoute("POST", "/api/auth/login")
	h.RegisterNoAuthRoute("GET", "/health")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("POST", "/api/auth/login", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, reached)

	// same path, different method still requires a token
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/api/auth/login", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
