package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/logiflow/logiflow"
	"github.com/logiflow/logiflow/inmem"
	"github.com/logiflow/logiflow/jsonweb"
	"github.com/logiflow/logiflow/session"
)

func newTestHandler(t *testing.T) *session.SessionHandler {
	t.Helper()
	store := inmem.NewService()
	require.NoError(t, store.Seed(context.Background()))

	signer := jsonweb.NewTokenSigner("v1", []byte("test-signing-key"))
	svc := session.NewService(store, store, signer)
	return session.NewSessionHandler(zaptest.NewLogger(t), svc)
}

func TestSessionHandler_SignIn(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("POST", "/login",
		strings.NewReader(`{"email": "admin@acmelogistics.example", "password": "password"}`)))
	require.Equal(t, http.StatusOK, w.Code)

	var got logiflow.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "user-1", got.User.ID)
	require.Equal(t, "tenant-1", got.Tenant.ID)
	require.NotEmpty(t, got.Token)
}

func TestSessionHandler_SignIn_Errors(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "missing fields",
			body:       `{"email": "", "password": ""}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{"email": `,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown email",
			body:       `{"email": "nobody@example.com", "password": "password"}`,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest("POST", "/login", strings.NewReader(tt.body)))
			require.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
