package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/logiflow/logiflow"
	"github.com/logiflow/logiflow/inmem"
	"github.com/logiflow/logiflow/jsonweb"
	"github.com/logiflow/logiflow/kit/platform/errors"
	"github.com/logiflow/logiflow/session"
)

func newTestService(t *testing.T) (*session.Service, *inmem.Service) {
	t.Helper()
	store := inmem.NewService()
	require.NoError(t, store.Seed(context.Background()))

	signer := jsonweb.NewTokenSigner("v1", []byte("test-signing-key"))
	return session.NewService(store, store, signer), store
}

func TestService_SignIn(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	got, err := svc.SignIn(ctx, "admin@acmelogistics.example", "password")
	require.NoError(t, err)
	require.Equal(t, "user-1", got.User.ID)
	require.Equal(t, "tenant-1", got.Tenant.ID)
	require.NotEmpty(t, got.Token)

	parser := jsonweb.NewTokenParser(jsonweb.SingleKeyStore("v1", []byte("test-signing-key")))
	token, err := parser.Parse(got.Token)
	require.NoError(t, err)
	require.Equal(t, "user-1", token.UserID)
	require.Equal(t, "tenant-1", token.TenantID)
}

func TestService_SignIn_MissingCredentials(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignIn(ctx, "", "password")
	require.Equal(t, errors.EInvalid, errors.ErrorCode(err))

	_, err = svc.SignIn(ctx, "admin@acmelogistics.example", "")
	require.Equal(t, errors.EInvalid, errors.ErrorCode(err))
	require.Equal(t, "email and password are required", errors.ErrorMessage(err))
}

func TestService_SignIn_UnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SignIn(context.Background(), "nobody@acmelogistics.example", "password")
	require.Equal(t, errors.EUnauthorized, errors.ErrorCode(err))
	require.Equal(t, "invalid credentials", errors.ErrorMessage(err))
}

func TestService_SignIn_InactiveUser(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, &logiflow.User{
		TenantID: "tenant-1",
		Email:    "former@acmelogistics.example",
		Name:     "Former Employee",
		Role:     logiflow.UserRoleOperator,
		IsActive: false,
	}))

	_, err := svc.SignIn(ctx, "former@acmelogistics.example", "password")
	require.Equal(t, errors.EForbidden, errors.ErrorCode(err))
	require.Equal(t, "user is inactive", errors.ErrorMessage(err))
}

func TestService_SignIn_DanglingTenant(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, &logiflow.User{
		TenantID: "tenant-999",
		Email:    "stray@acmelogistics.example",
		Name:     "Stray User",
		Role:     logiflow.UserRoleOperator,
		IsActive: true,
	}))

	_, err := svc.SignIn(ctx, "stray@acmelogistics.example", "password")
	require.Equal(t, errors.ENotFound, errors.ErrorCode(err))
	require.Equal(t, "tenant not found", errors.ErrorMessage(err))
}
