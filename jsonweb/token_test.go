package jsonweb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/logiflow/logiflow/kit/platform/errors"
)

func TestTokenSignAndParse(t *testing.T) {
	signer := NewTokenSigner("v1", []byte("secret"))
	parser := NewTokenParser(SingleKeyStore("v1", []byte("secret")))

	raw, err := signer.Sign("user-1", "tenant-1", time.Now(), time.Hour)
	require.NoError(t, err)

	token, err := parser.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, "user-1", token.UserID)
	require.Equal(t, "tenant-1", token.TenantID)
	require.Equal(t, Issuer, token.Issuer)
	require.Equal(t, "v1", token.KeyID)
}

func TestTokenParse_WrongKey(t *testing.T) {
	signer := NewTokenSigner("v1", []byte("secret"))
	parser := NewTokenParser(SingleKeyStore("v1", []byte("another-secret")))

	raw, err := signer.Sign("user-1", "tenant-1", time.Now(), time.Hour)
	require.NoError(t, err)

	_, err = parser.Parse(raw)
	require.Error(t, err)
	require.Equal(t, errors.EUnauthorized, errors.ErrorCode(err))
}

func TestTokenParse_UnknownKeyID(t *testing.T) {
	signer := NewTokenSigner("v2", []byte("secret"))
	parser := NewTokenParser(SingleKeyStore("v1", []byte("secret")))

	raw, err := signer.Sign("user-1", "tenant-1", time.Now(), time.Hour)
	require.NoError(t, err)

	_, err = parser.Parse(raw)
	require.Error(t, err)
	require.Equal(t, errors.EUnauthorized, errors.ErrorCode(err))
}

func TestTokenParse_Expired(t *testing.T) {
	signer := NewTokenSigner("v1", []byte("secret"))
	parser := NewTokenParser(SingleKeyStore("v1", []byte("secret")))

	raw, err := signer.Sign("user-1", "tenant-1", time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)

	_, err = parser.Parse(raw)
	require.Error(t, err)
	require.Equal(t, errors.EUnauthorized, errors.ErrorCode(err))
}
