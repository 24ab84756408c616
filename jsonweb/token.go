// Package jsonweb implements the signed bearer tokens that authenticate
// API requests. A token is a JWT whose claims carry the user and tenant it
// was issued for; handlers stay agnostic to the verification mechanism.
package jsonweb

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/logiflow/logiflow/kit/platform/errors"
)

// Issuer stamped on every token this process signs.
const Issuer = "logiflow"

var (
	// ErrKeyNotFound is returned when a token references an unknown signing key.
	ErrKeyNotFound = &errors.Error{
		Code: errors.EUnauthorized,
		Msg:  "token signing key not found",
	}

	// ErrInvalidToken is returned for tokens that fail to parse or verify.
	ErrInvalidToken = &errors.Error{
		Code: errors.EUnauthorized,
		Msg:  "invalid token",
	}
)

// KeyStore maps key identifiers to signing keys.
type KeyStore interface {
	Key(kid string) ([]byte, error)
}

// KeyStoreFunc is a function adapter for KeyStore.
type KeyStoreFunc func(kid string) ([]byte, error)

// Key delegates to the wrapped function.
func (f KeyStoreFunc) Key(kid string) ([]byte, error) {
	return f(kid)
}

// SingleKeyStore answers every lookup for the configured kid with one key.
func SingleKeyStore(kid string, key []byte) KeyStore {
	return KeyStoreFunc(func(requested string) ([]byte, error) {
		if requested != kid {
			return nil, ErrKeyNotFound
		}
		return key, nil
	})
}

// Token is the claim set of a signed bearer token.
type Token struct {
	jwt.RegisteredClaims

	KeyID    string `json:"kid"`
	UserID   string `json:"uid"`
	TenantID string `json:"tid"`
}

// TokenParser parses and verifies tokens against a KeyStore.
type TokenParser struct {
	keyStore KeyStore
	parser   *jwt.Parser
}

// NewTokenParser returns a parser accepting HS256-signed tokens only.
func NewTokenParser(keyStore KeyStore) *TokenParser {
	return &TokenParser{
		keyStore: keyStore,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		),
	}
}

// Parse verifies the token string and returns its claims.
func (t *TokenParser) Parse(v string) (*Token, error) {
	jwtToken, err := t.parser.ParseWithClaims(v, &Token{}, func(jwtToken *jwt.Token) (interface{}, error) {
		token, ok := jwtToken.Claims.(*Token)
		if !ok {
			return nil, ErrInvalidToken
		}
		return t.keyStore.Key(token.KeyID)
	})
	if err != nil {
		return nil, &errors.Error{
			Code: errors.EUnauthorized,
			Msg:  "invalid token",
			Err:  err,
		}
	}

	token, ok := jwtToken.Claims.(*Token)
	if !ok || !jwtToken.Valid {
		return nil, ErrInvalidToken
	}

	return token, nil
}

// TokenSigner issues tokens under a single signing key.
type TokenSigner struct {
	keyID string
	key   []byte
}

// NewTokenSigner returns a signer stamping tokens with keyID.
func NewTokenSigner(keyID string, key []byte) *TokenSigner {
	return &TokenSigner{
		keyID: keyID,
		key:   key,
	}
}

// Sign issues a token for the user and tenant, valid for ttl from issuedAt.
func (s *TokenSigner) Sign(userID, tenantID string, issuedAt time.Time, ttl time.Duration) (string, error) {
	claims := &Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
		KeyID:    s.keyID,
		UserID:   userID,
		TenantID: tenantID,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}
