// Package session implements credential sign-in and token issuance.
package session

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/logiflow/logiflow"
	"github.com/logiflow/logiflow/jsonweb"
	"github.com/logiflow/logiflow/kit/platform/errors"
)

// DefaultSessionLength is how long issued tokens stay valid.
const DefaultSessionLength = 24 * time.Hour

var _ logiflow.SessionService = (*Service)(nil)

// Service authenticates credentials against the user store. There is no
// password database yet: any non-empty password is accepted for a known,
// active user. The other failure modes behave exactly as they will once
// password hashes exist.
type Service struct {
	userService   logiflow.UserService
	tenantService logiflow.TenantService
	signer        *jsonweb.TokenSigner
	sessionLength time.Duration
	clock         clock.Clock
}

// ServiceOption is a functional option for NewService.
type ServiceOption func(*Service)

// WithSessionLength overrides the token time-to-live.
func WithSessionLength(d time.Duration) ServiceOption {
	return func(s *Service) {
		if d > 0 {
			s.sessionLength = d
		}
	}
}

// WithClock overrides the clock used for token issue timestamps. Should
// only be used in tests for mocking.
func WithClock(c clock.Clock) ServiceOption {
	return func(s *Service) {
		s.clock = c
	}
}

// NewService constructs a session service issuing tokens through signer.
func NewService(userService logiflow.UserService, tenantService logiflow.TenantService, signer *jsonweb.TokenSigner, opts ...ServiceOption) *Service {
	s := &Service{
		userService:   userService,
		tenantService: tenantService,
		signer:        signer,
		sessionLength: DefaultSessionLength,
		clock:         clock.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SignIn validates the credentials and returns the user, their tenant and a
// signed bearer token.
func (s *Service) SignIn(ctx context.Context, email, password string) (*logiflow.Session, error) {
	const op = "session/SignIn"

	if email == "" || password == "" {
		return nil, &errors.Error{
			Code: errors.EInvalid,
			Msg:  "email and password are required",
			Op:   op,
		}
	}

	user, err := s.userService.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, &errors.Error{
			Code: errors.EUnauthorized,
			Msg:  "invalid credentials",
			Op:   op,
			Err:  err,
		}
	}

	if !user.IsActive {
		return nil, &errors.Error{
			Code: errors.EForbidden,
			Msg:  "user is inactive",
			Op:   op,
		}
	}

	tenant, err := s.tenantService.FindTenantByID(ctx, user.TenantID)
	if err != nil {
		return nil, &errors.Error{
			Code: errors.ENotFound,
			Msg:  "tenant not found",
			Op:   op,
			Err:  err,
		}
	}

	token, err := s.signer.Sign(user.ID, tenant.ID, s.clock.Now().UTC(), s.sessionLength)
	if err != nil {
		return nil, &errors.Error{
			Code: errors.EInternal,
			Op:   op,
			Err:  err,
		}
	}

	return &logiflow.Session{
		User:   user,
		Tenant: tenant,
		Token:  token,
	}, nil
}
