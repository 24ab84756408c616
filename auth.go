package logiflow

import "context"

// Authorization is the result of authenticating a request: the user the
// token was issued to and the tenant every subsequent operation is scoped
// to. The user always belongs to the tenant.
type Authorization struct {
	User   *User   `json:"user"`
	Tenant *Tenant `json:"tenant"`
}

// Session is what a successful sign-in returns to the client.
type Session struct {
	User   *User   `json:"user"`
	Tenant *Tenant `json:"tenant"`
	Token  string  `json:"token"`
}

// SessionService authenticates credentials and issues tokens.
type SessionService interface {
	// SignIn validates the credentials and returns the user, their tenant
	// and a signed token. Unknown emails yield EUnauthorized, inactive
	// users EForbidden and a dangling tenant reference ENotFound.
	SignIn(ctx context.Context, email, password string) (*Session, error)
}
