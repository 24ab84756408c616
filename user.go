package logiflow

import (
	"context"
	"time"
)

// UserRole determines what a user may do inside their tenant.
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleManager  UserRole = "manager"
	UserRoleOperator UserRole = "operator"
	UserRoleViewer   UserRole = "viewer"
)

// Valid reports whether r is one of the enumerated roles.
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleManager, UserRoleOperator, UserRoleViewer:
		return true
	}
	return false
}

// User is an operator account. Users belong to a single tenant.
type User struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenantId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      UserRole  `json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserUpdate represents updates to a user.
type UserUpdate struct {
	Email    *string   `json:"email,omitempty"`
	Name     *string   `json:"name,omitempty"`
	Role     *UserRole `json:"role,omitempty"`
	Avatar   *string   `json:"avatar,omitempty"`
	IsActive *bool     `json:"isActive,omitempty"`
}

// UserService manages user accounts. Lookups by ID and email are global
// because authentication happens before a tenant is established.
type UserService interface {
	// FindUserByID returns a single user by ID.
	FindUserByID(ctx context.Context, id string) (*User, error)

	// FindUserByEmail returns a single user by email address.
	FindUserByEmail(ctx context.Context, email string) (*User, error)

	// FindUsersByTenant returns all users of a tenant in insertion order.
	FindUsersByTenant(ctx context.Context, tenantID string) ([]*User, error)

	// CreateUser creates a new user and sets u.ID with the new identifier.
	CreateUser(ctx context.Context, u *User) error

	// UpdateUser updates a single user with changeset.
	UpdateUser(ctx context.Context, id string, upd UserUpdate) (*User, error)

	// DeleteUser removes a user by ID.
	DeleteUser(ctx context.Context, id string) error
}
