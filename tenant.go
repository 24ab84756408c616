package logiflow

import (
	"context"
	"time"
)

// Tenant is the isolation boundary: every business entity belongs to
// exactly one tenant and is never visible outside of it.
type Tenant struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Slug      string         `json:"slug"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone,omitempty"`
	Address   *Address       `json:"address,omitempty"`
	Settings  TenantSettings `json:"settings"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// TenantSettings holds per-tenant presentation defaults.
type TenantSettings struct {
	Timezone string `json:"timezone"`
	Currency string `json:"currency"`
	Language string `json:"language"`
	Logo     string `json:"logo,omitempty"`
}

// Ops for tenant errors.
const (
	OpFindTenantByID = "FindTenantByID"
	OpFindTenants    = "FindTenants"
	OpCreateTenant   = "CreateTenant"
	OpUpdateTenant   = "UpdateTenant"
	OpDeleteTenant   = "DeleteTenant"
)

// TenantUpdate represents updates to a tenant.
// Only fields which are set are updated.
type TenantUpdate struct {
	Name     *string         `json:"name,omitempty"`
	Slug     *string         `json:"slug,omitempty"`
	Email    *string         `json:"email,omitempty"`
	Phone    *string         `json:"phone,omitempty"`
	Address  *Address        `json:"address,omitempty"`
	Settings *TenantSettings `json:"settings,omitempty"`
}

// TenantService manages tenants. Tenants are not themselves tenant-scoped.
type TenantService interface {
	// FindTenantByID returns a single tenant by ID.
	FindTenantByID(ctx context.Context, id string) (*Tenant, error)

	// FindTenantBySlug returns a single tenant by its URL slug.
	FindTenantBySlug(ctx context.Context, slug string) (*Tenant, error)

	// FindTenants returns all tenants in insertion order.
	FindTenants(ctx context.Context) ([]*Tenant, error)

	// CreateTenant creates a new tenant and sets t.ID with the new identifier.
	CreateTenant(ctx context.Context, t *Tenant) error

	// UpdateTenant updates a single tenant with changeset.
	// Returns the new tenant state after update.
	UpdateTenant(ctx context.Context, id string, upd TenantUpdate) (*Tenant, error)

	// DeleteTenant removes a tenant by ID.
	DeleteTenant(ctx context.Context, id string) error
}
