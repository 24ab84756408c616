package logiflow

import (
	"context"
	"time"
)

// Customer is a buyer that orders are placed for.
type Customer struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenantId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Document  string    `json:"document,omitempty"`
	Address   *Address  `json:"address,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CustomerUpdate represents updates to a customer.
// Only fields which are set are updated.
type CustomerUpdate struct {
	Name     *string  `json:"name,omitempty"`
	Email    *string  `json:"email,omitempty"`
	Phone    *string  `json:"phone,omitempty"`
	Document *string  `json:"document,omitempty"`
	Address  *Address `json:"address,omitempty"`
	IsActive *bool    `json:"isActive,omitempty"`
}

// CustomerService manages customers within a tenant.
type CustomerService interface {
	// FindCustomerByID returns the customer matching both id and tenantID.
	FindCustomerByID(ctx context.Context, id, tenantID string) (*Customer, error)

	// FindCustomers returns the tenant's customers in insertion order.
	FindCustomers(ctx context.Context, tenantID string) ([]*Customer, error)

	// CreateCustomer appends c to the tenant's collection, assigning
	// identifier and timestamps when unset.
	CreateCustomer(ctx context.Context, c *Customer) error

	// UpdateCustomer merges the set fields of upd over the stored customer
	// and refreshes its updatedAt timestamp.
	UpdateCustomer(ctx context.Context, id, tenantID string, upd CustomerUpdate) (*Customer, error)

	// DeleteCustomer removes the customer matching both id and tenantID.
	DeleteCustomer(ctx context.Context, id, tenantID string) error
}
