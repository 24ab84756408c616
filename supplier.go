package logiflow

import (
	"context"
	"time"
)

// Supplier is a vendor products are sourced from.
type Supplier struct {
	ID            string    `json:"id"`
	TenantID      string    `json:"tenantId"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Document      string    `json:"document,omitempty"`
	Address       *Address  `json:"address,omitempty"`
	ContactPerson string    `json:"contactPerson,omitempty"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// SupplierUpdate represents updates to a supplier.
type SupplierUpdate struct {
	Name          *string  `json:"name,omitempty"`
	Email         *string  `json:"email,omitempty"`
	Phone         *string  `json:"phone,omitempty"`
	Document      *string  `json:"document,omitempty"`
	Address       *Address `json:"address,omitempty"`
	ContactPerson *string  `json:"contactPerson,omitempty"`
	IsActive      *bool    `json:"isActive,omitempty"`
}

// SupplierService manages suppliers within a tenant.
type SupplierService interface {
	FindSupplierByID(ctx context.Context, id, tenantID string) (*Supplier, error)
	FindSuppliers(ctx context.Context, tenantID string) ([]*Supplier, error)
	CreateSupplier(ctx context.Context, s *Supplier) error
	UpdateSupplier(ctx context.Context, id, tenantID string, upd SupplierUpdate) (*Supplier, error)
	DeleteSupplier(ctx context.Context, id, tenantID string) error
}
