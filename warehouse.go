package logiflow

import (
	"context"
	"time"
)

// Warehouse is a stock location.
type Warehouse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenantId"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Address   Address   `json:"address"`
	Capacity  int       `json:"capacity,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WarehouseUpdate represents updates to a warehouse.
type WarehouseUpdate struct {
	Name     *string  `json:"name,omitempty"`
	Code     *string  `json:"code,omitempty"`
	Address  *Address `json:"address,omitempty"`
	Capacity *int     `json:"capacity,omitempty"`
	IsActive *bool    `json:"isActive,omitempty"`
}

// WarehouseService manages warehouses within a tenant.
type WarehouseService interface {
	FindWarehouseByID(ctx context.Context, id, tenantID string) (*Warehouse, error)
	FindWarehouses(ctx context.Context, tenantID string) ([]*Warehouse, error)
	CreateWarehouse(ctx context.Context, w *Warehouse) error
	UpdateWarehouse(ctx context.Context, id, tenantID string, upd WarehouseUpdate) (*Warehouse, error)
	DeleteWarehouse(ctx context.Context, id, tenantID string) error
}
