package logiflow

import (
	"context"
	"time"
)

// Inventory is the stock level of one product at one warehouse. Rows are
// keyed by (productId, warehouseId, tenantId); duplicates are not rejected
// on create, callers that want upsert semantics go through
// FindInventoryByProductAndWarehouse first.
type Inventory struct {
	ID               string    `json:"id"`
	TenantID         string    `json:"tenantId"`
	ProductID        string    `json:"productId"`
	WarehouseID      string    `json:"warehouseId"`
	Quantity         int       `json:"quantity"`
	ReservedQuantity int       `json:"reservedQuantity"`
	MinStock         int       `json:"minStock"`
	MaxStock         int       `json:"maxStock"`
	LastUpdated      time.Time `json:"lastUpdated"`
}

// LowStock reports whether the row is at or below its minimum stock level.
func (i *Inventory) LowStock() bool {
	return i.Quantity <= i.MinStock
}

// InventoryUpdate represents updates to an inventory row. The LastUpdated
// timestamp is refreshed on every update.
type InventoryUpdate struct {
	Quantity         *int `json:"quantity,omitempty"`
	ReservedQuantity *int `json:"reservedQuantity,omitempty"`
	MinStock         *int `json:"minStock,omitempty"`
	MaxStock         *int `json:"maxStock,omitempty"`
}

// InventoryService manages stock levels within a tenant.
type InventoryService interface {
	// FindInventories returns the tenant's inventory rows in insertion order.
	FindInventories(ctx context.Context, tenantID string) ([]*Inventory, error)

	// FindInventoryByProductAndWarehouse returns the first row matching the
	// (productId, warehouseId, tenantId) triple.
	FindInventoryByProductAndWarehouse(ctx context.Context, productID, warehouseID, tenantID string) (*Inventory, error)

	// CreateInventory appends i to the tenant's collection.
	CreateInventory(ctx context.Context, i *Inventory) error

	// UpdateInventory merges the set fields of upd over the stored row and
	// refreshes lastUpdated.
	UpdateInventory(ctx context.Context, id, tenantID string, upd InventoryUpdate) (*Inventory, error)
}
