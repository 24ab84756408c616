package inmem

import (
	"context"

	"github.com/logiflow/logiflow"
)

var _ logiflow.InventoryService = (*Service)(nil)

// FindInventories returns the tenant's inventory rows in insertion order.
func (s *Service) FindInventories(ctx context.Context, tenantID string) ([]*logiflow.Inventory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := []*logiflow.Inventory{}
	for i := range s.inventories {
		if s.inventories[i].TenantID == tenantID {
			row := s.inventories[i]
			rows = append(rows, &row)
		}
	}
	return rows, nil
}

// FindInventoryByProductAndWarehouse returns the first row matching the
// (productID, warehouseID, tenantID) triple.
func (s *Service) FindInventoryByProductAndWarehouse(ctx context.Context, productID, warehouseID, tenantID string) (*logiflow.Inventory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.inventories {
		row := s.inventories[i]
		if row.ProductID == productID && row.WarehouseID == warehouseID && row.TenantID == tenantID {
			return &row, nil
		}
	}
	return nil, notFoundError("inventory", "FindInventoryByProductAndWarehouse")
}

// CreateInventory appends i to the tenant's collection.
func (s *Service) CreateInventory(ctx context.Context, inv *logiflow.Inventory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if inv.ID == "" {
		inv.ID = s.IDGenerator.ID()
	}
	if inv.LastUpdated.IsZero() {
		inv.LastUpdated = s.now()
	}

	s.inventories = append(s.inventories, *inv)
	return nil
}

// UpdateInventory merges the set fields of upd over the stored row and
// refreshes lastUpdated.
func (s *Service) UpdateInventory(ctx context.Context, id, tenantID string, upd logiflow.InventoryUpdate) (*logiflow.Inventory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.inventories {
		if s.inventories[i].ID != id || s.inventories[i].TenantID != tenantID {
			continue
		}

		row := &s.inventories[i]
		if upd.Quantity != nil {
			row.Quantity = *upd.Quantity
		}
		if upd.ReservedQuantity != nil {
			row.ReservedQuantity = *upd.ReservedQuantity
		}
		if upd.MinStock != nil {
			row.MinStock = *upd.MinStock
		}
		if upd.MaxStock != nil {
			row.MaxStock = *upd.MaxStock
		}
		row.LastUpdated = s.now()

		out := *row
		return &out, nil
	}
	return nil, notFoundError("inventory", "UpdateInventory")
}
