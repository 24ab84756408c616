package inmem

import (
	"context"

	"github.com/logiflow/logiflow"
)

var _ logiflow.WarehouseService = (*Service)(nil)

// FindWarehouseByID returns the warehouse matching both id and tenantID.
func (s *Service) FindWarehouseByID(ctx context.Context, id, tenantID string) (*logiflow.Warehouse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.warehouses {
		if s.warehouses[i].ID == id && s.warehouses[i].TenantID == tenantID {
			w := s.warehouses[i]
			return &w, nil
		}
	}
	return nil, notFoundError("warehouse", "FindWarehouseByID")
}

// FindWarehouses returns the tenant's warehouses in insertion order.
func (s *Service) FindWarehouses(ctx context.Context, tenantID string) ([]*logiflow.Warehouse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ws := []*logiflow.Warehouse{}
	for i := range s.warehouses {
		if s.warehouses[i].TenantID == tenantID {
			w := s.warehouses[i]
			ws = append(ws, &w)
		}
	}
	return ws, nil
}

// CreateWarehouse appends w to the tenant's collection.
func (s *Service) CreateWarehouse(ctx context.Context, w *logiflow.Warehouse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w.ID == "" {
		w.ID = s.IDGenerator.ID()
	}
	now := s.now()
	if w.CreatedAt.IsZero() {
		w.CreatedAt = now
	}
	if w.UpdatedAt.IsZero() {
		w.UpdatedAt = now
	}

	s.warehouses = append(s.warehouses, *w)
	return nil
}

// UpdateWarehouse merges the set fields of upd over the stored warehouse.
func (s *Service) UpdateWarehouse(ctx context.Context, id, tenantID string, upd logiflow.WarehouseUpdate) (*logiflow.Warehouse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.warehouses {
		if s.warehouses[i].ID != id || s.warehouses[i].TenantID != tenantID {
			continue
		}

		w := &s.warehouses[i]
		if upd.Name != nil {
			w.Name = *upd.Name
		}
		if upd.Code != nil {
			w.Code = *upd.Code
		}
		if upd.Address != nil {
			w.Address = *upd.Address
		}
		if upd.Capacity != nil {
			w.Capacity = *upd.Capacity
		}
		if upd.IsActive != nil {
			w.IsActive = *upd.IsActive
		}
		w.UpdatedAt = s.now()

		out := *w
		return &out, nil
	}
	return nil, notFoundError("warehouse", "UpdateWarehouse")
}

// DeleteWarehouse removes the warehouse matching both id and tenantID.
func (s *Service) DeleteWarehouse(ctx context.Context, id, tenantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.warehouses {
		if s.warehouses[i].ID == id && s.warehouses[i].TenantID == tenantID {
			s.warehouses = append(s.warehouses[:i], s.warehouses[i+1:]...)
			return nil
		}
	}
	return notFoundError("warehouse", "DeleteWarehouse")
}
