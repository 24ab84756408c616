package inmem

import (
	"context"

	"github.com/logiflow/logiflow"
)

var _ logiflow.SupplierService = (*Service)(nil)

// FindSupplierByID returns the supplier matching both id and tenantID.
func (s *Service) FindSupplierByID(ctx context.Context, id, tenantID string) (*logiflow.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.suppliers {
		if s.suppliers[i].ID == id && s.suppliers[i].TenantID == tenantID {
			sp := s.suppliers[i]
			return &sp, nil
		}
	}
	return nil, notFoundError("supplier", "FindSupplierByID")
}

// FindSuppliers returns the tenant's suppliers in insertion order.
func (s *Service) FindSuppliers(ctx context.Context, tenantID string) ([]*logiflow.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sps := []*logiflow.Supplier{}
	for i := range s.suppliers {
		if s.suppliers[i].TenantID == tenantID {
			sp := s.suppliers[i]
			sps = append(sps, &sp)
		}
	}
	return sps, nil
}

// CreateSupplier appends sp to the tenant's collection.
func (s *Service) CreateSupplier(ctx context.Context, sp *logiflow.Supplier) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sp.ID == "" {
		sp.ID = s.IDGenerator.ID()
	}
	now := s.now()
	if sp.CreatedAt.IsZero() {
		sp.CreatedAt = now
	}
	if sp.UpdatedAt.IsZero() {
		sp.UpdatedAt = now
	}

	s.suppliers = append(s.suppliers, *sp)
	return nil
}

// UpdateSupplier merges the set fields of upd over the stored supplier.
func (s *Service) UpdateSupplier(ctx context.Context, id, tenantID string, upd logiflow.SupplierUpdate) (*logiflow.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.suppliers {
		if s.suppliers[i].ID != id || s.suppliers[i].TenantID != tenantID {
			continue
		}

		sp := &s.suppliers[i]
		if upd.Name != nil {
			sp.Name = *upd.Name
		}
		if upd.Email != nil {
			sp.Email = *upd.Email
		}
		if upd.Phone != nil {
			sp.Phone = *upd.Phone
		}
		if upd.Document != nil {
			sp.Document = *upd.Document
		}
		if upd.Address != nil {
			sp.Address = upd.Address
		}
		if upd.ContactPerson != nil {
			sp.ContactPerson = *upd.ContactPerson
		}
		if upd.IsActive != nil {
			sp.IsActive = *upd.IsActive
		}
		sp.UpdatedAt = s.now()

		out := *sp
		return &out, nil
	}
	return nil, notFoundError("supplier", "UpdateSupplier")
}

// DeleteSupplier removes the supplier matching both id and tenantID.
func (s *Service) DeleteSupplier(ctx context.Context, id, tenantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.suppliers {
		if s.suppliers[i].ID == id && s.suppliers[i].TenantID == tenantID {
			s.suppliers = append(s.suppliers[:i], s.suppliers[i+1:]...)
			return nil
		}
	}
	return notFoundError("supplier", "DeleteSupplier")
}
