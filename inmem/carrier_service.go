package inmem

import (
	"context"

	"github.com/logiflow/logiflow"
)

var _ logiflow.CarrierService = (*Service)(nil)

// FindCarrierByID returns the carrier matching both id and tenantID.
func (s *Service) FindCarrierByID(ctx context.Context, id, tenantID string) (*logiflow.Carrier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.carriers {
		if s.carriers[i].ID == id && s.carriers[i].TenantID == tenantID {
			c := s.carriers[i]
			return &c, nil
		}
	}
	return nil, notFoundError("carrier", "FindCarrierByID")
}

// FindCarriers returns the tenant's carriers in insertion order.
func (s *Service) FindCarriers(ctx context.Context, tenantID string) ([]*logiflow.Carrier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cs := []*logiflow.Carrier{}
	for i := range s.carriers {
		if s.carriers[i].TenantID == tenantID {
			c := s.carriers[i]
			cs = append(cs, &c)
		}
	}
	return cs, nil
}

// CreateCarrier appends c to the tenant's collection.
func (s *Service) CreateCarrier(ctx context.Context, c *logiflow.Carrier) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = s.IDGenerator.ID()
	}
	now := s.now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	s.carriers = append(s.carriers, *c)
	return nil
}

// UpdateCarrier merges the set fields of upd over the stored carrier.
func (s *Service) UpdateCarrier(ctx context.Context, id, tenantID string, upd logiflow.CarrierUpdate) (*logiflow.Carrier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.carriers {
		if s.carriers[i].ID != id || s.carriers[i].TenantID != tenantID {
			continue
		}

		c := &s.carriers[i]
		if upd.Name != nil {
			c.Name = *upd.Name
		}
		if upd.Document != nil {
			c.Document = *upd.Document
		}
		if upd.Email != nil {
			c.Email = *upd.Email
		}
		if upd.Phone != nil {
			c.Phone = *upd.Phone
		}
		if upd.Address != nil {
			c.Address = upd.Address
		}
		if upd.ServiceTypes != nil {
			c.ServiceTypes = *upd.ServiceTypes
		}
		if upd.Rating != nil {
			c.Rating = *upd.Rating
		}
		if upd.IsActive != nil {
			c.IsActive = *upd.IsActive
		}
		c.UpdatedAt = s.now()

		out := *c
		return &out, nil
	}
	return nil, notFoundError("carrier", "UpdateCarrier")
}

// DeleteCarrier removes the carrier matching both id and tenantID.
func (s *Service) DeleteCarrier(ctx context.Context, id, tenantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.carriers {
		if s.carriers[i].ID == id && s.carriers[i].TenantID == tenantID {
			s.carriers = append(s.carriers[:i], s.carriers[i+1:]...)
			return nil
		}
	}
	return notFoundError("carrier", "DeleteCarrier")
}
