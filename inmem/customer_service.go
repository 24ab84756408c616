package inmem

import (
	"context"

	"github.com/logiflow/logiflow"
)

var _ logiflow.CustomerService = (*Service)(nil)

// FindCustomerByID returns the customer matching both id and tenantID.
func (s *Service) FindCustomerByID(ctx context.Context, id, tenantID string) (*logiflow.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.customers {
		if s.customers[i].ID == id && s.customers[i].TenantID == tenantID {
			c := s.customers[i]
			return &c, nil
		}
	}
	return nil, notFoundError("customer", "FindCustomerByID")
}

// FindCustomers returns the tenant's customers in insertion order.
func (s *Service) FindCustomers(ctx context.Context, tenantID string) ([]*logiflow.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cs := []*logiflow.Customer{}
	for i := range s.customers {
		if s.customers[i].TenantID == tenantID {
			c := s.customers[i]
			cs = append(cs, &c)
		}
	}
	return cs, nil
}

// CreateCustomer appends c to the tenant's collection.
func (s *Service) CreateCustomer(ctx context.Context, c *logiflow.Customer) error {
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

	s.customers = append(s.customers, *c)
	return nil
}

// UpdateCustomer merges the set fields of upd over the stored customer.
func (s *Service) UpdateCustomer(ctx context.Context, id, tenantID string, upd logiflow.CustomerUpdate) (*logiflow.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID != id || s.customers[i].TenantID != tenantID {
			continue
		}

		c := &s.customers[i]
		if upd.Name != nil {
			c.Name = *upd.Name
		}
		if upd.Email != nil {
			c.Email = *upd.Email
		}
		if upd.Phone != nil {
			c.Phone = *upd.Phone
		}
		if upd.Document != nil {
			c.Document = *upd.Document
		}
		if upd.Address != nil {
			c.Address = upd.Address
		}
		if upd.IsActive != nil {
			c.IsActive = *upd.IsActive
		}
		c.UpdatedAt = s.now()

		out := *c
		return &out, nil
	}
	return nil, notFoundError("customer", "UpdateCustomer")
}

// DeleteCustomer removes the customer matching both id and tenantID.
func (s *Service) DeleteCustomer(ctx context.Context, id, tenantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id && s.customers[i].TenantID == tenantID {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			return nil
		}
	}
	return notFoundError("customer", "DeleteCustomer")
}
