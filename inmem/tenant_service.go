package inmem

import (
	"context"

	"github.com/logiflow/logiflow"
)

var _ logiflow.TenantService = (*Service)(nil)

// FindTenantByID returns a single tenant by ID.
func (s *Service) FindTenantByID(ctx context.Context, id string) (*logiflow.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.tenants {
		if s.tenants[i].ID == id {
			t := s.tenants[i]
			return &t, nil
		}
	}
	return nil, notFoundError("tenant", "FindTenantByID")
}

// FindTenantBySlug returns a single tenant by its URL slug.
func (s *Service) FindTenantBySlug(ctx context.Context, slug string) (*logiflow.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.tenants {
		if s.tenants[i].Slug == slug {
			t := s.tenants[i]
			return &t, nil
		}
	}
	return nil, notFoundError("tenant", "FindTenantBySlug")
}

// FindTenants returns all tenants in insertion order.
func (s *Service) FindTenants(ctx context.Context) ([]*logiflow.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ts := make([]*logiflow.Tenant, 0, len(s.tenants))
	for i := range s.tenants {
		t := s.tenants[i]
		ts = append(ts, &t)
	}
	return ts, nil
}

// CreateTenant creates a new tenant and sets t.ID with the new identifier.
func (s *Service) CreateTenant(ctx context.Context, t *logiflow.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = s.IDGenerator.ID()
	}
	now := s.now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	s.tenants = append(s.tenants, *t)
	return nil
}

// UpdateTenant updates a single tenant with changeset.
func (s *Service) UpdateTenant(ctx context.Context, id string, upd logiflow.TenantUpdate) (*logiflow.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tenants {
		if s.tenants[i].ID != id {
			continue
		}

		t := &s.tenants[i]
		if upd.Name != nil {
			t.Name = *upd.Name
		}
		if upd.Slug != nil {
			t.Slug = *upd.Slug
		}
		if upd.Email != nil {
			t.Email = *upd.Email
		}
		if upd.Phone != nil {
			t.Phone = *upd.Phone
		}
		if upd.Address != nil {
			t.Address = upd.Address
		}
		if upd.Settings != nil {
			t.Settings = *upd.Settings
		}
		t.UpdatedAt = s.now()

		out := *t
		return &out, nil
	}
	return nil, notFoundError("tenant", "UpdateTenant")
}

// DeleteTenant removes a tenant by ID.
func (s *Service) DeleteTenant(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tenants {
		if s.tenants[i].ID == id {
			s.tenants = append(s.tenants[:i], s.tenants[i+1:]...)
			return nil
		}
	}
	return notFoundError("tenant", "DeleteTenant")
}
