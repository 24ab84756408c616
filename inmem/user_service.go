package inmem

import (
	"context"

	"github.com/logiflow/logiflow"
)

var _ logiflow.UserService = (*Service)(nil)

// FindUserByID returns a single user by ID.
func (s *Service) FindUserByID(ctx context.Context, id string) (*logiflow.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, notFoundError("user", "FindUserByID")
}

// FindUserByEmail returns a single user by email address.
func (s *Service) FindUserByEmail(ctx context.Context, email string) (*logiflow.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, notFoundError("user", "FindUserByEmail")
}

// FindUsersByTenant returns all users of a tenant in insertion order.
func (s *Service) FindUsersByTenant(ctx context.Context, tenantID string) ([]*logiflow.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	us := []*logiflow.User{}
	for i := range s.users {
		if s.users[i].TenantID == tenantID {
			u := s.users[i]
			us = append(us, &u)
		}
	}
	return us, nil
}

// CreateUser creates a new user and sets u.ID with the new identifier.
func (s *Service) CreateUser(ctx context.Context, u *logiflow.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == "" {
		u.ID = s.IDGenerator.ID()
	}
	now := s.now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	s.users = append(s.users, *u)
	return nil
}

// UpdateUser updates a single user with changeset.
func (s *Service) UpdateUser(ctx context.Context, id string, upd logiflow.UserUpdate) (*logiflow.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}

		u := &s.users[i]
		if upd.Email != nil {
			u.Email = *upd.Email
		}
		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.Role != nil {
			u.Role = *upd.Role
		}
		if upd.Avatar != nil {
			u.Avatar = *upd.Avatar
		}
		if upd.IsActive != nil {
			u.IsActive = *upd.IsActive
		}
		u.UpdatedAt = s.now()

		out := *u
		return &out, nil
	}
	return nil, notFoundError("user", "UpdateUser")
}

// DeleteUser removes a user by ID.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return notFoundError("user", "DeleteUser")
}
