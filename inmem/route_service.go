package inmem

import (
	"context"

	"github.com/logiflow/logiflow"
)

var _ logiflow.RouteService = (*Service)(nil)

// FindRouteByID returns the route matching both id and tenantID.
func (s *Service) FindRouteByID(ctx context.Context, id, tenantID string) (*logiflow.Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.routes {
		if s.routes[i].ID == id && s.routes[i].TenantID == tenantID {
			return copyRoute(&s.routes[i]), nil
		}
	}
	return nil, notFoundError("route", "FindRouteByID")
}

// FindRoutes returns the tenant's routes in insertion order.
func (s *Service) FindRoutes(ctx context.Context, tenantID string) ([]*logiflow.Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rs := []*logiflow.Route{}
	for i := range s.routes {
		if s.routes[i].TenantID == tenantID {
			rs = append(rs, copyRoute(&s.routes[i]))
		}
	}
	return rs, nil
}

// CreateRoute appends r to the tenant's collection.
func (s *Service) CreateRoute(ctx context.Context, r *logiflow.Route) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = s.IDGenerator.ID()
	}
	if r.Status == "" {
		r.Status = logiflow.RouteStatusPlanned
	}
	if r.Deliveries == nil {
		r.Deliveries = []string{}
	}
	now := s.now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}

	s.routes = append(s.routes, *copyRoute(r))
	return nil
}

// UpdateRoute merges the set fields of upd over the stored route.
func (s *Service) UpdateRoute(ctx context.Context, id, tenantID string, upd logiflow.RouteUpdate) (*logiflow.Route, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.routes {
		if s.routes[i].ID != id || s.routes[i].TenantID != tenantID {
			continue
		}

		r := &s.routes[i]
		if upd.Name != nil {
			r.Name = *upd.Name
		}
		if upd.VehicleID != nil {
			r.VehicleID = *upd.VehicleID
		}
		if upd.DriverID != nil {
			r.DriverID = *upd.DriverID
		}
		if upd.Deliveries != nil {
			r.Deliveries = append([]string{}, *upd.Deliveries...)
		}
		if upd.Status != nil {
			r.Status = *upd.Status
		}
		if upd.EstimatedDuration != nil {
			r.EstimatedDuration = *upd.EstimatedDuration
		}
		if upd.ActualDuration != nil {
			r.ActualDuration = *upd.ActualDuration
		}
		if upd.Distance != nil {
			r.Distance = *upd.Distance
		}
		if upd.StartedAt != nil {
			r.StartedAt = upd.StartedAt
		}
		if upd.CompletedAt != nil {
			r.CompletedAt = upd.CompletedAt
		}
		r.UpdatedAt = s.now()

		return copyRoute(r), nil
	}
	return nil, notFoundError("route", "UpdateRoute")
}

// DeleteRoute removes the route matching both id and tenantID.
func (s *Service) DeleteRoute(ctx context.Context, id, tenantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.routes {
		if s.routes[i].ID == id && s.routes[i].TenantID == tenantID {
			s.routes = append(s.routes[:i], s.routes[i+1:]...)
			return nil
		}
	}
	return notFoundError("route", "DeleteRoute")
}

// copyRoute deep-copies r so callers never alias the stored deliveries list.
func copyRoute(r *logiflow.Route) *logiflow.Route {
	out := *r
	out.Deliveries = append([]string{}, r.Deliveries...)
	return &out
}
