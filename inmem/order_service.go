package inmem

import (
	"context"
	"fmt"

	"github.com/logiflow/logiflow"
	"github.com/logiflow/logiflow/kit/platform/errors"
)

var _ logiflow.OrderService = (*Service)(nil)

// FindOrderByID returns the order matching both id and tenantID.
func (s *Service) FindOrderByID(ctx context.Context, id, tenantID string) (*logiflow.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.orders {
		if s.orders[i].ID == id && s.orders[i].TenantID == tenantID {
			o := copyOrder(&s.orders[i])
			return o, nil
		}
	}
	return nil, notFoundError("order", "FindOrderByID")
}

// FindOrders returns the tenant's orders in insertion order.
func (s *Service) FindOrders(ctx context.Context, tenantID string) ([]*logiflow.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	os := []*logiflow.Order{}
	for i := range s.orders {
		if s.orders[i].TenantID == tenantID {
			os = append(os, copyOrder(&s.orders[i]))
		}
	}
	return os, nil
}

// CreateOrder appends o to the tenant's collection, assigning the order id,
// item ids, order number and timestamps when unset.
func (s *Service) CreateOrder(ctx context.Context, o *logiflow.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if o.ID == "" {
		o.ID = s.IDGenerator.ID()
	}
	for i := range o.Items {
		if o.Items[i].ID == "" {
			o.Items[i].ID = s.IDGenerator.ID()
		}
	}
	now := s.now()
	if o.OrderNumber == "" {
		token, err := s.TokenGenerator.Token()
		if err != nil {
			return &errors.Error{
				Code: errors.EInternal,
				Op:   OpPrefix + "CreateOrder",
				Err:  err,
			}
		}
		o.OrderNumber = fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), token)
	}
	if o.Status == "" {
		o.Status = logiflow.OrderStatusPending
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = now
	}

	s.orders = append(s.orders, *copyOrder(o))
	return nil
}

// UpdateOrder merges the set fields of upd over the stored order.
func (s *Service) UpdateOrder(ctx context.Context, id, tenantID string, upd logiflow.OrderUpdate) (*logiflow.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id || s.orders[i].TenantID != tenantID {
			continue
		}

		o := &s.orders[i]
		if upd.Status != nil {
			o.Status = *upd.Status
		}
		if upd.Notes != nil {
			o.Notes = *upd.Notes
		}
		o.UpdatedAt = s.now()

		return copyOrder(o), nil
	}
	return nil, notFoundError("order", "UpdateOrder")
}

// DeleteOrder removes the order matching both id and tenantID.
func (s *Service) DeleteOrder(ctx context.Context, id, tenantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id && s.orders[i].TenantID == tenantID {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return nil
		}
	}
	return notFoundError("order", "DeleteOrder")
}

// copyOrder deep-copies o so callers never alias the stored items slice.
func copyOrder(o *logiflow.Order) *logiflow.Order {
	out := *o
	out.Items = append([]logiflow.OrderItem{}, o.Items...)
	return &out
}
