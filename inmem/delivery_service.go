package inmem

import (
	"context"

	"github.com/logiflow/logiflow"
)

var _ logiflow.DeliveryService = (*Service)(nil)

// FindDeliveryByID returns the delivery matching both id and tenantID.
func (s *Service) FindDeliveryByID(ctx context.Context, id, tenantID string) (*logiflow.Delivery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.deliveries {
		if s.deliveries[i].ID == id && s.deliveries[i].TenantID == tenantID {
			return copyDelivery(&s.deliveries[i]), nil
		}
	}
	return nil, notFoundError("delivery", "FindDeliveryByID")
}

// FindDeliveries returns the tenant's deliveries in insertion order.
func (s *Service) FindDeliveries(ctx context.Context, tenantID string) ([]*logiflow.Delivery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ds := []*logiflow.Delivery{}
	for i := range s.deliveries {
		if s.deliveries[i].TenantID == tenantID {
			ds = append(ds, copyDelivery(&s.deliveries[i]))
		}
	}
	return ds, nil
}

// CreateDelivery appends d to the tenant's collection. The delivery id, the
// event ids and every zero timestamp are assigned here, and an empty event
// log gets the initial "created" entry.
func (s *Service) CreateDelivery(ctx context.Context, d *logiflow.Delivery) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if d.ID == "" {
		d.ID = s.IDGenerator.ID()
	}
	if d.Status == "" {
		d.Status = logiflow.DeliveryStatusPending
	}
	if len(d.Events) == 0 {
		d.Events = []logiflow.DeliveryEvent{{
			Type:        logiflow.DeliveryEventCreated,
			Description: "Delivery created",
		}}
	}
	for i := range d.Events {
		if d.Events[i].ID == "" {
			d.Events[i].ID = s.IDGenerator.ID()
		}
		if d.Events[i].Timestamp.IsZero() {
			d.Events[i].Timestamp = now
		}
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = now
	}

	s.deliveries = append(s.deliveries, *copyDelivery(d))
	return nil
}

// UpdateDelivery merges the set fields of upd over the stored delivery.
func (s *Service) UpdateDelivery(ctx context.Context, id, tenantID string, upd logiflow.DeliveryUpdate) (*logiflow.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.deliveries {
		if s.deliveries[i].ID != id || s.deliveries[i].TenantID != tenantID {
			continue
		}

		d := &s.deliveries[i]
		if upd.Status != nil {
			d.Status = *upd.Status
		}
		if upd.EstimatedDelivery != nil {
			d.EstimatedDelivery = upd.EstimatedDelivery
		}
		if upd.ActualDelivery != nil {
			d.ActualDelivery = upd.ActualDelivery
		}
		d.UpdatedAt = s.now()

		return copyDelivery(d), nil
	}
	return nil, notFoundError("delivery", "UpdateDelivery")
}

// AddDeliveryEvent appends e to the delivery's event log, assigning the
// event id and timestamp when unset, and returns the updated delivery.
func (s *Service) AddDeliveryEvent(ctx context.Context, id, tenantID string, e logiflow.DeliveryEvent) (*logiflow.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.deliveries {
		if s.deliveries[i].ID != id || s.deliveries[i].TenantID != tenantID {
			continue
		}

		now := s.now()
		if e.ID == "" {
			e.ID = s.IDGenerator.ID()
		}
		if e.Timestamp.IsZero() {
			e.Timestamp = now
		}

		d := &s.deliveries[i]
		d.Events = append(d.Events, e)
		d.UpdatedAt = now

		return copyDelivery(d), nil
	}
	return nil, notFoundError("delivery", "AddDeliveryEvent")
}

// DeleteDelivery removes the delivery matching both id and tenantID.
func (s *Service) DeleteDelivery(ctx context.Context, id, tenantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.deliveries {
		if s.deliveries[i].ID == id && s.deliveries[i].TenantID == tenantID {
			s.deliveries = append(s.deliveries[:i], s.deliveries[i+1:]...)
			return nil
		}
	}
	return notFoundError("delivery", "DeleteDelivery")
}

// copyDelivery deep-copies d so callers never alias the stored event log.
func copyDelivery(d *logiflow.Delivery) *logiflow.Delivery {
	out := *d
	out.Events = append([]logiflow.DeliveryEvent{}, d.Events...)
	return &out
}
