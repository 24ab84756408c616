package testing

import (
	"context"
	"testing"
	"time"

	"github.com/logiflow/logiflow"
	"github.com/logiflow/logiflow/kit/platform/errors"
	"github.com/logiflow/logiflow/mock"
)

// DeliveryFields will be used to seed an implementation before the suite runs.
type DeliveryFields struct {
	IDGenerator logiflow.IDGenerator
	Now         time.Time
	Deliveries  []*logiflow.Delivery
}

// DeliveryService tests every operation of a DeliveryService implementation.
func DeliveryService(
	init func(DeliveryFields, *testing.T) (logiflow.DeliveryService, func()),
	t *testing.T,
) {
	t.Run("CreateDelivery", func(t *testing.T) { CreateDelivery(init, t) })
	t.Run("AddDeliveryEvent", func(t *testing.T) { AddDeliveryEvent(init, t) })
	t.Run("UpdateDelivery", func(t *testing.T) { UpdateDelivery(init, t) })
	t.Run("DeleteDelivery", func(t *testing.T) { DeleteDelivery(init, t) })
}

// CreateDelivery tests the seeding of the initial event log entry.
func CreateDelivery(
	init func(DeliveryFields, *testing.T) (logiflow.DeliveryService, func()),
	t *testing.T,
) {
	fields := DeliveryFields{
		IDGenerator: mock.NewIDGenerator(),
	}

	s, done := init(fields, t)
	defer done()
	ctx := context.Background()

	d := &logiflow.Delivery{
		TenantID:       "tenant-1",
		OrderID:        "order-1",
		CarrierID:      "carrier-1",
		TrackingNumber: "TRK-1",
	}
	if err := s.CreateDelivery(ctx, d); err != nil {
		t.Fatalf("CreateDelivery() error = %v", err)
	}
	if d.ID == "" {
		t.Error("delivery id not assigned")
	}
	if d.Status != logiflow.DeliveryStatusPending {
		t.Errorf("status = %q, want %q", d.Status, logiflow.DeliveryStatusPending)
	}
	if len(d.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(d.Events))
	}
	e := d.Events[0]
	if e.Type != logiflow.DeliveryEventCreated {
		t.Errorf("event type = %q, want %q", e.Type, logiflow.DeliveryEventCreated)
	}
	if e.ID == "" || e.Timestamp.IsZero() {
		t.Errorf("event not fully assigned: id=%q timestamp=%v", e.ID, e.Timestamp)
	}
}

// AddDeliveryEvent tests appending to the event log.
func AddDeliveryEvent(
	init func(DeliveryFields, *testing.T) (logiflow.DeliveryService, func()),
	t *testing.T,
) {
	fields := DeliveryFields{
		IDGenerator: mock.NewIDGenerator(),
		Deliveries: []*logiflow.Delivery{
			{ID: "delivery-1", TenantID: "tenant-1", OrderID: "order-1",
				CarrierID: "carrier-1", Status: logiflow.DeliveryStatusPending},
		},
	}

	s, done := init(fields, t)
	defer done()
	ctx := context.Background()

	got, err := s.AddDeliveryEvent(ctx, "delivery-1", "tenant-1", logiflow.DeliveryEvent{
		Type:        logiflow.DeliveryEventPickedUp,
		Description: "Picked up by carrier",
		Location:    "Central Warehouse",
	})
	if err != nil {
		t.Fatalf("AddDeliveryEvent() error = %v", err)
	}
	last := got.Events[len(got.Events)-1]
	if last.Type != logiflow.DeliveryEventPickedUp {
		t.Errorf("event type = %q, want %q", last.Type, logiflow.DeliveryEventPickedUp)
	}
	if last.ID == "" || last.Timestamp.IsZero() {
		t.Errorf("event not fully assigned: id=%q timestamp=%v", last.ID, last.Timestamp)
	}

	_, err = s.AddDeliveryEvent(ctx, "delivery-1", "tenant-2", logiflow.DeliveryEvent{
		Type: logiflow.DeliveryEventInTransit,
	})
	if errors.ErrorCode(err) != errors.ENotFound {
		t.Errorf("cross-tenant append: error code = %q, want %q", errors.ErrorCode(err), errors.ENotFound)
	}
}

// UpdateDelivery tests partial updates of status and delivery estimates.
func UpdateDelivery(
	init func(DeliveryFields, *testing.T) (logiflow.DeliveryService, func()),
	t *testing.T,
) {
	fields := DeliveryFields{
		IDGenerator: mock.NewIDGenerator(),
		Deliveries: []*logiflow.Delivery{
			{ID: "delivery-1", TenantID: "tenant-1", OrderID: "order-1",
				CarrierID: "carrier-1", Status: logiflow.DeliveryStatusPending},
		},
	}

	s, done := init(fields, t)
	defer done()
	ctx := context.Background()

	status := logiflow.DeliveryStatusInTransit
	eta := time.Date(2024, 3, 5, 18, 0, 0, 0, time.UTC)
	got, err := s.UpdateDelivery(ctx, "delivery-1", "tenant-1", logiflow.DeliveryUpdate{
		Status:            &status,
		EstimatedDelivery: &eta,
	})
	if err != nil {
		t.Fatalf("UpdateDelivery() error = %v", err)
	}
	if got.Status != status {
		t.Errorf("status = %q, want %q", got.Status, status)
	}
	if got.EstimatedDelivery == nil || !got.EstimatedDelivery.Equal(eta) {
		t.Errorf("estimatedDelivery = %v, want %v", got.EstimatedDelivery, eta)
	}
	if got.ActualDelivery != nil {
		t.Errorf("actualDelivery = %v, want nil", got.ActualDelivery)
	}

	_, err = s.UpdateDelivery(ctx, "delivery-9", "tenant-1", logiflow.DeliveryUpdate{Status: &status})
	if errors.ErrorCode(err) != errors.ENotFound {
		t.Errorf("unknown delivery: error code = %q, want %q", errors.ErrorCode(err), errors.ENotFound)
	}
}

// DeleteDelivery tests removal and the not-found path.
func DeleteDelivery(
	init func(DeliveryFields, *testing.T) (logiflow.DeliveryService, func()),
	t *testing.T,
) {
	fields := DeliveryFields{
		IDGenerator: mock.NewIDGenerator(),
		Deliveries: []*logiflow.Delivery{
			{ID: "delivery-1", TenantID: "tenant-1", OrderID: "order-1",
				CarrierID: "carrier-1", Status: logiflow.DeliveryStatusPending},
		},
	}

	s, done := init(fields, t)
	defer done()
	ctx := context.Background()

	if err := s.DeleteDelivery(ctx, "delivery-1", "tenant-1"); err != nil {
		t.Fatalf("DeleteDelivery() error = %v", err)
	}
	ds, err := s.FindDeliveries(ctx, "tenant-1")
	if err != nil {
		t.Fatalf("FindDeliveries() error = %v", err)
	}
	if len(ds) != 0 {
		t.Errorf("got %d deliveries after delete, want 0", len(ds))
	}

	err = s.DeleteDelivery(ctx, "delivery-1", "tenant-1")
	if errors.ErrorCode(err) != errors.ENotFound {
		t.Errorf("double delete: error code = %q, want %q", errors.ErrorCode(err), errors.ENotFound)
	}
}
