package logiflow

import (
	"context"
	"time"
)

// DeliveryStatus is the lifecycle state of a delivery. Like order statuses,
// transitions are not validated.
type DeliveryStatus string

const (
	DeliveryStatusPending        DeliveryStatus = "pending"
	DeliveryStatusPickedUp       DeliveryStatus = "picked_up"
	DeliveryStatusInTransit      DeliveryStatus = "in_transit"
	DeliveryStatusOutForDelivery DeliveryStatus = "out_for_delivery"
	DeliveryStatusDelivered      DeliveryStatus = "delivered"
	DeliveryStatusFailed         DeliveryStatus = "failed"
	DeliveryStatusReturned       DeliveryStatus = "returned"
)

// Valid reports whether s is one of the enumerated statuses.
func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryStatusPending, DeliveryStatusPickedUp, DeliveryStatusInTransit,
		DeliveryStatusOutForDelivery, DeliveryStatusDelivered,
		DeliveryStatusFailed, DeliveryStatusReturned:
		return true
	}
	return false
}

// DeliveryEventType classifies an entry on the delivery event log.
type DeliveryEventType string

const (
	DeliveryEventCreated           DeliveryEventType = "created"
	DeliveryEventPickedUp          DeliveryEventType = "picked_up"
	DeliveryEventInTransit         DeliveryEventType = "in_transit"
	DeliveryEventArrivedAtFacility DeliveryEventType = "arrived_at_facility"
	DeliveryEventOutForDelivery    DeliveryEventType = "out_for_delivery"
	DeliveryEventDeliveryAttempted DeliveryEventType = "delivery_attempted"
	DeliveryEventDelivered         DeliveryEventType = "delivered"
	DeliveryEventFailed            DeliveryEventType = "failed"
	DeliveryEventReturned          DeliveryEventType = "returned"
)

// Valid reports whether t is one of the enumerated event types.
func (t DeliveryEventType) Valid() bool {
	switch t {
	case DeliveryEventCreated, DeliveryEventPickedUp, DeliveryEventInTransit,
		DeliveryEventArrivedAtFacility, DeliveryEventOutForDelivery,
		DeliveryEventDeliveryAttempted, DeliveryEventDelivered,
		DeliveryEventFailed, DeliveryEventReturned:
		return true
	}
	return false
}

// DeliveryEvent is one entry of a delivery's append-only event log.
type DeliveryEvent struct {
	ID          string            `json:"id"`
	Type        DeliveryEventType `json:"type"`
	Description string            `json:"description"`
	Location    string            `json:"location,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
	UserID      string            `json:"userId,omitempty"`
}

// Delivery tracks the shipment of one order through one carrier.
type Delivery struct {
	ID                string          `json:"id"`
	TenantID          string          `json:"tenantId"`
	OrderID           string          `json:"orderId"`
	CarrierID         string          `json:"carrierId"`
	TrackingNumber    string          `json:"trackingNumber"`
	Status            DeliveryStatus  `json:"status"`
	EstimatedDelivery *time.Time      `json:"estimatedDelivery,omitempty"`
	ActualDelivery    *time.Time      `json:"actualDelivery,omitempty"`
	Origin            Address         `json:"origin"`
	Destination       Address         `json:"destination"`
	Events            []DeliveryEvent `json:"events"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// DeliveryUpdate represents updates to a delivery. The events log is not
// updatable through here; use AddDeliveryEvent.
type DeliveryUpdate struct {
	Status            *DeliveryStatus `json:"status,omitempty"`
	EstimatedDelivery *time.Time      `json:"estimatedDelivery,omitempty"`
	ActualDelivery    *time.Time      `json:"actualDelivery,omitempty"`
}

// DeliveryService manages deliveries within a tenant.
type DeliveryService interface {
	// FindDeliveryByID returns the delivery matching both id and tenantID.
	FindDeliveryByID(ctx context.Context, id, tenantID string) (*Delivery, error)

	// FindDeliveries returns the tenant's deliveries in insertion order.
	FindDeliveries(ctx context.Context, tenantID string) ([]*Delivery, error)

	// CreateDelivery appends d to the tenant's collection, assigning
	// identifiers and timestamps to the delivery and its seed events.
	CreateDelivery(ctx context.Context, d *Delivery) error

	// UpdateDelivery merges the set fields of upd over the stored delivery.
	UpdateDelivery(ctx context.Context, id, tenantID string, upd DeliveryUpdate) (*Delivery, error)

	// AddDeliveryEvent appends e to the delivery's event log and returns the
	// updated delivery.
	AddDeliveryEvent(ctx context.Context, id, tenantID string, e DeliveryEvent) (*Delivery, error)

	// DeleteDelivery removes the delivery matching both id and tenantID.
	DeleteDelivery(ctx context.Context, id, tenantID string) error
}
