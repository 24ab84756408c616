package logiflow

import (
	"context"
	"time"
)

// OrderStatus is the lifecycle state of an order. Transitions are not
// validated: any enumerated status may replace any other.
type OrderStatus string

const (
	OrderStatusPending     OrderStatus = "pending"
	OrderStatusConfirmed   OrderStatus = "confirmed"
	OrderStatusProcessing  OrderStatus = "processing"
	OrderStatusReadyToShip OrderStatus = "ready_to_ship"
	OrderStatusShipped     OrderStatus = "shipped"
	OrderStatusInTransit   OrderStatus = "in_transit"
	OrderStatusDelivered   OrderStatus = "delivered"
	OrderStatusCancelled   OrderStatus = "cancelled"
	OrderStatusReturned    OrderStatus = "returned"
)

// Valid reports whether s is one of the enumerated statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusReadyToShip, OrderStatusShipped, OrderStatusInTransit,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusReturned:
		return true
	}
	return false
}

// OrderTaxRate is the flat tax applied to every order subtotal.
const OrderTaxRate = 0.10

// OrderItem is one line of an order.
type OrderItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
}

// Order is a customer order with its computed money fields.
type Order struct {
	ID              string      `json:"id"`
	TenantID        string      `json:"tenantId"`
	OrderNumber     string      `json:"orderNumber"`
	CustomerID      string      `json:"customerId"`
	Status          OrderStatus `json:"status"`
	Items           []OrderItem `json:"items"`
	ShippingAddress Address     `json:"shippingAddress"`
	BillingAddress  *Address    `json:"billingAddress,omitempty"`
	Subtotal        float64     `json:"subtotal"`
	ShippingCost    float64     `json:"shippingCost"`
	Tax             float64     `json:"tax"`
	Total           float64     `json:"total"`
	Notes           string      `json:"notes,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
	ShippedAt       *time.Time  `json:"shippedAt,omitempty"`
	DeliveredAt     *time.Time  `json:"deliveredAt,omitempty"`
}

// RecalculateTotals recomputes every item line total, the subtotal, the tax
// and the grand total. Shipping cost is left as-is; there is no rating
// engine yet, so creation leaves it at zero.
func (o *Order) RecalculateTotals() {
	var subtotal float64
	for i := range o.Items {
		o.Items[i].Total = float64(o.Items[i].Quantity) * o.Items[i].UnitPrice
		subtotal += o.Items[i].Total
	}
	o.Subtotal = subtotal
	o.Tax = subtotal * OrderTaxRate
	o.Total = o.Subtotal + o.ShippingCost + o.Tax
}

// OrderUpdate represents updates to an order. Only status and notes are
// client-mutable after creation.
type OrderUpdate struct {
	Status *OrderStatus `json:"status,omitempty"`
	Notes  *string      `json:"notes,omitempty"`
}

// OrderService manages orders within a tenant.
type OrderService interface {
	// FindOrderByID returns the order matching both id and tenantID.
	FindOrderByID(ctx context.Context, id, tenantID string) (*Order, error)

	// FindOrders returns the tenant's orders in insertion order.
	FindOrders(ctx context.Context, tenantID string) ([]*Order, error)

	// CreateOrder appends o to the tenant's collection, assigning the
	// identifier, item identifiers, order number and timestamps when unset.
	CreateOrder(ctx context.Context, o *Order) error

	// UpdateOrder merges the set fields of upd over the stored order and
	// refreshes its updatedAt timestamp.
	UpdateOrder(ctx context.Context, id, tenantID string, upd OrderUpdate) (*Order, error)

	// DeleteOrder removes the order matching both id and tenantID.
	DeleteOrder(ctx context.Context, id, tenantID string) error
}
