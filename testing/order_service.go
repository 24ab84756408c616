// Package testing provides conformance suites that any implementation of
// the domain services should pass.
package testing

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/logiflow/logiflow"
	"github.com/logiflow/logiflow/kit/platform/errors"
	"github.com/logiflow/logiflow/mock"
)

var orderCmpOptions = cmp.Options{
	cmp.Transformer("Sort", func(in []*logiflow.Order) []*logiflow.Order {
		out := append([]*logiflow.Order(nil), in...)
		sort.Slice(out, func(i, j int) bool {
			return out[i].ID < out[j].ID
		})
		return out
	}),
	cmpopts.EquateApproxTime(time.Second),
}

// OrderFields will be used to seed an implementation before the suite runs.
type OrderFields struct {
	IDGenerator    logiflow.IDGenerator
	TokenGenerator logiflow.TokenGenerator
	Now            time.Time
	Orders         []*logiflow.Order
}

// OrderService tests every operation of an OrderService implementation.
func OrderService(
	init func(OrderFields, *testing.T) (logiflow.OrderService, func()),
	t *testing.T,
) {
	t.Run("CreateOrder", func(t *testing.T) { CreateOrder(init, t) })
	t.Run("FindOrders", func(t *testing.T) { FindOrders(init, t) })
	t.Run("FindOrderByID", func(t *testing.T) { FindOrderByID(init, t) })
	t.Run("UpdateOrder", func(t *testing.T) { UpdateOrder(init, t) })
	t.Run("DeleteOrder", func(t *testing.T) { DeleteOrder(init, t) })
}

// CreateOrder tests derived field assignment on creation.
func CreateOrder(
	init func(OrderFields, *testing.T) (logiflow.OrderService, func()),
	t *testing.T,
) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	type args struct {
		order *logiflow.Order
	}
	type wants struct {
		id          string
		orderNumber string
		status      logiflow.OrderStatus
	}

	tests := []struct {
		name   string
		fields OrderFields
		args   args
		wants  wants
	}{
		{
			name: "assigns id, order number and pending status",
			fields: OrderFields{
				IDGenerator:    &mock.IDGenerator{Fixed: "order-1"},
				TokenGenerator: &mock.TokenGenerator{Fixed: "AB12CD34E"},
				Now:            now,
			},
			args: args{
				order: &logiflow.Order{
					TenantID:   "tenant-1",
					CustomerID: "customer-1",
					Items: []logiflow.OrderItem{
						{ProductID: "product-1", Quantity: 2, UnitPrice: 10},
					},
				},
			},
			wants: wants{
				id:          "order-1",
				orderNumber: "ORD-" + "1709287200000" + "-AB12CD34E",
				status:      logiflow.OrderStatusPending,
			},
		},
		{
			name: "keeps caller-supplied identity",
			fields: OrderFields{
				IDGenerator:    &mock.IDGenerator{Fixed: "unused"},
				TokenGenerator: &mock.TokenGenerator{Fixed: "unused"},
				Now:            now,
			},
			args: args{
				order: &logiflow.Order{
					ID:          "order-7",
					TenantID:    "tenant-1",
					OrderNumber: "ORD-CUSTOM",
					Status:      logiflow.OrderStatusConfirmed,
				},
			},
			wants: wants{
				id:          "order-7",
				orderNumber: "ORD-CUSTOM",
				status:      logiflow.OrderStatusConfirmed,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, done := init(tt.fields, t)
			defer done()
			ctx := context.Background()

			if err := s.CreateOrder(ctx, tt.args.order); err != nil {
				t.Fatalf("CreateOrder() error = %v", err)
			}
			if got := tt.args.order.ID; got != tt.wants.id {
				t.Errorf("id = %q, want %q", got, tt.wants.id)
			}
			if got := tt.args.order.OrderNumber; got != tt.wants.orderNumber {
				t.Errorf("orderNumber = %q, want %q", got, tt.wants.orderNumber)
			}
			if got := tt.args.order.Status; got != tt.wants.status {
				t.Errorf("status = %q, want %q", got, tt.wants.status)
			}
			for _, item := range tt.args.order.Items {
				if item.ID == "" {
					t.Errorf("item %q has no id", item.ProductID)
				}
			}
			if tt.args.order.CreatedAt.IsZero() || tt.args.order.UpdatedAt.IsZero() {
				t.Errorf("timestamps not assigned: createdAt=%v updatedAt=%v",
					tt.args.order.CreatedAt, tt.args.order.UpdatedAt)
			}
		})
	}
}

// FindOrders tests tenant scoping and ordering of list results.
func FindOrders(
	init func(OrderFields, *testing.T) (logiflow.OrderService, func()),
	t *testing.T,
) {
	fields := OrderFields{
		IDGenerator:    mock.NewIDGenerator(),
		TokenGenerator: &mock.TokenGenerator{Fixed: "TOKEN0001"},
		Orders: []*logiflow.Order{
			{ID: "order-1", TenantID: "tenant-1", OrderNumber: "ORD-1", Status: logiflow.OrderStatusPending},
			{ID: "order-2", TenantID: "tenant-2", OrderNumber: "ORD-2", Status: logiflow.OrderStatusPending},
			{ID: "order-3", TenantID: "tenant-1", OrderNumber: "ORD-3", Status: logiflow.OrderStatusShipped},
		},
	}

	s, done := init(fields, t)
	defer done()
	ctx := context.Background()

	got, err := s.FindOrders(ctx, "tenant-1")
	if err != nil {
		t.Fatalf("FindOrders() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d orders, want 2", len(got))
	}
	if got[0].ID != "order-1" || got[1].ID != "order-3" {
		t.Errorf("orders out of insertion order: %q, %q", got[0].ID, got[1].ID)
	}

	got, err = s.FindOrders(ctx, "tenant-9")
	if err != nil {
		t.Fatalf("FindOrders() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("unknown tenant: got %v, want empty slice", got)
	}
}

// FindOrderByID tests single-order lookup and tenant isolation.
func FindOrderByID(
	init func(OrderFields, *testing.T) (logiflow.OrderService, func()),
	t *testing.T,
) {
	fields := OrderFields{
		IDGenerator:    mock.NewIDGenerator(),
		TokenGenerator: &mock.TokenGenerator{Fixed: "TOKEN0001"},
		Orders: []*logiflow.Order{
			{ID: "order-1", TenantID: "tenant-1", OrderNumber: "ORD-1", Status: logiflow.OrderStatusPending},
		},
	}

	s, done := init(fields, t)
	defer done()
	ctx := context.Background()

	got, err := s.FindOrderByID(ctx, "order-1", "tenant-1")
	if err != nil {
		t.Fatalf("FindOrderByID() error = %v", err)
	}
	if diff := cmp.Diff(fields.Orders[0], got, orderCmpOptions...); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}

	_, err = s.FindOrderByID(ctx, "order-1", "tenant-2")
	if errors.ErrorCode(err) != errors.ENotFound {
		t.Errorf("cross-tenant lookup: error code = %q, want %q", errors.ErrorCode(err), errors.ENotFound)
	}
}

// UpdateOrder tests partial updates and the not-found path.
func UpdateOrder(
	init func(OrderFields, *testing.T) (logiflow.OrderService, func()),
	t *testing.T,
) {
	fields := OrderFields{
		IDGenerator:    mock.NewIDGenerator(),
		TokenGenerator: &mock.TokenGenerator{Fixed: "TOKEN0001"},
		Orders: []*logiflow.Order{
			{ID: "order-1", TenantID: "tenant-1", OrderNumber: "ORD-1",
				Status: logiflow.OrderStatusPending, Notes: "leave at door"},
		},
	}

	s, done := init(fields, t)
	defer done()
	ctx := context.Background()

	status := logiflow.OrderStatusShipped
	got, err := s.UpdateOrder(ctx, "order-1", "tenant-1", logiflow.OrderUpdate{Status: &status})
	if err != nil {
		t.Fatalf("UpdateOrder() error = %v", err)
	}
	if got.Status != logiflow.OrderStatusShipped {
		t.Errorf("status = %q, want %q", got.Status, logiflow.OrderStatusShipped)
	}
	if got.Notes != "leave at door" {
		t.Errorf("notes = %q, want untouched value", got.Notes)
	}

	_, err = s.UpdateOrder(ctx, "order-9", "tenant-1", logiflow.OrderUpdate{Status: &status})
	if errors.ErrorCode(err) != errors.ENotFound {
		t.Errorf("unknown order: error code = %q, want %q", errors.ErrorCode(err), errors.ENotFound)
	}
}

// DeleteOrder tests removal and the not-found path.
func DeleteOrder(
	init func(OrderFields, *testing.T) (logiflow.OrderService, func()),
	t *testing.T,
) {
	fields := OrderFields{
		IDGenerator:    mock.NewIDGenerator(),
		TokenGenerator: &mock.TokenGenerator{Fixed: "TOKEN0001"},
		Orders: []*logiflow.Order{
			{ID: "order-1", TenantID: "tenant-1", OrderNumber: "ORD-1", Status: logiflow.OrderStatusPending},
			{ID: "order-2", TenantID: "tenant-1", OrderNumber: "ORD-2", Status: logiflow.OrderStatusPending},
		},
	}

	s, done := init(fields, t)
	defer done()
	ctx := context.Background()

	if err := s.DeleteOrder(ctx, "order-1", "tenant-1"); err != nil {
		t.Fatalf("DeleteOrder() error = %v", err)
	}
	got, err := s.FindOrders(ctx, "tenant-1")
	if err != nil {
		t.Fatalf("FindOrders() error = %v", err)
	}
	want := []*logiflow.Order{fields.Orders[1]}
	if diff := cmp.Diff(want, got, orderCmpOptions...); diff != "" {
		t.Errorf("orders mismatch (-want +got):\n%s", diff)
	}

	err = s.DeleteOrder(ctx, "order-1", "tenant-1")
	if errors.ErrorCode(err) != errors.ENotFound {
		t.Errorf("double delete: error code = %q, want %q", errors.ErrorCode(err), errors.ENotFound)
	}
}
