package order

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/logiflow/logiflow"
	"github.com/logiflow/logiflow/kit/metric"
)

var _ logiflow.OrderService = (*OrderMetrics)(nil)

// OrderMetrics is a metrics service middleware for the Order Service.
type OrderMetrics struct {
	// RED metrics
	rec *metric.REDClient

	orderService logiflow.OrderService
}

// NewOrderMetrics returns a metrics service middleware for the Order Service.
func NewOrderMetrics(reg prometheus.Registerer, s logiflow.OrderService) *OrderMetrics {
	return &OrderMetrics{
		rec:          metric.New(reg, "order"),
		orderService: s,
	}
}

func (m *OrderMetrics) FindOrderByID(ctx context.Context, id, tenantID string) (*logiflow.Order, error) {
	rec := m.rec.Record("find_order_by_id")
	order, err := m.orderService.FindOrderByID(ctx, id, tenantID)
	return order, rec(err)
}

func (m *OrderMetrics) FindOrders(ctx context.Context, tenantID string) ([]*logiflow.Order, error) {
	rec := m.rec.Record("find_orders")
	orders, err := m.orderService.FindOrders(ctx, tenantID)
	return orders, rec(err)
}

func (m *OrderMetrics) CreateOrder(ctx context.Context, o *logiflow.Order) error {
	rec := m.rec.Record("create_order")
	err := m.orderService.CreateOrder(ctx, o)
	return rec(err)
}

func (m *OrderMetrics) UpdateOrder(ctx context.Context, id, tenantID string, upd logiflow.OrderUpdate) (*logiflow.Order, error) {
	rec := m.rec.Record("update_order")
	order, err := m.orderService.UpdateOrder(ctx, id, tenantID, upd)
	return order, rec(err)
}

func (m *OrderMetrics) DeleteOrder(ctx context.Context, id, tenantID string) error {
	rec := m.rec.Record("delete_order")
	err := m.orderService.DeleteOrder(ctx, id, tenantID)
	return rec(err)
}
