package inmem

import (
	"context"

	"github.com/logiflow/logiflow"
)

var _ logiflow.ReportService = (*Service)(nil)

// Metrics aggregates orders and deliveries created inside period plus
// current inventory levels for the tenant. Inventory value is priced from
// the product catalog; rows whose product is missing count as zero value.
func (s *Service) Metrics(ctx context.Context, tenantID string, period logiflow.Period) (*logiflow.LogisticsMetrics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m := &logiflow.LogisticsMetrics{
		TenantID: tenantID,
		Period:   period,
		Orders: logiflow.OrderMetrics{
			ByStatus: map[logiflow.OrderStatus]int{},
		},
		Deliveries: logiflow.DeliveryMetrics{
			ByStatus: map[logiflow.DeliveryStatus]int{},
		},
		GeneratedAt: s.now(),
	}

	for i := range s.orders {
		o := &s.orders[i]
		if o.TenantID != tenantID || !period.Contains(o.CreatedAt) {
			continue
		}
		m.Orders.Total++
		m.Orders.ByStatus[o.Status]++
		m.Orders.Revenue += o.Total
	}

	for i := range s.deliveries {
		d := &s.deliveries[i]
		if d.TenantID != tenantID || !period.Contains(d.CreatedAt) {
			continue
		}
		m.Deliveries.Total++
		m.Deliveries.ByStatus[d.Status]++
	}

	prices := map[string]float64{}
	for i := range s.products {
		if s.products[i].TenantID == tenantID {
			prices[s.products[i].ID] = s.products[i].Price
		}
	}
	for i := range s.inventories {
		inv := &s.inventories[i]
		if inv.TenantID != tenantID {
			continue
		}
		m.Inventory.TotalProducts++
		if inv.LowStock() {
			m.Inventory.LowStockItems++
		}
		m.Inventory.TotalValue += float64(inv.Quantity) * prices[inv.ProductID]
	}

	return m, nil
}
