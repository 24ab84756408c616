package logiflow

import (
	"context"
	"time"
)

// Period is a closed date range.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the period, inclusive on both
// ends. Zero bounds are open.
func (p Period) Contains(t time.Time) bool {
	if !p.Start.IsZero() && t.Before(p.Start) {
		return false
	}
	if !p.End.IsZero() && t.After(p.End) {
		return false
	}
	return true
}

// OrderMetrics aggregates the tenant's orders over a period.
type OrderMetrics struct {
	Total    int                 `json:"total"`
	ByStatus map[OrderStatus]int `json:"byStatus"`
	Revenue  float64             `json:"revenue"`
}

// DeliveryMetrics aggregates the tenant's deliveries over a period.
type DeliveryMetrics struct {
	Total    int                    `json:"total"`
	ByStatus map[DeliveryStatus]int `json:"byStatus"`
}

// InventoryMetrics summarizes current stock levels.
type InventoryMetrics struct {
	TotalProducts int     `json:"totalProducts"`
	LowStockItems int     `json:"lowStockItems"`
	TotalValue    float64 `json:"totalValue"`
}

// LogisticsMetrics is the dashboard aggregate for one tenant and period.
type LogisticsMetrics struct {
	TenantID    string           `json:"tenantId"`
	Period      Period           `json:"period"`
	Orders      OrderMetrics     `json:"orders"`
	Deliveries  DeliveryMetrics  `json:"deliveries"`
	Inventory   InventoryMetrics `json:"inventory"`
	GeneratedAt time.Time        `json:"generatedAt"`
}

// ReportService computes dashboard metrics from the live collections.
type ReportService interface {
	// Metrics aggregates orders and deliveries created inside period plus
	// current inventory levels for the tenant.
	Metrics(ctx context.Context, tenantID string, period Period) (*LogisticsMetrics, error)
}
