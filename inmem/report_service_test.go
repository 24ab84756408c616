package inmem_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/logiflow/logiflow"
	"github.com/logiflow/logiflow/inmem"
)

func TestReportService_Metrics(t *testing.T) {
	s := inmem.NewService()
	ctx := context.Background()

	jan := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	orders := []*logiflow.Order{
		{TenantID: "tenant-1", Status: logiflow.OrderStatusPending, Total: 100, CreatedAt: jan, UpdatedAt: jan},
		{TenantID: "tenant-1", Status: logiflow.OrderStatusDelivered, Total: 250, CreatedAt: jan, UpdatedAt: jan},
		{TenantID: "tenant-1", Status: logiflow.OrderStatusPending, Total: 999, CreatedAt: feb, UpdatedAt: feb},
		{TenantID: "tenant-2", Status: logiflow.OrderStatusPending, Total: 50, CreatedAt: jan, UpdatedAt: jan},
	}
	for _, o := range orders {
		require.NoError(t, s.CreateOrder(ctx, o))
	}

	deliveries := []*logiflow.Delivery{
		{TenantID: "tenant-1", Status: logiflow.DeliveryStatusInTransit, CreatedAt: jan, UpdatedAt: jan},
		{TenantID: "tenant-1", Status: logiflow.DeliveryStatusDelivered, CreatedAt: feb, UpdatedAt: feb},
	}
	for _, d := range deliveries {
		require.NoError(t, s.CreateDelivery(ctx, d))
	}

	products := []*logiflow.Product{
		{ID: "product-1", TenantID: "tenant-1", SKU: "P1", Name: "Laptop", Unit: logiflow.ProductUnitPiece, Price: 1000},
		{ID: "product-2", TenantID: "tenant-1", SKU: "P2", Name: "Mouse", Unit: logiflow.ProductUnitPiece, Price: 50},
	}
	for _, p := range products {
		require.NoError(t, s.CreateProduct(ctx, p))
	}

	rows := []*logiflow.Inventory{
		{TenantID: "tenant-1", ProductID: "product-1", WarehouseID: "warehouse-1", Quantity: 5, MinStock: 10},
		{TenantID: "tenant-1", ProductID: "product-2", WarehouseID: "warehouse-1", Quantity: 100, MinStock: 10},
	}
	for _, row := range rows {
		require.NoError(t, s.CreateInventory(ctx, row))
	}

	period := logiflow.Period{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC),
	}
	m, err := s.Metrics(ctx, "tenant-1", period)
	require.NoError(t, err)

	require.Equal(t, "tenant-1", m.TenantID)
	require.Equal(t, 2, m.Orders.Total)
	require.Equal(t, 1, m.Orders.ByStatus[logiflow.OrderStatusPending])
	require.Equal(t, 1, m.Orders.ByStatus[logiflow.OrderStatusDelivered])
	require.InDelta(t, 350, m.Orders.Revenue, 1e-9)

	require.Equal(t, 1, m.Deliveries.Total)
	require.Equal(t, 1, m.Deliveries.ByStatus[logiflow.DeliveryStatusInTransit])

	// Inventory is current state, not period-bound.
	require.Equal(t, 2, m.Inventory.TotalProducts)
	require.Equal(t, 1, m.Inventory.LowStockItems)
	require.InDelta(t, 5*1000+100*50, m.Inventory.TotalValue, 1e-9)
	require.False(t, m.GeneratedAt.IsZero())
}

func TestReportService_Metrics_OpenPeriod(t *testing.T) {
	s := inmem.NewService()
	ctx := context.Background()

	require.NoError(t, s.CreateOrder(ctx, &logiflow.Order{
		TenantID: "tenant-1", Status: logiflow.OrderStatusPending, Total: 10,
	}))

	m, err := s.Metrics(ctx, "tenant-1", logiflow.Period{})
	require.NoError(t, err)
	require.Equal(t, 1, m.Orders.Total)
}
