package inmem_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/logiflow/logiflow"
	"github.com/logiflow/logiflow/inmem"
	"github.com/logiflow/logiflow/kit/platform/errors"
)

func TestInventoryService_FindByProductAndWarehouse(t *testing.T) {
	s := inmem.NewService()
	ctx := context.Background()

	rows := []*logiflow.Inventory{
		{TenantID: "tenant-1", ProductID: "product-1", WarehouseID: "warehouse-1", Quantity: 50},
		{TenantID: "tenant-1", ProductID: "product-2", WarehouseID: "warehouse-1", Quantity: 200},
		{TenantID: "tenant-2", ProductID: "product-1", WarehouseID: "warehouse-1", Quantity: 7},
	}
	for _, row := range rows {
		require.NoError(t, s.CreateInventory(ctx, row))
		require.NotEmpty(t, row.ID)
		require.False(t, row.LastUpdated.IsZero())
	}

	got, err := s.FindInventoryByProductAndWarehouse(ctx, "product-1", "warehouse-1", "tenant-1")
	require.NoError(t, err)
	require.Equal(t, 50, got.Quantity)

	// The same product and warehouse under another tenant is a distinct row.
	got, err = s.FindInventoryByProductAndWarehouse(ctx, "product-1", "warehouse-1", "tenant-2")
	require.NoError(t, err)
	require.Equal(t, 7, got.Quantity)

	_, err = s.FindInventoryByProductAndWarehouse(ctx, "product-9", "warehouse-1", "tenant-1")
	require.Equal(t, errors.ENotFound, errors.ErrorCode(err))
}

func TestInventoryService_Update(t *testing.T) {
	s := inmem.NewService()
	ctx := context.Background()

	row := &logiflow.Inventory{
		TenantID:    "tenant-1",
		ProductID:   "product-1",
		WarehouseID: "warehouse-1",
		Quantity:    50,
		MinStock:    10,
		MaxStock:    100,
	}
	require.NoError(t, s.CreateInventory(ctx, row))
	created := row.LastUpdated

	qty := 5
	got, err := s.UpdateInventory(ctx, row.ID, "tenant-1", logiflow.InventoryUpdate{Quantity: &qty})
	require.NoError(t, err)
	require.Equal(t, 5, got.Quantity)
	require.Equal(t, 10, got.MinStock)
	require.False(t, got.LastUpdated.Before(created))
	require.True(t, got.LowStock())

	_, err = s.UpdateInventory(ctx, row.ID, "tenant-2", logiflow.InventoryUpdate{Quantity: &qty})
	require.Equal(t, errors.ENotFound, errors.ErrorCode(err))
}
