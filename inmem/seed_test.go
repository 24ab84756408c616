package inmem_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/logiflow/logiflow/inmem"
)

func TestSeed(t *testing.T) {
	s := inmem.NewService()
	ctx := context.Background()

	require.NoError(t, s.Seed(ctx))

	tenants, err := s.FindTenants(ctx)
	require.NoError(t, err)
	require.Len(t, tenants, 2)
	require.Equal(t, "tenant-1", tenants[0].ID)
	require.Equal(t, "tenant-2", tenants[1].ID)

	u, err := s.FindUserByEmail(ctx, "admin@acmelogistics.example")
	require.NoError(t, err)
	require.Equal(t, "user-1", u.ID)
	require.Equal(t, "tenant-1", u.TenantID)
	require.True(t, u.IsActive)

	customers, err := s.FindCustomers(ctx, "tenant-1")
	require.NoError(t, err)
	require.Len(t, customers, 1)

	products, err := s.FindProducts(ctx, "tenant-1")
	require.NoError(t, err)
	require.Len(t, products, 2)

	warehouses, err := s.FindWarehouses(ctx, "tenant-1")
	require.NoError(t, err)
	require.Len(t, warehouses, 1)

	carriers, err := s.FindCarriers(ctx, "tenant-1")
	require.NoError(t, err)
	require.Len(t, carriers, 1)

	rows, err := s.FindInventories(ctx, "tenant-1")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// All demo rows belong to the first tenant.
	rows, err = s.FindInventories(ctx, "tenant-2")
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestSeed_Idempotent(t *testing.T) {
	s := inmem.NewService()
	ctx := context.Background()

	require.NoError(t, s.Seed(ctx))
	require.NoError(t, s.Seed(ctx))

	tenants, err := s.FindTenants(ctx)
	require.NoError(t, err)
	require.Len(t, tenants, 2)

	products, err := s.FindProducts(ctx, "tenant-1")
	require.NoError(t, err)
	require.Len(t, products, 2)
}
