package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/logiflow/logiflow"
	"github.com/logiflow/logiflow/inmem"
	"github.com/logiflow/logiflow/mock"
)

func newInventoryTestService(t *testing.T) *inmem.Service {
	t.Helper()
	svc := inmem.NewService()
	svc.IDGenerator = &mock.IDGenerator{Prefix: "inventory"}
	return svc
}

func TestInventoryHandler_PutInventory_Upsert(t *testing.T) {
	svc := newInventoryTestService(t)
	h := withAuthorization(NewInventoryHandler(zaptest.NewLogger(t), svc), "tenant-1")

	// first write creates the row
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("PUT", "/",
		strings.NewReader(`{"productId": "product-1", "warehouseId": "warehouse-1", "quantity": 40, "minStock": 10}`)))
	require.Equal(t, http.StatusCreated, w.Code)

	var created logiflow.Inventory
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, "inventory-1", created.ID)
	require.Equal(t, 40, created.Quantity)
	require.Equal(t, 10, created.MinStock)

	// second write for the same product and warehouse updates it in place
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("PUT", "/",
		strings.NewReader(`{"productId": "product-1", "warehouseId": "warehouse-1", "quantity": 5}`)))
	require.Equal(t, http.StatusOK, w.Code)

	var updated logiflow.Inventory
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "inventory-1", updated.ID)
	require.Equal(t, 5, updated.Quantity)
	require.Equal(t, 10, updated.MinStock)

	rows, err := svc.FindInventories(context.Background(), "tenant-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestInventoryHandler_PutInventory_Invalid(t *testing.T) {
	svc := newInventoryTestService(t)
	h := withAuthorization(NewInventoryHandler(zaptest.NewLogger(t), svc), "tenant-1")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("PUT", "/",
		strings.NewReader(`{"productId": "", "warehouseId": "warehouse-1", "quantity": -1}`)))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInventoryHandler_GetInventory_LowStock(t *testing.T) {
	svc := newInventoryTestService(t)
	ctx := context.Background()

	for _, row := range []*logiflow.Inventory{
		{TenantID: "tenant-1", ProductID: "product-1", WarehouseID: "warehouse-1", Quantity: 50, MinStock: 10},
		{TenantID: "tenant-1", ProductID: "product-2", WarehouseID: "warehouse-1", Quantity: 5, MinStock: 10},
	} {
		require.NoError(t, svc.CreateInventory(ctx, row))
	}

	h := withAuthorization(NewInventoryHandler(zaptest.NewLogger(t), svc), "tenant-1")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/?lowStock=true", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data       []*logiflow.Inventory `json:"data"`
		Pagination logiflow.Pagination   `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	require.Equal(t, "product-2", resp.Data[0].ProductID)
	require.Equal(t, 1, resp.Pagination.Total)
}
