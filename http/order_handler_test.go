package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/logiflow/logiflow"
	icontext "github.com/logiflow/logiflow/context"
	"github.com/logiflow/logiflow/inmem"
	"github.com/logiflow/logiflow/mock"
)

// withAuthorization wraps h so every request carries the given tenant's
// authorization, standing in for the authentication middleware.
func withAuthorization(h http.Handler, tenantID string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := icontext.SetAuthorizer(r.Context(), &logiflow.Authorization{
			User:   &logiflow.User{ID: "user-1", TenantID: tenantID},
			Tenant: &logiflow.Tenant{ID: tenantID},
		})
		h.ServeHTTP(w, r.WithContext(ctx))
	})
}

func newOrderTestService(t *testing.T) *inmem.Service {
	t.Helper()
	svc := inmem.NewService()
	svc.IDGenerator = &mock.IDGenerator{Prefix: "order"}
	svc.TokenGenerator = &mock.TokenGenerator{Fixed: "AB12CD34E"}
	mc := clock.NewMock()
	mc.Set(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	svc.WithClock(mc)
	return svc
}

func TestOrderHandler_PostOrder(t *testing.T) {
	svc := newOrderTestService(t)
	h := withAuthorization(NewOrderHandler(zaptest.NewLogger(t), svc), "tenant-1")

	body := `{
		"customerId": "customer-1",
		"items": [
			{"productId": "product-1", "quantity": 2, "unitPrice": 10},
			{"productId": "product-2", "quantity": 1, "unitPrice": 5.5}
		],
		"shippingAddress": {
			"street": "Main St", "number": "100", "neighborhood": "Center",
			"city": "Springfield", "state": "SP", "zipCode": "12345", "country": "US"
		},
		"notes": "leave at the door"
	}`

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("POST", "/", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, w.Code)

	var got logiflow.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "order-1", got.ID)
	require.Equal(t, "tenant-1", got.TenantID)
	require.Equal(t, "ORD-1709287200000-AB12CD34E", got.OrderNumber)
	require.Equal(t, logiflow.OrderStatusPending, got.Status)
	require.Len(t, got.Items, 2)
	require.Equal(t, 20.0, got.Items[0].Total)
	require.Equal(t, 5.5, got.Items[1].Total)
	require.Equal(t, 25.5, got.Subtotal)
	require.InDelta(t, 2.55, got.Tax, 1e-9)
	require.Equal(t, 0.0, got.ShippingCost)
	require.InDelta(t, 28.05, got.Total, 1e-9)
	require.Equal(t, "leave at the door", got.Notes)
	require.False(t, got.CreatedAt.IsZero())
}

func TestOrderHandler_PostOrder_Invalid(t *testing.T) {
	svc := newOrderTestService(t)
	h := withAuthorization(NewOrderHandler(zaptest.NewLogger(t), svc), "tenant-1")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("POST", "/", strings.NewReader(`{"items": []}`)))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Code    string `json:"code"`
		Error   string `json:"error"`
		Details []struct {
			Field string `json:"field"`
			Msg   string `json:"message"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "invalid", resp.Code)
	require.Equal(t, "invalid data", resp.Error)
	fields := make([]string, 0, len(resp.Details))
	for _, d := range resp.Details {
		fields = append(fields, d.Field)
	}
	require.Contains(t, fields, "customerId")
	require.Contains(t, fields, "items")
	require.Contains(t, fields, "shippingAddress.street")
}

func TestOrderHandler_GetOrders(t *testing.T) {
	svc := newOrderTestService(t)
	ctx := context.Background()

	seed := []*logiflow.Order{
		{TenantID: "tenant-1", CustomerID: "customer-1", Status: logiflow.OrderStatusPending},
		{TenantID: "tenant-1", CustomerID: "customer-2", Status: logiflow.OrderStatusDelivered},
		{TenantID: "tenant-2", CustomerID: "customer-9", Status: logiflow.OrderStatusPending},
	}
	for _, o := range seed {
		require.NoError(t, svc.CreateOrder(ctx, o))
	}

	h := withAuthorization(NewOrderHandler(zaptest.NewLogger(t), svc), "tenant-1")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data       []*logiflow.Order   `json:"data"`
		Pagination logiflow.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	require.Equal(t, "customer-1", resp.Data[0].CustomerID)
	require.Equal(t, "customer-2", resp.Data[1].CustomerID)
	require.Equal(t, logiflow.Pagination{Page: 1, Limit: 10, Total: 2, TotalPages: 1}, resp.Pagination)
}

func TestOrderHandler_GetOrders_Filters(t *testing.T) {
	svc := newOrderTestService(t)
	ctx := context.Background()

	for _, o := range []*logiflow.Order{
		{TenantID: "tenant-1", CustomerID: "customer-1", Status: logiflow.OrderStatusPending},
		{TenantID: "tenant-1", CustomerID: "customer-2", Status: logiflow.OrderStatusDelivered},
		{TenantID: "tenant-1", CustomerID: "customer-2", Status: logiflow.OrderStatusPending},
	} {
		require.NoError(t, svc.CreateOrder(ctx, o))
	}

	h := withAuthorization(NewOrderHandler(zaptest.NewLogger(t), svc), "tenant-1")

	get := func(t *testing.T, target string) (int, []*logiflow.Order, logiflow.Pagination) {
		t.Helper()
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", target, nil))
		var resp struct {
			Data       []*logiflow.Order   `json:"data"`
			Pagination logiflow.Pagination `json:"pagination"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return w.Code, resp.Data, resp.Pagination
	}

	t.Run("by status", func(t *testing.T) {
		code, data, pagination := get(t, "/?status=pending")
		require.Equal(t, http.StatusOK, code)
		require.Len(t, data, 2)
		require.Equal(t, 2, pagination.Total)
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		code, data, _ := get(t, "/?search=CUSTOMER-2")
		require.Equal(t, http.StatusOK, code)
		require.Len(t, data, 2)
	})

	t.Run("status and search combined", func(t *testing.T) {
		code, data, _ := get(t, "/?status=pending&search=customer-2")
		require.Equal(t, http.StatusOK, code)
		require.Len(t, data, 1)
	})

	t.Run("pagination past the end keeps the total", func(t *testing.T) {
		code, data, pagination := get(t, "/?page=5&limit=2")
		require.Equal(t, http.StatusOK, code)
		require.Empty(t, data)
		require.Equal(t, 3, pagination.Total)
		require.Equal(t, 2, pagination.TotalPages)
	})

	t.Run("invalid limit", func(t *testing.T) {
		code, _, _ := get(t, "/?limit=1000")
		require.Equal(t, http.StatusBadRequest, code)
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	svc := newOrderTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateOrder(ctx, &logiflow.Order{TenantID: "tenant-1", CustomerID: "customer-1"}))

	h := withAuthorization(NewOrderHandler(zaptest.NewLogger(t), svc), "tenant-1")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/order-1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got logiflow.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "order-1", got.ID)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/no-such-order", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderHandler_PutOrder(t *testing.T) {
	svc := newOrderTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateOrder(ctx, &logiflow.Order{TenantID: "tenant-1", CustomerID: "customer-1"}))

	h := withAuthorization(NewOrderHandler(zaptest.NewLogger(t), svc), "tenant-1")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("PUT", "/order-1", strings.NewReader(`{"status": "shipped"}`)))
	require.Equal(t, http.StatusOK, w.Code)

	var got logiflow.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, logiflow.OrderStatusShipped, got.Status)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("PUT", "/order-1", strings.NewReader(`{"status": "teleported"}`)))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHandler_DeleteOrder(t *testing.T) {
	svc := newOrderTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateOrder(ctx, &logiflow.Order{TenantID: "tenant-1", CustomerID: "customer-1"}))

	h := withAuthorization(NewOrderHandler(zaptest.NewLogger(t), svc), "tenant-1")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("DELETE", "/order-1", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	orders, err := svc.FindOrders(ctx, "tenant-1")
	require.NoError(t, err)
	require.Empty(t, orders)
}

func TestOrderHandler_CrossTenant(t *testing.T) {
	svc := newOrderTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateOrder(ctx, &logiflow.Order{TenantID: "tenant-1", CustomerID: "customer-1"}))

	h := withAuthorization(NewOrderHandler(zaptest.NewLogger(t), svc), "tenant-2")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/order-1", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}
