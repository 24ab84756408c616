package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi"
	"go.uber.org/zap"

	"github.com/logiflow/logiflow"
	icontext "github.com/logiflow/logiflow/context"
	"github.com/logiflow/logiflow/kit/platform/errors"
	kithttp "github.com/logiflow/logiflow/kit/transport/http"
)

const prefixOrders = "/api/orders"

// OrderHandler represents an HTTP API handler for orders.
type OrderHandler struct {
	chi.Router
	api *kithttp.API
	log *zap.Logger

	orderService logiflow.OrderService
}

// NewOrderHandler returns a new instance of OrderHandler.
func NewOrderHandler(log *zap.Logger, orderService logiflow.OrderService) *OrderHandler {
	h := &OrderHandler{
		api: kithttp.NewAPI(kithttp.WithLog(log)),
		log: log,

		orderService: orderService,
	}

	r := chi.NewRouter()
	r.Get("/", h.handleGetOrders)
	r.Post("/", h.handlePostOrder)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.handleGetOrder)
		r.Put("/", h.handlePutOrder)
		r.Delete("/", h.handleDeleteOrder)
	})
	h.Router = r
	return h
}

// Prefix returns the mount path of the handler.
func (h *OrderHandler) Prefix() string { return prefixOrders }

type ordersResponse struct {
	Data       []*logiflow.Order   `json:"data"`
	Pagination logiflow.Pagination `json:"pagination"`
}

// handleGetOrders is the HTTP handler for the GET /api/orders route.
func (h *OrderHandler) handleGetOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	opts, err := decodeFindOptions(ctx, r)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}
	filter, err := decodeFindFilter(ctx, r)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	orders, err := h.orderService.FindOrders(ctx, auth.Tenant.ID)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}
	orders = filterOrders(orders, filter)

	page, pagination := paginate(orders, *opts)
	h.api.Respond(w, r, http.StatusOK, ordersResponse{
		Data:       page,
		Pagination: pagination,
	})
}

// filterOrders applies status, then search, then date range.
func filterOrders(orders []*logiflow.Order, f *findFilter) []*logiflow.Order {
	if f.Status != "" {
		filtered := []*logiflow.Order{}
		for _, o := range orders {
			if string(o.Status) == f.Status {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		filtered := []*logiflow.Order{}
		for _, o := range orders {
			if strings.Contains(strings.ToLower(o.OrderNumber), search) ||
				strings.Contains(strings.ToLower(o.CustomerID), search) {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}
	if f.DateFrom != nil || f.DateTo != nil {
		filtered := []*logiflow.Order{}
		for _, o := range orders {
			if f.inDateRange(o.CreatedAt) {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}
	return orders
}

type postOrderRequest struct {
	CustomerID      string                 `json:"customerId"`
	Items           []postOrderItemRequest `json:"items"`
	ShippingAddress logiflow.Address       `json:"shippingAddress"`
	BillingAddress  *logiflow.Address      `json:"billingAddress"`
	Notes           string                 `json:"notes"`
}

type postOrderItemRequest struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

func (req *postOrderRequest) Validate() error {
	var violations []errors.Violation
	if req.CustomerID == "" {
		violations = append(violations, errors.Violation{Field: "customerId", Msg: "customer id is required"})
	}
	if len(req.Items) == 0 {
		violations = append(violations, errors.Violation{Field: "items", Msg: "at least one item is required"})
	}
	for _, item := range req.Items {
		if item.ProductID == "" {
			violations = append(violations, errors.Violation{Field: "items", Msg: "product id is required"})
		}
		if item.Quantity <= 0 {
			violations = append(violations, errors.Violation{Field: "items", Msg: "quantity must be positive"})
		}
		if item.UnitPrice < 0 {
			violations = append(violations, errors.Violation{Field: "items", Msg: "unit price must not be negative"})
		}
	}
	violations = append(violations, validateAddress("shippingAddress", &req.ShippingAddress)...)
	if req.BillingAddress != nil {
		violations = append(violations, validateAddress("billingAddress", req.BillingAddress)...)
	}
	if len(violations) > 0 {
		return invalidDataError(violations)
	}
	return nil
}

// handlePostOrder is the HTTP handler for the POST /api/orders route.
func (h *OrderHandler) handlePostOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	var req postOrderRequest
	if err := h.api.DecodeJSON(r.Body, &req); err != nil {
		h.api.Err(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.api.Err(w, r, err)
		return
	}

	items := make([]logiflow.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, logiflow.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	order := &logiflow.Order{
		TenantID:        auth.Tenant.ID,
		CustomerID:      req.CustomerID,
		Status:          logiflow.OrderStatusPending,
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		Notes:           req.Notes,
	}
	order.RecalculateTotals()

	if err := h.orderService.CreateOrder(ctx, order); err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusCreated, order)
}

// handleGetOrder is the HTTP handler for the GET /api/orders/{id} route.
func (h *OrderHandler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	order, err := h.orderService.FindOrderByID(ctx, chi.URLParam(r, "id"), auth.Tenant.ID)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusOK, order)
}

type putOrderRequest struct {
	logiflow.OrderUpdate
}

func (req *putOrderRequest) Validate() error {
	var violations []errors.Violation
	if req.Status != nil && !req.Status.Valid() {
		violations = append(violations, errors.Violation{Field: "status", Msg: "unknown order status"})
	}
	if len(violations) > 0 {
		return invalidDataError(violations)
	}
	return nil
}

// handlePutOrder is the HTTP handler for the PUT /api/orders/{id} route.
func (h *OrderHandler) handlePutOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	var req putOrderRequest
	if err := h.api.DecodeJSON(r.Body, &req); err != nil {
		h.api.Err(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.api.Err(w, r, err)
		return
	}

	order, err := h.orderService.UpdateOrder(ctx, chi.URLParam(r, "id"), auth.Tenant.ID, req.OrderUpdate)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusOK, order)
}

// handleDeleteOrder is the HTTP handler for the DELETE /api/orders/{id} route.
func (h *OrderHandler) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	if err := h.orderService.DeleteOrder(ctx, chi.URLParam(r, "id"), auth.Tenant.ID); err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusNoContent, nil)
}
