package http

import (
	"net/http"

	"github.com/go-chi/chi"
	"go.uber.org/zap"

	"github.com/logiflow/logiflow"
	icontext "github.com/logiflow/logiflow/context"
	"github.com/logiflow/logiflow/kit/platform/errors"
	kithttp "github.com/logiflow/logiflow/kit/transport/http"
)

const prefixInventory = "/api/inventory"

// InventoryHandler represents an HTTP API handler for inventory rows.
type InventoryHandler struct {
	chi.Router
	api *kithttp.API
	log *zap.Logger

	inventoryService logiflow.InventoryService
}

// NewInventoryHandler returns a new instance of InventoryHandler.
func NewInventoryHandler(log *zap.Logger, inventoryService logiflow.InventoryService) *InventoryHandler {
	h := &InventoryHandler{
		api: kithttp.NewAPI(kithttp.WithLog(log)),
		log: log,

		inventoryService: inventoryService,
	}

	r := chi.NewRouter()
	r.Get("/", h.handleGetInventory)
	r.Put("/", h.handlePutInventory)
	h.Router = r
	return h
}

// Prefix returns the mount path of the handler.
func (h *InventoryHandler) Prefix() string { return prefixInventory }

type inventoryResponse struct {
	Data       []*logiflow.Inventory `json:"data"`
	Pagination logiflow.Pagination   `json:"pagination"`
}

// handleGetInventory is the HTTP handler for the GET /api/inventory route.
func (h *InventoryHandler) handleGetInventory(w http.ResponseWriter, r *http.Request) {
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

	rows, err := h.inventoryService.FindInventories(ctx, auth.Tenant.ID)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	// Optional low-stock filter for dashboard views.
	if r.URL.Query().Get("lowStock") == "true" {
		filtered := []*logiflow.Inventory{}
		for _, row := range rows {
			if row.LowStock() {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	page, pagination := paginate(rows, *opts)
	h.api.Respond(w, r, http.StatusOK, inventoryResponse{
		Data:       page,
		Pagination: pagination,
	})
}

type putInventoryRequest struct {
	ProductID   string `json:"productId"`
	WarehouseID string `json:"warehouseId"`
	Quantity    int    `json:"quantity"`
	MinStock    *int   `json:"minStock"`
	MaxStock    *int   `json:"maxStock"`
}

func (req *putInventoryRequest) Validate() error {
	var violations []errors.Violation
	if req.ProductID == "" {
		violations = append(violations, errors.Violation{Field: "productId", Msg: "product id is required"})
	}
	if req.WarehouseID == "" {
		violations = append(violations, errors.Violation{Field: "warehouseId", Msg: "warehouse id is required"})
	}
	if req.Quantity < 0 {
		violations = append(violations, errors.Violation{Field: "quantity", Msg: "quantity must not be negative"})
	}
	if req.MinStock != nil && *req.MinStock < 0 {
		violations = append(violations, errors.Violation{Field: "minStock", Msg: "minStock must not be negative"})
	}
	if req.MaxStock != nil && *req.MaxStock < 0 {
		violations = append(violations, errors.Violation{Field: "maxStock", Msg: "maxStock must not be negative"})
	}
	if len(violations) > 0 {
		return invalidDataError(violations)
	}
	return nil
}

// handlePutInventory is the HTTP handler for the PUT /api/inventory route.
// The row keyed by (productId, warehouseId) is updated when present and
// created otherwise.
func (h *InventoryHandler) handlePutInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	var req putInventoryRequest
	if err := h.api.DecodeJSON(r.Body, &req); err != nil {
		h.api.Err(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.api.Err(w, r, err)
		return
	}

	existing, err := h.inventoryService.FindInventoryByProductAndWarehouse(ctx, req.ProductID, req.WarehouseID, auth.Tenant.ID)
	if err != nil && errors.ErrorCode(err) != errors.ENotFound {
		h.api.Err(w, r, err)
		return
	}

	if existing != nil {
		upd := logiflow.InventoryUpdate{
			Quantity: &req.Quantity,
			MinStock: req.MinStock,
			MaxStock: req.MaxStock,
		}
		row, err := h.inventoryService.UpdateInventory(ctx, existing.ID, auth.Tenant.ID, upd)
		if err != nil {
			h.api.Err(w, r, err)
			return
		}
		h.api.Respond(w, r, http.StatusOK, row)
		return
	}

	row := &logiflow.Inventory{
		TenantID:    auth.Tenant.ID,
		ProductID:   req.ProductID,
		WarehouseID: req.WarehouseID,
		Quantity:    req.Quantity,
	}
	if req.MinStock != nil {
		row.MinStock = *req.MinStock
	}
	if req.MaxStock != nil {
		row.MaxStock = *req.MaxStock
	}

	if err := h.inventoryService.CreateInventory(ctx, row); err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusCreated, row)
}
