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

const prefixWarehouses = "/api/warehouses"

// WarehouseHandler represents an HTTP API handler for warehouses.
type WarehouseHandler struct {
	chi.Router
	api *kithttp.API
	log *zap.Logger

	warehouseService logiflow.WarehouseService
}

// NewWarehouseHandler returns a new instance of WarehouseHandler.
func NewWarehouseHandler(log *zap.Logger, warehouseService logiflow.WarehouseService) *WarehouseHandler {
	h := &WarehouseHandler{
		api: kithttp.NewAPI(kithttp.WithLog(log)),
		log: log,

		warehouseService: warehouseService,
	}

	r := chi.NewRouter()
	r.Get("/", h.handleGetWarehouses)
	r.Post("/", h.handlePostWarehouse)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.handleGetWarehouse)
		r.Put("/", h.handlePutWarehouse)
		r.Delete("/", h.handleDeleteWarehouse)
	})
	h.Router = r
	return h
}

// Prefix returns the mount path of the handler.
func (h *WarehouseHandler) Prefix() string { return prefixWarehouses }

type warehousesResponse struct {
	Data       []*logiflow.Warehouse `json:"data"`
	Pagination logiflow.Pagination   `json:"pagination"`
}

// handleGetWarehouses is the HTTP handler for the GET /api/warehouses route.
func (h *WarehouseHandler) handleGetWarehouses(w http.ResponseWriter, r *http.Request) {
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

	warehouses, err := h.warehouseService.FindWarehouses(ctx, auth.Tenant.ID)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}
	warehouses = filterWarehouses(warehouses, filter)

	page, pagination := paginate(warehouses, *opts)
	h.api.Respond(w, r, http.StatusOK, warehousesResponse{
		Data:       page,
		Pagination: pagination,
	})
}

// filterWarehouses applies search over name and code.
func filterWarehouses(warehouses []*logiflow.Warehouse, f *findFilter) []*logiflow.Warehouse {
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		filtered := []*logiflow.Warehouse{}
		for _, w := range warehouses {
			if strings.Contains(strings.ToLower(w.Name), search) ||
				strings.Contains(strings.ToLower(w.Code), search) {
				filtered = append(filtered, w)
			}
		}
		warehouses = filtered
	}
	return warehouses
}

type postWarehouseRequest struct {
	Name     string           `json:"name"`
	Code     string           `json:"code"`
	Address  logiflow.Address `json:"address"`
	Capacity int              `json:"capacity"`
}

func (req *postWarehouseRequest) Validate() error {
	var violations []errors.Violation
	if req.Name == "" {
		violations = append(violations, errors.Violation{Field: "name", Msg: "name is required"})
	}
	if req.Code == "" {
		violations = append(violations, errors.Violation{Field: "code", Msg: "code is required"})
	}
	if req.Capacity < 0 {
		violations = append(violations, errors.Violation{Field: "capacity", Msg: "capacity must be positive"})
	}
	violations = append(violations, validateAddress("address", &req.Address)...)
	if len(violations) > 0 {
		return invalidDataError(violations)
	}
	return nil
}

// handlePostWarehouse is the HTTP handler for the POST /api/warehouses route.
func (h *WarehouseHandler) handlePostWarehouse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	var req postWarehouseRequest
	if err := h.api.DecodeJSON(r.Body, &req); err != nil {
		h.api.Err(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.api.Err(w, r, err)
		return
	}

	warehouse := &logiflow.Warehouse{
		TenantID: auth.Tenant.ID,
		Name:     req.Name,
		Code:     req.Code,
		Address:  req.Address,
		Capacity: req.Capacity,
		IsActive: true,
	}

	if err := h.warehouseService.CreateWarehouse(ctx, warehouse); err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusCreated, warehouse)
}

// handleGetWarehouse is the HTTP handler for the GET /api/warehouses/{id} route.
func (h *WarehouseHandler) handleGetWarehouse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	warehouse, err := h.warehouseService.FindWarehouseByID(ctx, chi.URLParam(r, "id"), auth.Tenant.ID)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusOK, warehouse)
}

type putWarehouseRequest struct {
	logiflow.WarehouseUpdate
}

func (req *putWarehouseRequest) Validate() error {
	var violations []errors.Violation
	if req.Capacity != nil && *req.Capacity < 0 {
		violations = append(violations, errors.Violation{Field: "capacity", Msg: "capacity must be positive"})
	}
	if req.Address != nil {
		violations = append(violations, validateAddress("address", req.Address)...)
	}
	if len(violations) > 0 {
		return invalidDataError(violations)
	}
	return nil
}

// handlePutWarehouse is the HTTP handler for the PUT /api/warehouses/{id} route.
func (h *WarehouseHandler) handlePutWarehouse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	var req putWarehouseRequest
	if err := h.api.DecodeJSON(r.Body, &req); err != nil {
		h.api.Err(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.api.Err(w, r, err)
		return
	}

	warehouse, err := h.warehouseService.UpdateWarehouse(ctx, chi.URLParam(r, "id"), auth.Tenant.ID, req.WarehouseUpdate)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusOK, warehouse)
}

// handleDeleteWarehouse is the HTTP handler for the DELETE /api/warehouses/{id} route.
func (h *WarehouseHandler) handleDeleteWarehouse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	if err := h.warehouseService.DeleteWarehouse(ctx, chi.URLParam(r, "id"), auth.Tenant.ID); err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusNoContent, nil)
}
