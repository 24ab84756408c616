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

const prefixSuppliers = "/api/suppliers"

// SupplierHandler represents an HTTP API handler for suppliers.
type SupplierHandler struct {
	chi.Router
	api *kithttp.API
	log *zap.Logger

	supplierService logiflow.SupplierService
}

// NewSupplierHandler returns a new instance of SupplierHandler.
func NewSupplierHandler(log *zap.Logger, supplierService logiflow.SupplierService) *SupplierHandler {
	h := &SupplierHandler{
		api: kithttp.NewAPI(kithttp.WithLog(log)),
		log: log,

		supplierService: supplierService,
	}

	r := chi.NewRouter()
	r.Get("/", h.handleGetSuppliers)
	r.Post("/", h.handlePostSupplier)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.handleGetSupplier)
		r.Put("/", h.handlePutSupplier)
		r.Delete("/", h.handleDeleteSupplier)
	})
	h.Router = r
	return h
}

// Prefix returns the mount path of the handler.
func (h *SupplierHandler) Prefix() string { return prefixSuppliers }

type suppliersResponse struct {
	Data       []*logiflow.Supplier `json:"data"`
	Pagination logiflow.Pagination  `json:"pagination"`
}

// handleGetSuppliers is the HTTP handler for the GET /api/suppliers route.
func (h *SupplierHandler) handleGetSuppliers(w http.ResponseWriter, r *http.Request) {
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

	suppliers, err := h.supplierService.FindSuppliers(ctx, auth.Tenant.ID)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}
	suppliers = filterSuppliers(suppliers, filter)

	page, pagination := paginate(suppliers, *opts)
	h.api.Respond(w, r, http.StatusOK, suppliersResponse{
		Data:       page,
		Pagination: pagination,
	})
}

// filterSuppliers applies search over name, email and document.
func filterSuppliers(suppliers []*logiflow.Supplier, f *findFilter) []*logiflow.Supplier {
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		filtered := []*logiflow.Supplier{}
		for _, s := range suppliers {
			if strings.Contains(strings.ToLower(s.Name), search) ||
				strings.Contains(strings.ToLower(s.Email), search) ||
				(s.Document != "" && strings.Contains(s.Document, search)) {
				filtered = append(filtered, s)
			}
		}
		suppliers = filtered
	}
	return suppliers
}

type postSupplierRequest struct {
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	Document      string            `json:"document"`
	Address       *logiflow.Address `json:"address"`
	ContactPerson string            `json:"contactPerson"`
}

func (req *postSupplierRequest) Validate() error {
	var violations []errors.Violation
	if req.Name == "" {
		violations = append(violations, errors.Violation{Field: "name", Msg: "name is required"})
	}
	if !validEmail(req.Email) {
		violations = append(violations, errors.Violation{Field: "email", Msg: "email is invalid"})
	}
	if req.Address != nil {
		violations = append(violations, validateAddress("address", req.Address)...)
	}
	if len(violations) > 0 {
		return invalidDataError(violations)
	}
	return nil
}

// handlePostSupplier is the HTTP handler for the POST /api/suppliers route.
func (h *SupplierHandler) handlePostSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	var req postSupplierRequest
	if err := h.api.DecodeJSON(r.Body, &req); err != nil {
		h.api.Err(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.api.Err(w, r, err)
		return
	}

	supplier := &logiflow.Supplier{
		TenantID:      auth.Tenant.ID,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Document:      req.Document,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
		IsActive:      true,
	}

	if err := h.supplierService.CreateSupplier(ctx, supplier); err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusCreated, supplier)
}

// handleGetSupplier is the HTTP handler for the GET /api/suppliers/{id} route.
func (h *SupplierHandler) handleGetSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	supplier, err := h.supplierService.FindSupplierByID(ctx, chi.URLParam(r, "id"), auth.Tenant.ID)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusOK, supplier)
}

type putSupplierRequest struct {
	logiflow.SupplierUpdate
}

func (req *putSupplierRequest) Validate() error {
	var violations []errors.Violation
	if req.Email != nil && !validEmail(*req.Email) {
		violations = append(violations, errors.Violation{Field: "email", Msg: "email is invalid"})
	}
	if req.Address != nil {
		violations = append(violations, validateAddress("address", req.Address)...)
	}
	if len(violations) > 0 {
		return invalidDataError(violations)
	}
	return nil
}

// handlePutSupplier is the HTTP handler for the PUT /api/suppliers/{id} route.
func (h *SupplierHandler) handlePutSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	var req putSupplierRequest
	if err := h.api.DecodeJSON(r.Body, &req); err != nil {
		h.api.Err(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.api.Err(w, r, err)
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(ctx, chi.URLParam(r, "id"), auth.Tenant.ID, req.SupplierUpdate)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusOK, supplier)
}

// handleDeleteSupplier is the HTTP handler for the DELETE /api/suppliers/{id} route.
func (h *SupplierHandler) handleDeleteSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	if err := h.supplierService.DeleteSupplier(ctx, chi.URLParam(r, "id"), auth.Tenant.ID); err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusNoContent, nil)
}
