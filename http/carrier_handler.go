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

const prefixCarriers = "/api/carriers"

// CarrierHandler represents an HTTP API handler for carriers.
type CarrierHandler struct {
	chi.Router
	api *kithttp.API
	log *zap.Logger

	carrierService logiflow.CarrierService
}

// NewCarrierHandler returns a new instance of CarrierHandler.
func NewCarrierHandler(log *zap.Logger, carrierService logiflow.CarrierService) *CarrierHandler {
	h := &CarrierHandler{
		api: kithttp.NewAPI(kithttp.WithLog(log)),
		log: log,

		carrierService: carrierService,
	}

	r := chi.NewRouter()
	r.Get("/", h.handleGetCarriers)
	r.Post("/", h.handlePostCarrier)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.handleGetCarrier)
		r.Put("/", h.handlePutCarrier)
		r.Delete("/", h.handleDeleteCarrier)
	})
	h.Router = r
	return h
}

// Prefix returns the mount path of the handler.
func (h *CarrierHandler) Prefix() string { return prefixCarriers }

type carriersResponse struct {
	Data       []*logiflow.Carrier `json:"data"`
	Pagination logiflow.Pagination `json:"pagination"`
}

// handleGetCarriers is the HTTP handler for the GET /api/carriers route.
func (h *CarrierHandler) handleGetCarriers(w http.ResponseWriter, r *http.Request) {
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

	carriers, err := h.carrierService.FindCarriers(ctx, auth.Tenant.ID)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}
	carriers = filterCarriers(carriers, filter)

	page, pagination := paginate(carriers, *opts)
	h.api.Respond(w, r, http.StatusOK, carriersResponse{
		Data:       page,
		Pagination: pagination,
	})
}

// filterCarriers applies search over name, email and document.
func filterCarriers(carriers []*logiflow.Carrier, f *findFilter) []*logiflow.Carrier {
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		filtered := []*logiflow.Carrier{}
		for _, c := range carriers {
			if strings.Contains(strings.ToLower(c.Name), search) ||
				strings.Contains(strings.ToLower(c.Email), search) ||
				strings.Contains(c.Document, search) {
				filtered = append(filtered, c)
			}
		}
		carriers = filtered
	}
	return carriers
}

type postCarrierRequest struct {
	Name         string                        `json:"name"`
	Document     string                        `json:"document"`
	Email        string                        `json:"email"`
	Phone        string                        `json:"phone"`
	Address      *logiflow.Address             `json:"address"`
	ServiceTypes []logiflow.CarrierServiceType `json:"serviceTypes"`
}

func (req *postCarrierRequest) Validate() error {
	var violations []errors.Violation
	if req.Name == "" {
		violations = append(violations, errors.Violation{Field: "name", Msg: "name is required"})
	}
	if req.Document == "" {
		violations = append(violations, errors.Violation{Field: "document", Msg: "document is required"})
	}
	if !validEmail(req.Email) {
		violations = append(violations, errors.Violation{Field: "email", Msg: "email is invalid"})
	}
	if req.Phone == "" {
		violations = append(violations, errors.Violation{Field: "phone", Msg: "phone is required"})
	}
	for _, st := range req.ServiceTypes {
		if !st.Valid() {
			violations = append(violations, errors.Violation{Field: "serviceTypes", Msg: "unknown service type"})
		}
	}
	if req.Address != nil {
		violations = append(violations, validateAddress("address", req.Address)...)
	}
	if len(violations) > 0 {
		return invalidDataError(violations)
	}
	return nil
}

// handlePostCarrier is the HTTP handler for the POST /api/carriers route.
func (h *CarrierHandler) handlePostCarrier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	var req postCarrierRequest
	if err := h.api.DecodeJSON(r.Body, &req); err != nil {
		h.api.Err(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.api.Err(w, r, err)
		return
	}

	carrier := &logiflow.Carrier{
		TenantID:     auth.Tenant.ID,
		Name:         req.Name,
		Document:     req.Document,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		ServiceTypes: req.ServiceTypes,
		IsActive:     true,
	}

	if err := h.carrierService.CreateCarrier(ctx, carrier); err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusCreated, carrier)
}

// handleGetCarrier is the HTTP handler for the GET /api/carriers/{id} route.
func (h *CarrierHandler) handleGetCarrier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	carrier, err := h.carrierService.FindCarrierByID(ctx, chi.URLParam(r, "id"), auth.Tenant.ID)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusOK, carrier)
}

type putCarrierRequest struct {
	logiflow.CarrierUpdate
}

func (req *putCarrierRequest) Validate() error {
	var violations []errors.Violation
	if req.Email != nil && !validEmail(*req.Email) {
		violations = append(violations, errors.Violation{Field: "email", Msg: "email is invalid"})
	}
	if req.ServiceTypes != nil {
		for _, st := range *req.ServiceTypes {
			if !st.Valid() {
				violations = append(violations, errors.Violation{Field: "serviceTypes", Msg: "unknown service type"})
			}
		}
	}
	if req.Address != nil {
		violations = append(violations, validateAddress("address", req.Address)...)
	}
	if len(violations) > 0 {
		return invalidDataError(violations)
	}
	return nil
}

// handlePutCarrier is the HTTP handler for the PUT /api/carriers/{id} route.
func (h *CarrierHandler) handlePutCarrier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	var req putCarrierRequest
	if err := h.api.DecodeJSON(r.Body, &req); err != nil {
		h.api.Err(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.api.Err(w, r, err)
		return
	}

	carrier, err := h.carrierService.UpdateCarrier(ctx, chi.URLParam(r, "id"), auth.Tenant.ID, req.CarrierUpdate)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusOK, carrier)
}

// handleDeleteCarrier is the HTTP handler for the DELETE /api/carriers/{id} route.
func (h *CarrierHandler) handleDeleteCarrier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	if err := h.carrierService.DeleteCarrier(ctx, chi.URLParam(r, "id"), auth.Tenant.ID); err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusNoContent, nil)
}
