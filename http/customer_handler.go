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

const prefixCustomers = "/api/customers"

// CustomerHandler represents an HTTP API handler for customers.
type CustomerHandler struct {
	chi.Router
	api *kithttp.API
	log *zap.Logger

	customerService logiflow.CustomerService
}

// NewCustomerHandler returns a new instance of CustomerHandler.
func NewCustomerHandler(log *zap.Logger, customerService logiflow.CustomerService) *CustomerHandler {
	h := &CustomerHandler{
		api: kithttp.NewAPI(kithttp.WithLog(log)),
		log: log,

		customerService: customerService,
	}

	r := chi.NewRouter()
	r.Get("/", h.handleGetCustomers)
	r.Post("/", h.handlePostCustomer)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.handleGetCustomer)
		r.Put("/", h.handlePutCustomer)
		r.Delete("/", h.handleDeleteCustomer)
	})
	h.Router = r
	return h
}

// Prefix returns the mount path of the handler.
func (h *CustomerHandler) Prefix() string { return prefixCustomers }

type customersResponse struct {
	Data       []*logiflow.Customer `json:"data"`
	Pagination logiflow.Pagination  `json:"pagination"`
}

// handleGetCustomers is the HTTP handler for the GET /api/customers route.
func (h *CustomerHandler) handleGetCustomers(w http.ResponseWriter, r *http.Request) {
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

	customers, err := h.customerService.FindCustomers(ctx, auth.Tenant.ID)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}
	customers = filterCustomers(customers, filter)

	page, pagination := paginate(customers, *opts)
	h.api.Respond(w, r, http.StatusOK, customersResponse{
		Data:       page,
		Pagination: pagination,
	})
}

// filterCustomers applies search over name, email and document.
func filterCustomers(customers []*logiflow.Customer, f *findFilter) []*logiflow.Customer {
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		filtered := []*logiflow.Customer{}
		for _, c := range customers {
			if strings.Contains(strings.ToLower(c.Name), search) ||
				strings.Contains(strings.ToLower(c.Email), search) ||
				(c.Document != "" && strings.Contains(c.Document, search)) {
				filtered = append(filtered, c)
			}
		}
		customers = filtered
	}
	return customers
}

type postCustomerRequest struct {
	Name     string            `json:"name"`
	Email    string            `json:"email"`
	Phone    string            `json:"phone"`
	Document string            `json:"document"`
	Address  *logiflow.Address `json:"address"`
}

func (req *postCustomerRequest) Validate() error {
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

// handlePostCustomer is the HTTP handler for the POST /api/customers route.
func (h *CustomerHandler) handlePostCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	var req postCustomerRequest
	if err := h.api.DecodeJSON(r.Body, &req); err != nil {
		h.api.Err(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.api.Err(w, r, err)
		return
	}

	customer := &logiflow.Customer{
		TenantID: auth.Tenant.ID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Document: req.Document,
		Address:  req.Address,
		IsActive: true,
	}

	if err := h.customerService.CreateCustomer(ctx, customer); err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusCreated, customer)
}

// handleGetCustomer is the HTTP handler for the GET /api/customers/{id} route.
func (h *CustomerHandler) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	customer, err := h.customerService.FindCustomerByID(ctx, chi.URLParam(r, "id"), auth.Tenant.ID)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusOK, customer)
}

type putCustomerRequest struct {
	logiflow.CustomerUpdate
}

func (req *putCustomerRequest) Validate() error {
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

// handlePutCustomer is the HTTP handler for the PUT /api/customers/{id} route.
func (h *CustomerHandler) handlePutCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	var req putCustomerRequest
	if err := h.api.DecodeJSON(r.Body, &req); err != nil {
		h.api.Err(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.api.Err(w, r, err)
		return
	}

	customer, err := h.customerService.UpdateCustomer(ctx, chi.URLParam(r, "id"), auth.Tenant.ID, req.CustomerUpdate)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusOK, customer)
}

// handleDeleteCustomer is the HTTP handler for the DELETE /api/customers/{id} route.
func (h *CustomerHandler) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	if err := h.customerService.DeleteCustomer(ctx, chi.URLParam(r, "id"), auth.Tenant.ID); err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusNoContent, nil)
}
