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

const prefixProducts = "/api/products"

// ProductHandler represents an HTTP API handler for products.
type ProductHandler struct {
	chi.Router
	api *kithttp.API
	log *zap.Logger

	productService logiflow.ProductService
}

// NewProductHandler returns a new instance of ProductHandler.
func NewProductHandler(log *zap.Logger, productService logiflow.ProductService) *ProductHandler {
	h := &ProductHandler{
		api: kithttp.NewAPI(kithttp.WithLog(log)),
		log: log,

		productService: productService,
	}

	r := chi.NewRouter()
	r.Get("/", h.handleGetProducts)
	r.Post("/", h.handlePostProduct)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.handleGetProduct)
		r.Put("/", h.handlePutProduct)
		r.Delete("/", h.handleDeleteProduct)
	})
	h.Router = r
	return h
}

// Prefix returns the mount path of the handler.
func (h *ProductHandler) Prefix() string { return prefixProducts }

type productsResponse struct {
	Data       []*logiflow.Product `json:"data"`
	Pagination logiflow.Pagination `json:"pagination"`
}

// handleGetProducts is the HTTP handler for the GET /api/products route.
func (h *ProductHandler) handleGetProducts(w http.ResponseWriter, r *http.Request) {
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

	products, err := h.productService.FindProducts(ctx, auth.Tenant.ID)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}
	products = filterProducts(products, filter)

	page, pagination := paginate(products, *opts)
	h.api.Respond(w, r, http.StatusOK, productsResponse{
		Data:       page,
		Pagination: pagination,
	})
}

// filterProducts applies search over name, sku and description.
func filterProducts(products []*logiflow.Product, f *findFilter) []*logiflow.Product {
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		filtered := []*logiflow.Product{}
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), search) ||
				strings.Contains(strings.ToLower(p.SKU), search) ||
				(p.Description != "" && strings.Contains(strings.ToLower(p.Description), search)) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}
	return products
}

type postProductRequest struct {
	SKU         string               `json:"sku"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Category    string               `json:"category"`
	Unit        logiflow.ProductUnit `json:"unit"`
	Weight      float64              `json:"weight"`
	Dimensions  *logiflow.Dimensions `json:"dimensions"`
	Price       float64              `json:"price"`
}

func (req *postProductRequest) Validate() error {
	var violations []errors.Violation
	if req.SKU == "" {
		violations = append(violations, errors.Violation{Field: "sku", Msg: "sku is required"})
	}
	if req.Name == "" {
		violations = append(violations, errors.Violation{Field: "name", Msg: "name is required"})
	}
	if !req.Unit.Valid() {
		violations = append(violations, errors.Violation{Field: "unit", Msg: "unknown product unit"})
	}
	if req.Weight < 0 {
		violations = append(violations, errors.Violation{Field: "weight", Msg: "weight must be positive"})
	}
	if d := req.Dimensions; d != nil && (d.Length <= 0 || d.Width <= 0 || d.Height <= 0) {
		violations = append(violations, errors.Violation{Field: "dimensions", Msg: "dimensions must be positive"})
	}
	if req.Price < 0 {
		violations = append(violations, errors.Violation{Field: "price", Msg: "price must not be negative"})
	}
	if len(violations) > 0 {
		return invalidDataError(violations)
	}
	return nil
}

// handlePostProduct is the HTTP handler for the POST /api/products route.
func (h *ProductHandler) handlePostProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	var req postProductRequest
	if err := h.api.DecodeJSON(r.Body, &req); err != nil {
		h.api.Err(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.api.Err(w, r, err)
		return
	}

	product := &logiflow.Product{
		TenantID:    auth.Tenant.ID,
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Unit:        req.Unit,
		Weight:      req.Weight,
		Dimensions:  req.Dimensions,
		Price:       req.Price,
		IsActive:    true,
	}

	if err := h.productService.CreateProduct(ctx, product); err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusCreated, product)
}

// handleGetProduct is the HTTP handler for the GET /api/products/{id} route.
func (h *ProductHandler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	product, err := h.productService.FindProductByID(ctx, chi.URLParam(r, "id"), auth.Tenant.ID)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusOK, product)
}

type putProductRequest struct {
	logiflow.ProductUpdate
}

func (req *putProductRequest) Validate() error {
	var violations []errors.Violation
	if req.Unit != nil && !req.Unit.Valid() {
		violations = append(violations, errors.Violation{Field: "unit", Msg: "unknown product unit"})
	}
	if req.Price != nil && *req.Price < 0 {
		violations = append(violations, errors.Violation{Field: "price", Msg: "price must not be negative"})
	}
	if len(violations) > 0 {
		return invalidDataError(violations)
	}
	return nil
}

// handlePutProduct is the HTTP handler for the PUT /api/products/{id} route.
func (h *ProductHandler) handlePutProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	var req putProductRequest
	if err := h.api.DecodeJSON(r.Body, &req); err != nil {
		h.api.Err(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.api.Err(w, r, err)
		return
	}

	product, err := h.productService.UpdateProduct(ctx, chi.URLParam(r, "id"), auth.Tenant.ID, req.ProductUpdate)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusOK, product)
}

// handleDeleteProduct is the HTTP handler for the DELETE /api/products/{id} route.
func (h *ProductHandler) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	if err := h.productService.DeleteProduct(ctx, chi.URLParam(r, "id"), auth.Tenant.ID); err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusNoContent, nil)
}
