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

const prefixRoutes = "/api/routes"

// RouteHandler represents an HTTP API handler for delivery routes.
type RouteHandler struct {
	chi.Router
	api *kithttp.API
	log *zap.Logger

	routeService logiflow.RouteService
}

// NewRouteHandler returns a new instance of RouteHandler.
func NewRouteHandler(log *zap.Logger, routeService logiflow.RouteService) *RouteHandler {
	h := &RouteHandler{
		api: kithttp.NewAPI(kithttp.WithLog(log)),
		log: log,

		routeService: routeService,
	}

	r := chi.NewRouter()
	r.Get("/", h.handleGetRoutes)
	r.Post("/", h.handlePostRoute)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.handleGetRoute)
		r.Put("/", h.handlePutRoute)
		r.Delete("/", h.handleDeleteRoute)
	})
	h.Router = r
	return h
}

// Prefix returns the mount path of the handler.
func (h *RouteHandler) Prefix() string { return prefixRoutes }

type routesResponse struct {
	Data       []*logiflow.Route   `json:"data"`
	Pagination logiflow.Pagination `json:"pagination"`
}

// handleGetRoutes is the HTTP handler for the GET /api/routes route.
func (h *RouteHandler) handleGetRoutes(w http.ResponseWriter, r *http.Request) {
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

	routes, err := h.routeService.FindRoutes(ctx, auth.Tenant.ID)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}
	routes = filterRoutes(routes, filter)

	page, pagination := paginate(routes, *opts)
	h.api.Respond(w, r, http.StatusOK, routesResponse{
		Data:       page,
		Pagination: pagination,
	})
}

// filterRoutes applies status, then search over the route name.
func filterRoutes(routes []*logiflow.Route, f *findFilter) []*logiflow.Route {
	if f.Status != "" {
		filtered := []*logiflow.Route{}
		for _, rt := range routes {
			if string(rt.Status) == f.Status {
				filtered = append(filtered, rt)
			}
		}
		routes = filtered
	}
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		filtered := []*logiflow.Route{}
		for _, rt := range routes {
			if strings.Contains(strings.ToLower(rt.Name), search) {
				filtered = append(filtered, rt)
			}
		}
		routes = filtered
	}
	return routes
}

type postRouteRequest struct {
	Name          string           `json:"name"`
	CarrierID     string           `json:"carrierId"`
	VehicleID     string           `json:"vehicleId"`
	DriverID      string           `json:"driverId"`
	Deliveries    []string         `json:"deliveries"`
	StartLocation logiflow.Address `json:"startLocation"`
	EndLocation   logiflow.Address `json:"endLocation"`
}

func (req *postRouteRequest) Validate() error {
	var violations []errors.Violation
	if req.Name == "" {
		violations = append(violations, errors.Violation{Field: "name", Msg: "name is required"})
	}
	if req.CarrierID == "" {
		violations = append(violations, errors.Violation{Field: "carrierId", Msg: "carrier id is required"})
	}
	if len(req.Deliveries) == 0 {
		violations = append(violations, errors.Violation{Field: "deliveries", Msg: "at least one delivery is required"})
	}
	violations = append(violations, validateAddress("startLocation", &req.StartLocation)...)
	violations = append(violations, validateAddress("endLocation", &req.EndLocation)...)
	if len(violations) > 0 {
		return invalidDataError(violations)
	}
	return nil
}

// handlePostRoute is the HTTP handler for the POST /api/routes route.
func (h *RouteHandler) handlePostRoute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	var req postRouteRequest
	if err := h.api.DecodeJSON(r.Body, &req); err != nil {
		h.api.Err(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.api.Err(w, r, err)
		return
	}

	route := &logiflow.Route{
		TenantID:      auth.Tenant.ID,
		Name:          req.Name,
		CarrierID:     req.CarrierID,
		VehicleID:     req.VehicleID,
		DriverID:      req.DriverID,
		Deliveries:    req.Deliveries,
		StartLocation: req.StartLocation,
		EndLocation:   req.EndLocation,
		Status:        logiflow.RouteStatusPlanned,
	}

	if err := h.routeService.CreateRoute(ctx, route); err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusCreated, route)
}

// handleGetRoute is the HTTP handler for the GET /api/routes/{id} route.
func (h *RouteHandler) handleGetRoute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	route, err := h.routeService.FindRouteByID(ctx, chi.URLParam(r, "id"), auth.Tenant.ID)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusOK, route)
}

type putRouteRequest struct {
	logiflow.RouteUpdate
}

func (req *putRouteRequest) Validate() error {
	var violations []errors.Violation
	if req.Status != nil && !req.Status.Valid() {
		violations = append(violations, errors.Violation{Field: "status", Msg: "unknown route status"})
	}
	if req.Deliveries != nil && len(*req.Deliveries) == 0 {
		violations = append(violations, errors.Violation{Field: "deliveries", Msg: "at least one delivery is required"})
	}
	if len(violations) > 0 {
		return invalidDataError(violations)
	}
	return nil
}

// handlePutRoute is the HTTP handler for the PUT /api/routes/{id} route.
func (h *RouteHandler) handlePutRoute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	var req putRouteRequest
	if err := h.api.DecodeJSON(r.Body, &req); err != nil {
		h.api.Err(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.api.Err(w, r, err)
		return
	}

	route, err := h.routeService.UpdateRoute(ctx, chi.URLParam(r, "id"), auth.Tenant.ID, req.RouteUpdate)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusOK, route)
}

// handleDeleteRoute is the HTTP handler for the DELETE /api/routes/{id} route.
func (h *RouteHandler) handleDeleteRoute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	if err := h.routeService.DeleteRoute(ctx, chi.URLParam(r, "id"), auth.Tenant.ID); err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusNoContent, nil)
}
