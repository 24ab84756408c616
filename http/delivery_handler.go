package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"go.uber.org/zap"

	"github.com/logiflow/logiflow"
	icontext "github.com/logiflow/logiflow/context"
	"github.com/logiflow/logiflow/kit/platform/errors"
	kithttp "github.com/logiflow/logiflow/kit/transport/http"
)

const prefixDeliveries = "/api/deliveries"

// DeliveryHandler represents an HTTP API handler for deliveries.
type DeliveryHandler struct {
	chi.Router
	api *kithttp.API
	log *zap.Logger

	deliveryService logiflow.DeliveryService
}

// NewDeliveryHandler returns a new instance of DeliveryHandler.
func NewDeliveryHandler(log *zap.Logger, deliveryService logiflow.DeliveryService) *DeliveryHandler {
	h := &DeliveryHandler{
		api: kithttp.NewAPI(kithttp.WithLog(log)),
		log: log,

		deliveryService: deliveryService,
	}

	r := chi.NewRouter()
	r.Get("/", h.handleGetDeliveries)
	r.Post("/", h.handlePostDelivery)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.handleGetDelivery)
		r.Put("/", h.handlePutDelivery)
		r.Delete("/", h.handleDeleteDelivery)
		r.Post("/events", h.handlePostDeliveryEvent)
	})
	h.Router = r
	return h
}

// Prefix returns the mount path of the handler.
func (h *DeliveryHandler) Prefix() string { return prefixDeliveries }

type deliveriesResponse struct {
	Data       []*logiflow.Delivery `json:"data"`
	Pagination logiflow.Pagination  `json:"pagination"`
}

// handleGetDeliveries is the HTTP handler for the GET /api/deliveries route.
func (h *DeliveryHandler) handleGetDeliveries(w http.ResponseWriter, r *http.Request) {
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

	deliveries, err := h.deliveryService.FindDeliveries(ctx, auth.Tenant.ID)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}
	deliveries = filterDeliveries(deliveries, filter)

	page, pagination := paginate(deliveries, *opts)
	h.api.Respond(w, r, http.StatusOK, deliveriesResponse{
		Data:       page,
		Pagination: pagination,
	})
}

// filterDeliveries applies status, then search, then date range.
func filterDeliveries(deliveries []*logiflow.Delivery, f *findFilter) []*logiflow.Delivery {
	if f.Status != "" {
		filtered := []*logiflow.Delivery{}
		for _, d := range deliveries {
			if string(d.Status) == f.Status {
				filtered = append(filtered, d)
			}
		}
		deliveries = filtered
	}
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		filtered := []*logiflow.Delivery{}
		for _, d := range deliveries {
			if strings.Contains(strings.ToLower(d.TrackingNumber), search) ||
				strings.Contains(strings.ToLower(d.OrderID), search) {
				filtered = append(filtered, d)
			}
		}
		deliveries = filtered
	}
	if f.DateFrom != nil || f.DateTo != nil {
		filtered := []*logiflow.Delivery{}
		for _, d := range deliveries {
			if f.inDateRange(d.CreatedAt) {
				filtered = append(filtered, d)
			}
		}
		deliveries = filtered
	}
	return deliveries
}

type postDeliveryRequest struct {
	OrderID           string           `json:"orderId"`
	CarrierID         string           `json:"carrierId"`
	TrackingNumber    string           `json:"trackingNumber"`
	Origin            logiflow.Address `json:"origin"`
	Destination       logiflow.Address `json:"destination"`
	EstimatedDelivery *time.Time       `json:"estimatedDelivery"`
}

func (req *postDeliveryRequest) Validate() error {
	var violations []errors.Violation
	if req.OrderID == "" {
		violations = append(violations, errors.Violation{Field: "orderId", Msg: "order id is required"})
	}
	if req.CarrierID == "" {
		violations = append(violations, errors.Violation{Field: "carrierId", Msg: "carrier id is required"})
	}
	if req.TrackingNumber == "" {
		violations = append(violations, errors.Violation{Field: "trackingNumber", Msg: "tracking number is required"})
	}
	violations = append(violations, validateAddress("origin", &req.Origin)...)
	violations = append(violations, validateAddress("destination", &req.Destination)...)
	if len(violations) > 0 {
		return invalidDataError(violations)
	}
	return nil
}

// handlePostDelivery is the HTTP handler for the POST /api/deliveries route.
func (h *DeliveryHandler) handlePostDelivery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	var req postDeliveryRequest
	if err := h.api.DecodeJSON(r.Body, &req); err != nil {
		h.api.Err(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.api.Err(w, r, err)
		return
	}

	delivery := &logiflow.Delivery{
		TenantID:          auth.Tenant.ID,
		OrderID:           req.OrderID,
		CarrierID:         req.CarrierID,
		TrackingNumber:    req.TrackingNumber,
		Status:            logiflow.DeliveryStatusPending,
		EstimatedDelivery: req.EstimatedDelivery,
		Origin:            req.Origin,
		Destination:       req.Destination,
		Events: []logiflow.DeliveryEvent{{
			Type:        logiflow.DeliveryEventCreated,
			Description: "Delivery created",
			UserID:      auth.User.ID,
		}},
	}

	if err := h.deliveryService.CreateDelivery(ctx, delivery); err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusCreated, delivery)
}

// handleGetDelivery is the HTTP handler for the GET /api/deliveries/{id} route.
func (h *DeliveryHandler) handleGetDelivery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	delivery, err := h.deliveryService.FindDeliveryByID(ctx, chi.URLParam(r, "id"), auth.Tenant.ID)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusOK, delivery)
}

type putDeliveryRequest struct {
	logiflow.DeliveryUpdate
}

func (req *putDeliveryRequest) Validate() error {
	var violations []errors.Violation
	if req.Status != nil && !req.Status.Valid() {
		violations = append(violations, errors.Violation{Field: "status", Msg: "unknown delivery status"})
	}
	if len(violations) > 0 {
		return invalidDataError(violations)
	}
	return nil
}

// handlePutDelivery is the HTTP handler for the PUT /api/deliveries/{id} route.
func (h *DeliveryHandler) handlePutDelivery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	var req putDeliveryRequest
	if err := h.api.DecodeJSON(r.Body, &req); err != nil {
		h.api.Err(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.api.Err(w, r, err)
		return
	}

	delivery, err := h.deliveryService.UpdateDelivery(ctx, chi.URLParam(r, "id"), auth.Tenant.ID, req.DeliveryUpdate)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusOK, delivery)
}

type postDeliveryEventRequest struct {
	Type        logiflow.DeliveryEventType `json:"type"`
	Description string                     `json:"description"`
	Location    string                     `json:"location"`
}

func (req *postDeliveryEventRequest) Validate() error {
	var violations []errors.Violation
	if !req.Type.Valid() {
		violations = append(violations, errors.Violation{Field: "type", Msg: "unknown event type"})
	}
	if req.Description == "" {
		violations = append(violations, errors.Violation{Field: "description", Msg: "description is required"})
	}
	if len(violations) > 0 {
		return invalidDataError(violations)
	}
	return nil
}

// handlePostDeliveryEvent is the HTTP handler for the
// POST /api/deliveries/{id}/events route.
func (h *DeliveryHandler) handlePostDeliveryEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	var req postDeliveryEventRequest
	if err := h.api.DecodeJSON(r.Body, &req); err != nil {
		h.api.Err(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.api.Err(w, r, err)
		return
	}

	delivery, err := h.deliveryService.AddDeliveryEvent(ctx, chi.URLParam(r, "id"), auth.Tenant.ID, logiflow.DeliveryEvent{
		Type:        req.Type,
		Description: req.Description,
		Location:    req.Location,
		UserID:      auth.User.ID,
	})
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusCreated, delivery)
}

// handleDeleteDelivery is the HTTP handler for the DELETE /api/deliveries/{id} route.
func (h *DeliveryHandler) handleDeleteDelivery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	if err := h.deliveryService.DeleteDelivery(ctx, chi.URLParam(r, "id"), auth.Tenant.ID); err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusNoContent, nil)
}
