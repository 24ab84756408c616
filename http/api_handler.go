// Package http exposes the logistics API over HTTP JSON endpoints.
package http

import (
	"net/http"

	"github.com/NYTimes/gziphandler"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/logiflow/logiflow"
	"github.com/logiflow/logiflow/session"

	kithttp "github.com/logiflow/logiflow/kit/transport/http"
)

// APIBackend is all services and associated parameters required to construct
// an APIHandler.
type APIBackend struct {
	Logger *zap.Logger
	logiflow.HTTPErrorHandler

	PrometheusRegistry *prometheus.Registry

	TenantService    logiflow.TenantService
	UserService      logiflow.UserService
	CustomerService  logiflow.CustomerService
	SupplierService  logiflow.SupplierService
	ProductService   logiflow.ProductService
	WarehouseService logiflow.WarehouseService
	CarrierService   logiflow.CarrierService
	InventoryService logiflow.InventoryService
	OrderService     logiflow.OrderService
	DeliveryService  logiflow.DeliveryService
	RouteService     logiflow.RouteService
	ReportService    logiflow.ReportService
	SessionService   logiflow.SessionService
}

// APIHandler is a collection of all the service handlers.
type APIHandler struct {
	chi.Router
}

// ResourceHandler is an HTTP handler for a resource. The prefix is the
// route it is mounted under.
type ResourceHandler interface {
	Prefix() string
	http.Handler
}

// NewAPIHandler constructs all api handlers under one router.
func NewAPIHandler(b *APIBackend) *APIHandler {
	h := &APIHandler{}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		middleware.RequestID,
		middleware.RealIP,
		kithttp.SetCORS,
	)
	if b.PrometheusRegistry != nil {
		r.Use(apiMetrics(b.PrometheusRegistry))
	}
	r.Use(func(next http.Handler) http.Handler {
		return gziphandler.GzipHandler(next)
	})

	handlers := []ResourceHandler{
		session.NewSessionHandler(b.Logger.With(zap.String("handler", "session")), b.SessionService),
		NewOrderHandler(b.Logger.With(zap.String("handler", "order")), b.OrderService),
		NewDeliveryHandler(b.Logger.With(zap.String("handler", "delivery")), b.DeliveryService),
		NewCustomerHandler(b.Logger.With(zap.String("handler", "customer")), b.CustomerService),
		NewSupplierHandler(b.Logger.With(zap.String("handler", "supplier")), b.SupplierService),
		NewProductHandler(b.Logger.With(zap.String("handler", "product")), b.ProductService),
		NewWarehouseHandler(b.Logger.With(zap.String("handler", "warehouse")), b.WarehouseService),
		NewCarrierHandler(b.Logger.With(zap.String("handler", "carrier")), b.CarrierService),
		NewInventoryHandler(b.Logger.With(zap.String("handler", "inventory")), b.InventoryService),
		NewRouteHandler(b.Logger.With(zap.String("handler", "route")), b.RouteService),
		NewReportHandler(b.Logger.With(zap.String("handler", "report")), b.ReportService),
	}
	for _, handler := range handlers {
		r.Mount(handler.Prefix(), handler)
	}

	r.Get("/health", HealthHandler)
	if b.PrometheusRegistry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(b.PrometheusRegistry, promhttp.HandlerOpts{}))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		b.HTTPErrorHandler.HandleHTTPError(r.Context(), notFoundRouteError(r.URL.Path), w)
	})

	h.Router = r
	return h
}

// apiMetrics registers the request counter and duration histogram and wraps
// handlers with the recording middleware.
func apiMetrics(reg *prometheus.Registry) kithttp.Middleware {
	reqMetric := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "http",
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "Number of http requests received",
	}, []string{"handler", "method", "status", "response_code"})

	durMetric := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "http",
		Subsystem: "api",
		Name:      "request_duration_seconds",
		Help:      "Time taken to respond to HTTP request",
	}, []string{"handler", "method", "status", "response_code"})

	reg.MustRegister(reqMetric, durMetric)
	return kithttp.Metrics("api", reqMetric, durMetric)
}
