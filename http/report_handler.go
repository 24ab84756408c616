package http

import (
	"net/http"

	"github.com/go-chi/chi"
	"go.uber.org/zap"

	"github.com/logiflow/logiflow"
	icontext "github.com/logiflow/logiflow/context"
	kithttp "github.com/logiflow/logiflow/kit/transport/http"
)

const prefixReports = "/api/reports"

// ReportHandler represents an HTTP API handler for dashboard reports.
type ReportHandler struct {
	chi.Router
	api *kithttp.API
	log *zap.Logger

	reportService logiflow.ReportService
}

// NewReportHandler returns a new instance of ReportHandler.
func NewReportHandler(log *zap.Logger, reportService logiflow.ReportService) *ReportHandler {
	h := &ReportHandler{
		api: kithttp.NewAPI(kithttp.WithLog(log)),
		log: log,

		reportService: reportService,
	}

	r := chi.NewRouter()
	r.Get("/metrics", h.handleGetMetrics)
	h.Router = r
	return h
}

// Prefix returns the mount path of the handler.
func (h *ReportHandler) Prefix() string { return prefixReports }

// handleGetMetrics is the HTTP handler for the GET /api/reports/metrics
// route. The dateFrom and dateTo parameters bound the reporting period; an
// absent bound is open.
func (h *ReportHandler) handleGetMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	auth, err := icontext.GetAuthorizer(ctx)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	filter, err := decodeFindFilter(ctx, r)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	period := logiflow.Period{}
	if filter.DateFrom != nil {
		period.Start = *filter.DateFrom
	}
	if filter.DateTo != nil {
		period.End = *filter.DateTo
	}

	metrics, err := h.reportService.Metrics(ctx, auth.Tenant.ID, period)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusOK, metrics)
}
