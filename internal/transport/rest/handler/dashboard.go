package handler

import (
	"net/http"

	"github.com/nyuchitech/EducatorEval/internal/service"
)

// DashboardHandler serves aggregate statistics
type DashboardHandler struct {
	observationSvc *service.ObservationService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(observationSvc *service.ObservationService) *DashboardHandler {
	return &DashboardHandler{observationSvc: observationSvc}
}

// Stats handles GET /v1/dashboard/stats
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.observationSvc.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Progress handles GET /v1/dashboard/progress
func (h *DashboardHandler) Progress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.observationSvc.Progress(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

// Summary handles GET /v1/dashboard/summary
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.observationSvc.Dashboard(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
