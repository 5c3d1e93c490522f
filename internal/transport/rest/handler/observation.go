package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nyuchitech/EducatorEval/internal/model"
	"github.com/nyuchitech/EducatorEval/internal/service"
	"github.com/nyuchitech/EducatorEval/internal/transport/rest/middleware"
)

// ObservationHandler handles observation record endpoints
type ObservationHandler struct {
	observationSvc *service.ObservationService
}

// NewObservationHandler creates a new observation handler
func NewObservationHandler(observationSvc *service.ObservationService) *ObservationHandler {
	return &ObservationHandler{observationSvc: observationSvc}
}

// Create handles POST /v1/observations
func (h *ObservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var obs model.Observation
	if err := json.NewDecoder(r.Body).Decode(&obs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// The observer identity comes from the token, not the body.
	if obs.ObserverID == "" {
		obs.ObserverID = middleware.GetUserID(r.Context())
	}

	id, err := h.observationSvc.Create(r.Context(), &obs)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"observationId": id})
}

// Get handles GET /v1/observations/{observationId}
func (h *ObservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	obs, err := h.observationSvc.Get(r.Context(), mux.Vars(r)["observationId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, obs)
}

// Update handles PATCH /v1/observations/{observationId} with a partial body
func (h *ObservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var upd model.ObservationUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	obs, err := h.observationSvc.Update(r.Context(), mux.Vars(r)["observationId"], upd)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, obs)
}

// List handles GET /v1/observations?observerId=|teacherId=; with neither
// param it returns the caller's own observations.
func (h *ObservationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		observations []*model.Observation
		err          error
	)
	switch {
	case q.Get("teacherId") != "":
		observations, err = h.observationSvc.GetByTeacher(r.Context(), q.Get("teacherId"))
	case q.Get("observerId") != "":
		observations, err = h.observationSvc.GetByObserver(r.Context(), q.Get("observerId"))
	default:
		observations, err = h.observationSvc.GetByObserver(r.Context(), middleware.GetUserID(r.Context()))
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"observations": observations})
}

// Search handles GET /v1/observations/search?q=...&status=draft&status=completed
func (h *ObservationHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filters model.SearchFilters
	for _, s := range q["status"] {
		filters.Status = append(filters.Status, model.ObservationStatus(s))
	}

	observations, err := h.observationSvc.Search(r.Context(), q.Get("q"), filters)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"observations": observations})
}
