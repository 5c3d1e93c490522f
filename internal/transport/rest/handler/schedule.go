package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/nyuchitech/EducatorEval/internal/model"
	"github.com/nyuchitech/EducatorEval/internal/service"
	"github.com/nyuchitech/EducatorEval/internal/transport/rest/middleware"
)

// ScheduleHandler handles planned-visit endpoints
type ScheduleHandler struct {
	scheduleSvc *service.ScheduleService
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleSvc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// Create handles POST /v1/schedules
func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var sched model.ScheduledObservation
	if err := json.NewDecoder(r.Body).Decode(&sched); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if sched.ObserverID == "" {
		sched.ObserverID = middleware.GetUserID(r.Context())
	}

	id, err := h.scheduleSvc.Create(r.Context(), &sched)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"scheduleId": id})
}

// List handles GET /v1/schedules?date=2025-08-19 or ?observerId=...
func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		schedules []*model.ScheduledObservation
		err       error
	)
	switch {
	case q.Get("date") != "":
		var day time.Time
		day, err = time.Parse("2006-01-02", q.Get("date"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		schedules, err = h.scheduleSvc.GetByDate(r.Context(), day)
	case q.Get("observerId") != "":
		schedules, err = h.scheduleSvc.GetByObserver(r.Context(), q.Get("observerId"))
	default:
		schedules, err = h.scheduleSvc.GetByObserver(r.Context(), middleware.GetUserID(r.Context()))
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"schedules": schedules})
}

// Get handles GET /v1/schedules/{scheduleId}
func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	sched, err := h.scheduleSvc.Get(r.Context(), mux.Vars(r)["scheduleId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sched)
}

// Confirm handles POST /v1/schedules/{scheduleId}/confirm
func (h *ScheduleHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.scheduleSvc.Confirm)
}

// Cancel handles POST /v1/schedules/{scheduleId}/cancel
func (h *ScheduleHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.scheduleSvc.Cancel)
}

// Complete handles POST /v1/schedules/{scheduleId}/complete
func (h *ScheduleHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.scheduleSvc.Complete)
}

func (h *ScheduleHandler) setStatus(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id string) error) {
	id := mux.Vars(r)["scheduleId"]
	if err := op(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	sched, err := h.scheduleSvc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sched)
}

// Delete handles DELETE /v1/schedules/{scheduleId}
func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleSvc.Delete(r.Context(), mux.Vars(r)["scheduleId"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
