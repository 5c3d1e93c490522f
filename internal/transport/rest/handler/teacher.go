package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nyuchitech/EducatorEval/internal/model"
	"github.com/nyuchitech/EducatorEval/internal/service"
)

// TeacherHandler handles roster endpoints
type TeacherHandler struct {
	teacherSvc *service.TeacherService
}

// NewTeacherHandler creates a new teacher handler
func NewTeacherHandler(teacherSvc *service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teacherSvc: teacherSvc}
}

// Create handles POST /v1/teachers
func (h *TeacherHandler) Create(w http.ResponseWriter, r *http.Request) {
	var t model.Teacher
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.teacherSvc.Create(r.Context(), &t)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"teacherId": id})
}

// List handles GET /v1/teachers
func (h *TeacherHandler) List(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.teacherSvc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"teachers": teachers})
}

// Get handles GET /v1/teachers/{teacherId}
func (h *TeacherHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.teacherSvc.Get(r.Context(), mux.Vars(r)["teacherId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Update handles PUT /v1/teachers/{teacherId}
func (h *TeacherHandler) Update(w http.ResponseWriter, r *http.Request) {
	var t model.Teacher
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	t.ID = mux.Vars(r)["teacherId"]

	if err := h.teacherSvc.Update(r.Context(), &t); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Delete handles DELETE /v1/teachers/{teacherId}
func (h *TeacherHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.teacherSvc.Delete(r.Context(), mux.Vars(r)["teacherId"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
