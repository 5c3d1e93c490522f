package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nyuchitech/EducatorEval/internal/model"
	"github.com/nyuchitech/EducatorEval/internal/service"
)

// FrameworkHandler handles framework catalog endpoints
type FrameworkHandler struct {
	frameworkSvc *service.FrameworkService
}

// NewFrameworkHandler creates a new framework handler
func NewFrameworkHandler(frameworkSvc *service.FrameworkService) *FrameworkHandler {
	return &FrameworkHandler{frameworkSvc: frameworkSvc}
}

// Create handles POST /v1/frameworks
func (h *FrameworkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var f model.Framework
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, warnings, err := h.frameworkSvc.Create(r.Context(), &f)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"frameworkId": id,
		"warnings":    warnings,
	})
}

// List handles GET /v1/frameworks; ?status=active serves the cached catalog
func (h *FrameworkHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		frameworks []*model.Framework
		err        error
	)
	if r.URL.Query().Get("status") == string(model.FrameworkActive) {
		frameworks, err = h.frameworkSvc.ListActive(r.Context())
	} else {
		frameworks, err = h.frameworkSvc.List(r.Context())
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"frameworks": frameworks})
}

// Get handles GET /v1/frameworks/{frameworkId}
func (h *FrameworkHandler) Get(w http.ResponseWriter, r *http.Request) {
	f, err := h.frameworkSvc.Get(r.Context(), mux.Vars(r)["frameworkId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

// Update handles PATCH /v1/frameworks/{frameworkId} with a partial body
func (h *FrameworkHandler) Update(w http.ResponseWriter, r *http.Request) {
	var upd model.FrameworkUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	f, warnings, err := h.frameworkSvc.Update(r.Context(), mux.Vars(r)["frameworkId"], upd)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"framework": f,
		"warnings":  warnings,
	})
}

// Delete handles DELETE /v1/frameworks/{frameworkId}
func (h *FrameworkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.frameworkSvc.Delete(r.Context(), mux.Vars(r)["frameworkId"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ReplaceQuestions handles PUT /v1/frameworks/{frameworkId}/sections/{sectionId}/questions
func (h *FrameworkHandler) ReplaceQuestions(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var questions []model.Question
	if err := json.NewDecoder(r.Body).Decode(&questions); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	f, err := h.frameworkSvc.ReplaceQuestions(r.Context(), vars["frameworkId"], vars["sectionId"], questions)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

// MoveQuestionRequest is the request body for reordering a question
type MoveQuestionRequest struct {
	Direction model.MoveDirection `json:"direction"`
}

// MoveQuestion handles POST /v1/frameworks/{frameworkId}/sections/{sectionId}/questions/{questionId}/move
func (h *FrameworkHandler) MoveQuestion(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req MoveQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Direction != model.MoveUp && req.Direction != model.MoveDown {
		writeError(w, http.StatusBadRequest, "direction must be up or down")
		return
	}

	f, err := h.frameworkSvc.MoveQuestion(r.Context(), vars["frameworkId"], vars["sectionId"],
		model.QuestionID(vars["questionId"]), req.Direction)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

// Validate handles POST /v1/frameworks/validate: a dry run that returns the
// full validation result, advisory findings included, without saving.
func (h *FrameworkHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var f model.Framework
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, h.frameworkSvc.Validate(&f))
}

// AlignmentOptions handles GET /v1/frameworks/alignment-options
func (h *FrameworkHandler) AlignmentOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"alignments": model.AlignmentOptions()})
}
