package handler

import (
	"net/http"

	"github.com/nyuchitech/EducatorEval/internal/model"
	"github.com/nyuchitech/EducatorEval/internal/service"
	"github.com/nyuchitech/EducatorEval/internal/validation"
)

// ExportHandler serves CSV exports, import templates, and bulk imports
type ExportHandler struct {
	exportSvc      *service.ExportService
	observationSvc *service.ObservationService
	teacherSvc     *service.TeacherService
	frameworkSvc   *service.FrameworkService
}

// NewExportHandler creates a new export handler
func NewExportHandler(
	exportSvc *service.ExportService,
	observationSvc *service.ObservationService,
	teacherSvc *service.TeacherService,
	frameworkSvc *service.FrameworkService,
) *ExportHandler {
	return &ExportHandler{
		exportSvc:      exportSvc,
		observationSvc: observationSvc,
		teacherSvc:     teacherSvc,
		frameworkSvc:   frameworkSvc,
	}
}

// Observations handles GET /v1/export/observations.csv; ?detailed=true emits
// one row per response instead of one per observation.
func (h *ExportHandler) Observations(w http.ResponseWriter, r *http.Request) {
	observations, err := h.observationSvc.Search(r.Context(), "", searchFiltersFromQuery(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var data []byte
	if r.URL.Query().Get("detailed") == "true" {
		data, err = h.exportSvc.DetailedObservationsCSV(observations)
	} else {
		data, err = h.exportSvc.ObservationsCSV(observations)
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeCSV(w, "observations.csv", data)
}

// Teachers handles GET /v1/export/teachers.csv
func (h *ExportHandler) Teachers(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.teacherSvc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	data, err := h.exportSvc.TeachersCSV(teachers)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeCSV(w, "teachers.csv", data)
}

// Frameworks handles GET /v1/export/frameworks.csv
func (h *ExportHandler) Frameworks(w http.ResponseWriter, r *http.Request) {
	frameworks, err := h.frameworkSvc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	data, err := h.exportSvc.FrameworksCSV(frameworks)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeCSV(w, "frameworks.csv", data)
}

// TeacherTemplate handles GET /v1/templates/teachers.csv
func (h *ExportHandler) TeacherTemplate(w http.ResponseWriter, r *http.Request) {
	data, err := h.exportSvc.TeacherTemplateCSV()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeCSV(w, "teachers-template.csv", data)
}

// ImportTeachers handles POST /v1/import/teachers with a CSV body. Valid rows
// are stored; row-level failures, parse or store, come back as field errors
// alongside the count of imported records.
func (h *ExportHandler) ImportTeachers(w http.ResponseWriter, r *http.Request) {
	teachers, fieldErrs, err := h.exportSvc.ParseTeachersCSV(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	imported := 0
	for _, t := range teachers {
		if _, err := h.teacherSvc.Create(r.Context(), t); err != nil {
			fieldErrs = append(fieldErrs, validation.Error{Field: t.Email, Message: err.Error()})
			continue
		}
		imported++
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"imported": imported,
		"errors":   fieldErrs,
	})
}

func searchFiltersFromQuery(r *http.Request) model.SearchFilters {
	var filters model.SearchFilters
	for _, s := range r.URL.Query()["status"] {
		filters.Status = append(filters.Status, model.ObservationStatus(s))
	}
	return filters
}

func writeCSV(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
