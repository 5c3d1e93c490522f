package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/nyuchitech/EducatorEval/internal/model"
	"github.com/nyuchitech/EducatorEval/internal/validation"
)

// subjectSeparator joins multi-valued cells in CSV exports and templates
const subjectSeparator = "; "

var teacherImportColumns = []string{"Name", "Email", "Department", "Grade", "Subjects"}

// ExportService converts domain records to and from CSV. Quoted-field
// escaping follows RFC 4180 (doubled quotes), matching the templates the
// system hands out, so exports re-import cleanly.
type ExportService struct{}

// NewExportService creates a new export service
func NewExportService() *ExportService {
	return &ExportService{}
}

// ObservationsCSV renders one summary row per observation
func (s *ExportService) ObservationsCSV(observations []*model.Observation) ([]byte, error) {
	rows := [][]string{{
		"Observation ID", "Date", "Teacher Name", "Observer Name",
		"Duration (minutes)", "Status", "CRP Evidence Rate", "Total Look-Fors", "Overall Comments",
	}}
	for _, obs := range observations {
		rate := 0
		if obs.CRPEvidenceRate != nil {
			rate = *obs.CRPEvidenceRate
		}
		rows = append(rows, []string{
			obs.ID,
			formatDate(obs.Date),
			obs.TeacherName,
			obs.ObserverName,
			strconv.Itoa(obs.Duration),
			string(obs.Status),
			strconv.Itoa(rate),
			strconv.Itoa(obs.TotalLookFors),
			obs.OverallComment,
		})
	}
	return writeCSV(rows)
}

// DetailedObservationsCSV renders one row per response; observations without
// responses still produce a single row so they are not dropped from audits.
func (s *ExportService) DetailedObservationsCSV(observations []*model.Observation) ([]byte, error) {
	rows := [][]string{{
		"Observation ID", "Date", "Teacher Name", "Observer Name",
		"Question ID", "Response", "Comments",
	}}
	for _, obs := range observations {
		if len(obs.Responses) == 0 {
			rows = append(rows, []string{
				obs.ID, formatDate(obs.Date), obs.TeacherName, obs.ObserverName,
				"", "", obs.OverallComment,
			})
			continue
		}
		for qid, resp := range obs.Responses {
			rows = append(rows, []string{
				obs.ID,
				formatDate(obs.Date),
				obs.TeacherName,
				obs.ObserverName,
				string(qid),
				renderValue(resp.Value),
				obs.Comments[qid],
			})
		}
	}
	return writeCSV(rows)
}

// TeachersCSV renders the roster
func (s *ExportService) TeachersCSV(teachers []*model.Teacher) ([]byte, error) {
	rows := [][]string{{"Teacher ID", "Name", "Email", "Department", "Grade", "Subjects"}}
	for _, t := range teachers {
		rows = append(rows, []string{
			t.ID, t.Name, t.Email, t.Department, t.Grade,
			strings.Join(t.Subjects, subjectSeparator),
		})
	}
	return writeCSV(rows)
}

// FrameworksCSV renders the framework catalog
func (s *ExportService) FrameworksCSV(frameworks []*model.Framework) ([]byte, error) {
	rows := [][]string{{"Framework ID", "Name", "Description", "Version", "Status", "Look-Fors", "Last Modified", "Tags"}}
	for _, f := range frameworks {
		rows = append(rows, []string{
			f.ID, f.Name, f.Description, f.Version, string(f.Status),
			strconv.Itoa(len(f.AllQuestions())),
			formatDate(f.LastModified),
			strings.Join(f.Tags, subjectSeparator),
		})
	}
	return writeCSV(rows)
}

// TeacherTemplateCSV generates the bulk-import template with sample rows
func (s *ExportService) TeacherTemplateCSV() ([]byte, error) {
	rows := [][]string{
		teacherImportColumns,
		{"John Smith", "john.smith@school.edu", "Mathematics", "9-10", "Algebra; Geometry; Statistics"},
		{"Jane Doe", "jane.doe@school.edu", "English", "11-12", "Literature; Writing; Speech"},
	}
	return writeCSV(rows)
}

// ParseTeachersCSV reads a bulk-import file. Header problems and per-row
// validation failures are returned as a field-error list; rows that validate
// are returned even when others fail, so callers can report partial imports.
func (s *ExportService) ParseTeachersCSV(r io.Reader) ([]*model.Teacher, []validation.Error, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, []validation.Error{{Field: "file", Message: "file is empty"}}, nil
	}
	if err != nil {
		return nil, nil, err
	}

	if res := validation.CSVHeaders(header, teacherImportColumns); !res.Valid {
		return nil, res.Errors, nil
	}

	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	cell := func(record []string, name string) string {
		i := col[strings.ToLower(name)]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var teachers []*model.Teacher
	var errs []validation.Error
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			errs = append(errs, validation.Error{
				Field:   fmt.Sprintf("row %d", line),
				Message: err.Error(),
			})
			continue
		}

		t := &model.Teacher{
			Name:       cell(record, "Name"),
			Email:      cell(record, "Email"),
			Department: cell(record, "Department"),
			Grade:      cell(record, "Grade"),
			Subjects:   splitSubjects(cell(record, "Subjects")),
		}
		if res := validation.Teacher(t); !res.Valid {
			for _, e := range res.Errors {
				errs = append(errs, validation.Error{
					Field:   fmt.Sprintf("row %d: %s", line, e.Field),
					Message: e.Message,
				})
			}
			continue
		}
		teachers = append(teachers, t)
	}
	return teachers, errs, nil
}

func splitSubjects(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ";")
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func renderValue(v model.ResponseValue) string {
	switch {
	case v.NotObserved:
		return model.NotObservedSentinel
	case v.Rating > 0:
		return strconv.Itoa(v.Rating)
	case len(v.Selected) > 0:
		return strings.Join(v.Selected, subjectSeparator)
	default:
		return v.Text
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

func writeCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
