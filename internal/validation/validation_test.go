package validation

import (
	"testing"

	"github.com/nyuchitech/EducatorEval/internal/model"
)

func validFramework() *model.Framework {
	return &model.Framework{
		Name:        "CRP in Action",
		Description: "Integrated observation tool",
		Version:     "1.0",
		Status:      model.FrameworkActive,
		Sections: []model.Section{
			{
				ID:          "s1",
				Title:       "Look-Fors",
				Description: "Evidence-based look-fors",
				Weight:      100,
				Questions: []model.Question{
					{
						Key:      "q1",
						Text:     "Learning target is clearly communicated",
						Type:     model.QuestionTypeRating,
						Required: true,
						Scale:    4,
						Weight:   10,
					},
				},
			},
		},
	}
}

func hasFieldError(errs []Error, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func TestFramework(t *testing.T) {
	t.Run("valid framework passes", func(t *testing.T) {
		res := Framework(validFramework())
		if !res.Valid {
			t.Errorf("expected valid, got errors %v", res.Errors)
		}
	})

	t.Run("missing name and description", func(t *testing.T) {
		f := validFramework()
		f.Name = ""
		f.Description = ""
		res := Framework(f)
		if res.Valid {
			t.Fatal("expected errors")
		}
		if !hasFieldError(res.Errors, "name") || !hasFieldError(res.Errors, "description") {
			t.Errorf("missing name/description errors: %v", res.Errors)
		}
	})

	t.Run("weights summing to 90 flag sections", func(t *testing.T) {
		f := validFramework()
		f.Sections[0].Weight = 40
		f.Sections = append(f.Sections, model.Section{
			ID: "s2", Title: "Climate", Description: "Classroom climate", Weight: 50,
		})
		res := Framework(f)
		if res.Valid {
			t.Fatal("expected sections weight error")
		}
		if !hasFieldError(res.Errors, "sections") {
			t.Errorf("expected error on sections field, got %v", res.Errors)
		}
		// The weight-sum rule is advisory: it must not survive Blocking().
		if len(Blocking(res.Errors)) != 0 {
			t.Errorf("weight-sum error should be non-blocking, got %v", Blocking(res.Errors))
		}
	})

	t.Run("bad status", func(t *testing.T) {
		f := validFramework()
		f.Status = "archived"
		if res := Framework(f); !hasFieldError(res.Errors, "status") {
			t.Errorf("expected status error, got %v", res.Errors)
		}
	})
}

func TestQuestion(t *testing.T) {
	tests := []struct {
		name      string
		q         model.Question
		wantField string
	}{
		{
			name:      "missing text",
			q:         model.Question{Type: model.QuestionTypeText},
			wantField: "text",
		},
		{
			name:      "rating scale out of range",
			q:         model.Question{Text: "t", Type: model.QuestionTypeRating, Scale: 1},
			wantField: "scale",
		},
		{
			name:      "select with one option",
			q:         model.Question{Text: "t", Type: model.QuestionTypeMultiSelect, Options: []string{"a"}},
			wantField: "options",
		},
		{
			name:      "unknown type",
			q:         model.Question{Text: "t", Type: "slider"},
			wantField: "type",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Question(&tt.q)
			if res.Valid {
				t.Fatal("expected errors")
			}
			if !hasFieldError(res.Errors, tt.wantField) {
				t.Errorf("expected error on %q, got %v", tt.wantField, res.Errors)
			}
		})
	}

	t.Run("yes-no needs no options", func(t *testing.T) {
		q := model.Question{Text: "On task?", Type: model.QuestionTypeYesNo}
		if res := Question(&q); !res.Valid {
			t.Errorf("expected valid, got %v", res.Errors)
		}
	})
}

func TestObservation(t *testing.T) {
	t.Run("completed without responses", func(t *testing.T) {
		o := &model.Observation{
			TeacherID:   "t1",
			ObserverID:  "o1",
			FrameworkID: "f1",
			Status:      model.ObservationCompleted,
		}
		res := Observation(o)
		if !hasFieldError(res.Errors, "responses") {
			t.Errorf("expected responses error, got %v", res.Errors)
		}
		if !hasFieldError(res.Errors, "date") {
			t.Errorf("expected date error, got %v", res.Errors)
		}
	})

	t.Run("duration out of range", func(t *testing.T) {
		o := &model.Observation{TeacherID: "t1", ObserverID: "o1", FrameworkID: "f1", Duration: 3}
		if res := Observation(o); !hasFieldError(res.Errors, "duration") {
			t.Errorf("expected duration error, got %v", res.Errors)
		}
	})
}

func TestTeacher(t *testing.T) {
	tr := &model.Teacher{Name: "Jane Doe", Email: "not-an-email", Department: "Math"}
	res := Teacher(tr)
	if !hasFieldError(res.Errors, "email") {
		t.Errorf("expected email error, got %v", res.Errors)
	}
	if !hasFieldError(res.Errors, "subjects") {
		t.Errorf("expected subjects error, got %v", res.Errors)
	}
}

func TestCSVHeaders(t *testing.T) {
	res := CSVHeaders([]string{" Name ", "EMAIL", "department"}, []string{"Name", "Email", "Department", "Subjects"})
	if res.Valid {
		t.Fatal("expected missing column error")
	}
	if len(res.Errors) != 1 || res.Errors[0].Message != "missing required column: Subjects" {
		t.Errorf("unexpected errors %v", res.Errors)
	}
}
