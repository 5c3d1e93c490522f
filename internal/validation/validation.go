// Package validation checks domain records before they are saved. Errors are
// collected as {field, message} lists and returned to the caller; nothing in
// this package blocks a save by itself.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nyuchitech/EducatorEval/internal/model"
)

// Error describes one invalid field
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of validating a record
type Result struct {
	Valid  bool    `json:"isValid"`
	Errors []Error `json:"errors"`
}

func result(errs []Error) Result {
	return Result{Valid: len(errs) == 0, Errors: errs}
}

var validate = validator.New()

func init() {
	// Use JSON tag names in error fields instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// structErrors runs tag validation and converts the outcome to field errors.
// prefix is prepended to each field path, e.g. "sections[0]".
func structErrors(v interface{}, prefix string) []Error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Error{{Field: prefix, Message: err.Error()}}
	}
	var errs []Error
	for _, fe := range verrs {
		// Namespace is "Type.field.nested"; drop the type segment.
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		if prefix != "" {
			field = prefix + "." + field
		}
		errs = append(errs, Error{Field: field, Message: message(fe)})
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be less than %s characters", fe.Field(), fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("at least %s %s is required", fe.Param(), fe.Field())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "email":
		return "please enter a valid email address"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// Framework validates a framework and its nested sections and questions.
// The section-weight-sum check reports on field "sections" but is advisory:
// callers surface it without blocking the save.
func Framework(f *model.Framework) Result {
	errs := structErrors(f, "")

	switch f.Status {
	case "", model.FrameworkActive, model.FrameworkInactive, model.FrameworkDraft:
	default:
		errs = append(errs, Error{Field: "status", Message: "invalid framework status"})
	}

	if len(f.Sections) > 0 {
		totalWeight := 0
		for i, s := range f.Sections {
			errs = append(errs, sectionErrors(&s, fmt.Sprintf("sections[%d]", i))...)
			totalWeight += s.Weight
		}
		if totalWeight != 100 {
			errs = append(errs, Error{Field: "sections", Message: "total section weights must equal 100%"})
		}
	}
	return result(errs)
}

// WeightSumAdvisory reports whether a validation error is the soft
// section-weight-sum rule rather than a blocking failure.
func WeightSumAdvisory(e Error) bool {
	return e.Field == "sections" && strings.Contains(e.Message, "100%")
}

// Blocking filters out advisory errors, leaving only those that stop a save
func Blocking(errs []Error) []Error {
	var out []Error
	for _, e := range errs {
		if !WeightSumAdvisory(e) {
			out = append(out, e)
		}
	}
	return out
}

// Section validates one section and its questions
func Section(s *model.Section) Result {
	return result(sectionErrors(s, ""))
}

func sectionErrors(s *model.Section, prefix string) []Error {
	errs := structErrors(s, prefix)
	for i, q := range s.Questions {
		p := fmt.Sprintf("questions[%d]", i)
		if prefix != "" {
			p = prefix + "." + p
		}
		errs = append(errs, questionErrors(&q, p)...)
	}
	return errs
}

// Question validates one look-for
func Question(q *model.Question) Result {
	return result(questionErrors(q, ""))
}

func questionErrors(q *model.Question, prefix string) []Error {
	errs := structErrors(q, prefix)

	field := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "." + name
	}

	switch q.Type {
	case model.QuestionTypeRating:
		if q.Scale < 2 || q.Scale > 10 {
			errs = append(errs, Error{Field: field("scale"), Message: "rating scale must be between 2 and 10"})
		}
	case model.QuestionTypeText, model.QuestionTypeYesNo:
	case model.QuestionTypeMultiSelect, model.QuestionTypeSingleSelect:
		if len(q.Options) < 2 {
			errs = append(errs, Error{Field: field("options"), Message: "select questions must have at least 2 options"})
		}
	default:
		errs = append(errs, Error{Field: field("type"), Message: "invalid question type"})
	}
	return errs
}

// Observation validates an observation record
func Observation(o *model.Observation) Result {
	errs := structErrors(o, "")

	if o.Date.IsZero() {
		errs = append(errs, Error{Field: "date", Message: "observation date is required"})
	}
	if o.Duration != 0 && (o.Duration < 5 || o.Duration > 180) {
		errs = append(errs, Error{Field: "duration", Message: "observation duration must be between 5 and 180 minutes"})
	}

	switch o.Status {
	case "", model.ObservationDraft, model.ObservationInProgress,
		model.ObservationCompleted, model.ObservationSubmitted:
	default:
		errs = append(errs, Error{Field: "status", Message: "invalid observation status"})
	}

	if o.Status == model.ObservationCompleted || o.Status == model.ObservationSubmitted {
		if len(o.Responses) == 0 {
			errs = append(errs, Error{Field: "responses", Message: "completed observations must have responses"})
		}
	}
	return result(errs)
}

// Schedule validates a planned visit
func Schedule(s *model.ScheduledObservation) Result {
	errs := structErrors(s, "")
	if s.ScheduledDate.IsZero() {
		errs = append(errs, Error{Field: "scheduledDate", Message: "scheduled date is required"})
	}
	switch s.Status {
	case "", model.ScheduleScheduled, model.ScheduleConfirmed,
		model.ScheduleCancelled, model.ScheduleCompleted:
	default:
		errs = append(errs, Error{Field: "status", Message: "invalid schedule status"})
	}
	return result(errs)
}

// Teacher validates a teacher record
func Teacher(t *model.Teacher) Result {
	return result(structErrors(t, ""))
}

// User validates a user record
func User(u *model.User) Result {
	errs := structErrors(u, "")
	switch u.Role {
	case model.RoleAdmin, model.RoleCoordinator, model.RoleObserver, model.RoleTeacher:
	default:
		errs = append(errs, Error{Field: "role", Message: "valid role is required"})
	}
	return result(errs)
}

// CSVHeaders checks that an import file carries every required column.
// Header matching is case-insensitive and ignores surrounding whitespace.
func CSVHeaders(headers, required []string) Result {
	seen := make(map[string]bool, len(headers))
	for _, h := range headers {
		seen[strings.ToLower(strings.TrimSpace(h))] = true
	}
	var errs []Error
	for _, r := range required {
		if !seen[strings.ToLower(r)] {
			errs = append(errs, Error{Field: "headers", Message: "missing required column: " + r})
		}
	}
	return result(errs)
}
