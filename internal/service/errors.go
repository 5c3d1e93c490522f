package service

import (
	"errors"

	"github.com/nyuchitech/EducatorEval/internal/validation"
)

var (
	ErrFrameworkNotFound   = errors.New("framework not found")
	ErrSectionNotFound     = errors.New("section not found")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrObservationNotFound = errors.New("observation not found")
	ErrScheduleNotFound    = errors.New("scheduled observation not found")
	ErrTeacherNotFound     = errors.New("teacher not found")
	ErrUserExists          = errors.New("a user with this email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
)

// ValidationError carries the collected field errors for an invalid record
type ValidationError struct {
	Fields []validation.Error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return "validation failed: " + e.Fields[0].Message
}

// AsValidationError unwraps err as a *ValidationError, or returns nil
func AsValidationError(err error) *ValidationError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return nil
}
