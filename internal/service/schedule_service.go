package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nyuchitech/EducatorEval/internal/model"
	"github.com/nyuchitech/EducatorEval/internal/repository"
	"github.com/nyuchitech/EducatorEval/internal/validation"
)

// ScheduleService manages planned visits. Scheduled observations live in
// their own collection with their own status values; starting a visit creates
// a fresh observation record rather than mutating the schedule entry.
type ScheduleService struct {
	repo repository.ScheduleRepo
}

// NewScheduleService creates a new schedule service
func NewScheduleService(repo repository.ScheduleRepo) *ScheduleService {
	return &ScheduleService{repo: repo}
}

// Create validates and stores a planned visit
func (s *ScheduleService) Create(ctx context.Context, sched *model.ScheduledObservation) (string, error) {
	if res := validation.Schedule(sched); !res.Valid {
		return "", &ValidationError{Fields: res.Errors}
	}
	if sched.ID == "" {
		sched.ID = uuid.NewString()
	}
	if sched.Status == "" {
		sched.Status = model.ScheduleScheduled
	}
	return s.repo.Create(ctx, sched)
}

// Get retrieves one planned visit
func (s *ScheduleService) Get(ctx context.Context, id string) (*model.ScheduledObservation, error) {
	sched, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sched == nil {
		return nil, ErrScheduleNotFound
	}
	return sched, nil
}

// GetByObserver returns an observer's planned visits, soonest first
func (s *ScheduleService) GetByObserver(ctx context.Context, observerID string) ([]*model.ScheduledObservation, error) {
	return s.repo.GetByObserver(ctx, observerID)
}

// GetByDate returns visits planned for one calendar day
func (s *ScheduleService) GetByDate(ctx context.Context, day time.Time) ([]*model.ScheduledObservation, error) {
	return s.repo.GetByDate(ctx, day)
}

// Confirm marks a planned visit as confirmed
func (s *ScheduleService) Confirm(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, model.ScheduleConfirmed)
}

// Cancel marks a planned visit as cancelled. The record is kept.
func (s *ScheduleService) Cancel(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, model.ScheduleCancelled)
}

// Complete marks a planned visit as carried out
func (s *ScheduleService) Complete(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, model.ScheduleCompleted)
}

func (s *ScheduleService) setStatus(ctx context.Context, id string, status model.ScheduleStatus) error {
	sched, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sched == nil {
		return ErrScheduleNotFound
	}
	sched.Status = status
	if err := s.repo.Replace(ctx, sched); err != nil {
		if err == repository.ErrNotFound {
			return ErrScheduleNotFound
		}
		return err
	}
	return nil
}

// Delete removes a planned visit
func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return ErrScheduleNotFound
		}
		return err
	}
	return nil
}
