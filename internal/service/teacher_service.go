package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nyuchitech/EducatorEval/internal/model"
	"github.com/nyuchitech/EducatorEval/internal/repository"
	"github.com/nyuchitech/EducatorEval/internal/validation"
)

// TeacherService manages the teacher roster
type TeacherService struct {
	repo        repository.TeacherRepo
	broadcaster Broadcaster
}

// NewTeacherService creates a new teacher service
func NewTeacherService(repo repository.TeacherRepo) *TeacherService {
	return &TeacherService{repo: repo}
}

// SetBroadcaster injects the snapshot broadcaster
func (s *TeacherService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Create validates and stores a teacher
func (s *TeacherService) Create(ctx context.Context, t *model.Teacher) (string, error) {
	if res := validation.Teacher(t); !res.Valid {
		return "", &ValidationError{Fields: res.Errors}
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	id, err := s.repo.Create(ctx, t)
	if err != nil {
		return "", err
	}
	s.publish(ctx)
	return id, nil
}

// Get retrieves one teacher
func (s *TeacherService) Get(ctx context.Context, id string) (*model.Teacher, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTeacherNotFound
	}
	return t, nil
}

// List retrieves the roster, name-sorted
func (s *TeacherService) List(ctx context.Context) ([]*model.Teacher, error) {
	return s.repo.List(ctx)
}

// Update validates and replaces a teacher record
func (s *TeacherService) Update(ctx context.Context, t *model.Teacher) error {
	if res := validation.Teacher(t); !res.Valid {
		return &ValidationError{Fields: res.Errors}
	}
	if err := s.repo.Replace(ctx, t); err != nil {
		if err == repository.ErrNotFound {
			return ErrTeacherNotFound
		}
		return err
	}
	s.publish(ctx)
	return nil
}

// Delete removes a teacher from the roster
func (s *TeacherService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return ErrTeacherNotFound
		}
		return err
	}
	s.publish(ctx)
	return nil
}

func (s *TeacherService) publish(ctx context.Context) {
	if s.broadcaster == nil {
		return
	}
	teachers, err := s.repo.List(ctx)
	if err != nil {
		return
	}
	s.broadcaster.BroadcastSnapshot("teachers", teachers)
}
