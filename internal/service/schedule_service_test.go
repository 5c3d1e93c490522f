package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nyuchitech/EducatorEval/internal/model"
	"github.com/nyuchitech/EducatorEval/internal/repository"
)

type fakeScheduleRepo struct {
	store map[string]*model.ScheduledObservation
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{store: make(map[string]*model.ScheduledObservation)}
}

func (r *fakeScheduleRepo) Create(ctx context.Context, s *model.ScheduledObservation) (string, error) {
	cp := *s
	r.store[s.ID] = &cp
	return s.ID, nil
}

func (r *fakeScheduleRepo) GetByID(ctx context.Context, id string) (*model.ScheduledObservation, error) {
	s, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeScheduleRepo) GetByObserver(ctx context.Context, observerID string) ([]*model.ScheduledObservation, error) {
	var out []*model.ScheduledObservation
	for _, s := range r.store {
		if s.ObserverID == observerID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeScheduleRepo) GetByDate(ctx context.Context, day time.Time) ([]*model.ScheduledObservation, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	var out []*model.ScheduledObservation
	for _, s := range r.store {
		if !s.ScheduledDate.Before(start) && s.ScheduledDate.Before(end) {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeScheduleRepo) Replace(ctx context.Context, s *model.ScheduledObservation) error {
	if _, ok := r.store[s.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *s
	r.store[s.ID] = &cp
	return nil
}

func (r *fakeScheduleRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.store[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.store, id)
	return nil
}

func testSchedule() *model.ScheduledObservation {
	return &model.ScheduledObservation{
		TeacherID:     "t1",
		ObserverID:    "obs1",
		FrameworkID:   "crp-in-action",
		ScheduledDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		ScheduledTime: "09:30",
		Duration:      45,
	}
}

func TestScheduleServiceCreateDefaults(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := NewScheduleService(repo)

	id, err := svc.Create(context.Background(), testSchedule())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id == "" {
		t.Fatal("Create() returned empty id")
	}

	stored := repo.store[id]
	if stored == nil {
		t.Fatal("schedule not stored")
	}
	if stored.Status != model.ScheduleScheduled {
		t.Errorf("status = %q, want %q", stored.Status, model.ScheduleScheduled)
	}
}

func TestScheduleServiceCreateValidation(t *testing.T) {
	svc := NewScheduleService(newFakeScheduleRepo())

	tests := []struct {
		name   string
		mutate func(*model.ScheduledObservation)
	}{
		{"missing teacher", func(s *model.ScheduledObservation) { s.TeacherID = "" }},
		{"missing observer", func(s *model.ScheduledObservation) { s.ObserverID = "" }},
		{"missing date", func(s *model.ScheduledObservation) { s.ScheduledDate = time.Time{} }},
		{"bad status", func(s *model.ScheduledObservation) { s.Status = "postponed" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched := testSchedule()
			tt.mutate(sched)
			_, err := svc.Create(context.Background(), sched)
			if AsValidationError(err) == nil {
				t.Fatalf("Create() error = %v, want validation error", err)
			}
		})
	}
}

func TestScheduleServiceGetNotFound(t *testing.T) {
	svc := NewScheduleService(newFakeScheduleRepo())

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrScheduleNotFound) {
		t.Fatalf("Get() error = %v, want %v", err, ErrScheduleNotFound)
	}
}

func TestScheduleServiceStatusSetters(t *testing.T) {
	tests := []struct {
		name string
		call func(*ScheduleService, context.Context, string) error
		want model.ScheduleStatus
	}{
		{"confirm", (*ScheduleService).Confirm, model.ScheduleConfirmed},
		{"cancel", (*ScheduleService).Cancel, model.ScheduleCancelled},
		{"complete", (*ScheduleService).Complete, model.ScheduleCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeScheduleRepo()
			svc := NewScheduleService(repo)
			id, err := svc.Create(context.Background(), testSchedule())
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}

			if err := tt.call(svc, context.Background(), id); err != nil {
				t.Fatalf("%s error = %v", tt.name, err)
			}
			if got := repo.store[id].Status; got != tt.want {
				t.Errorf("status = %q, want %q", got, tt.want)
			}

			if err := tt.call(svc, context.Background(), "missing"); !errors.Is(err, ErrScheduleNotFound) {
				t.Errorf("%s on missing id error = %v, want %v", tt.name, err, ErrScheduleNotFound)
			}
		})
	}
}

func TestScheduleServiceCancelKeepsRecord(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := NewScheduleService(repo)
	id, err := svc.Create(context.Background(), testSchedule())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Cancel(context.Background(), id); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	got, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get() after cancel error = %v", err)
	}
	if got.Status != model.ScheduleCancelled {
		t.Errorf("status = %q, want %q", got.Status, model.ScheduleCancelled)
	}
}

func TestScheduleServiceGetByDate(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := NewScheduleService(repo)

	onDay := testSchedule()
	onDay.ScheduledDate = time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	dayAfter := testSchedule()
	dayAfter.ScheduledDate = time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)

	wantID, err := svc.Create(context.Background(), onDay)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Create(context.Background(), dayAfter); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := svc.GetByDate(context.Background(), time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GetByDate() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("GetByDate() returned %d schedules, want 1", len(got))
	}
	if got[0].ID != wantID {
		t.Errorf("GetByDate() returned %q, want %q", got[0].ID, wantID)
	}
}

func TestScheduleServiceDeleteNotFound(t *testing.T) {
	svc := NewScheduleService(newFakeScheduleRepo())

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrScheduleNotFound) {
		t.Fatalf("Delete() error = %v, want %v", err, ErrScheduleNotFound)
	}
}
