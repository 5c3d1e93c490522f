package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nyuchitech/EducatorEval/internal/model"
	"github.com/nyuchitech/EducatorEval/internal/repository"
)

type fakeTeacherRepo struct {
	store map[string]*model.Teacher
}

func newFakeTeacherRepo() *fakeTeacherRepo {
	return &fakeTeacherRepo{store: make(map[string]*model.Teacher)}
}

func (r *fakeTeacherRepo) Create(ctx context.Context, t *model.Teacher) (string, error) {
	cp := *t
	r.store[t.ID] = &cp
	return t.ID, nil
}

func (r *fakeTeacherRepo) GetByID(ctx context.Context, id string) (*model.Teacher, error) {
	t, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTeacherRepo) List(ctx context.Context) ([]*model.Teacher, error) {
	var out []*model.Teacher
	for _, t := range r.store {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTeacherRepo) Replace(ctx context.Context, t *model.Teacher) error {
	if _, ok := r.store[t.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *t
	r.store[t.ID] = &cp
	return nil
}

func (r *fakeTeacherRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.store[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.store, id)
	return nil
}

func testTeacher() *model.Teacher {
	return &model.Teacher{
		Name:       "Sarah Chen",
		Email:      "schen@district.edu",
		Department: "Mathematics",
		Grade:      "8",
		Subjects:   []string{"Algebra", "Geometry"},
	}
}

func TestTeacherServiceCreate(t *testing.T) {
	repo := newFakeTeacherRepo()
	svc := NewTeacherService(repo)

	id, err := svc.Create(context.Background(), testTeacher())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id == "" {
		t.Fatal("Create() returned empty id")
	}
	if repo.store[id] == nil {
		t.Fatal("teacher not stored")
	}
}

func TestTeacherServiceCreateValidation(t *testing.T) {
	svc := NewTeacherService(newFakeTeacherRepo())

	tests := []struct {
		name      string
		mutate    func(*model.Teacher)
		wantField string
	}{
		{"missing name", func(tc *model.Teacher) { tc.Name = "" }, "name"},
		{"bad email", func(tc *model.Teacher) { tc.Email = "not-an-email" }, "email"},
		{"missing department", func(tc *model.Teacher) { tc.Department = "" }, "department"},
		{"no subjects", func(tc *model.Teacher) { tc.Subjects = nil }, "subjects"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teacher := testTeacher()
			tt.mutate(teacher)
			_, err := svc.Create(context.Background(), teacher)
			verr := AsValidationError(err)
			if verr == nil {
				t.Fatalf("Create() error = %v, want validation error", err)
			}
			found := false
			for _, fe := range verr.Fields {
				if fe.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("Fields = %v, want an entry for %q", verr.Fields, tt.wantField)
			}
		})
	}
}

func TestTeacherServiceGetNotFound(t *testing.T) {
	svc := NewTeacherService(newFakeTeacherRepo())

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrTeacherNotFound) {
		t.Fatalf("Get() error = %v, want %v", err, ErrTeacherNotFound)
	}
}

func TestTeacherServiceUpdate(t *testing.T) {
	repo := newFakeTeacherRepo()
	svc := NewTeacherService(repo)
	id, err := svc.Create(context.Background(), testTeacher())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated := testTeacher()
	updated.ID = id
	updated.Department = "STEM"
	if err := svc.Update(context.Background(), updated); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got := repo.store[id].Department; got != "STEM" {
		t.Errorf("department = %q, want %q", got, "STEM")
	}
}

func TestTeacherServiceUpdateValidation(t *testing.T) {
	repo := newFakeTeacherRepo()
	svc := NewTeacherService(repo)
	id, err := svc.Create(context.Background(), testTeacher())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated := testTeacher()
	updated.ID = id
	updated.Email = ""
	if err := svc.Update(context.Background(), updated); AsValidationError(err) == nil {
		t.Fatalf("Update() error = %v, want validation error", err)
	}
}

func TestTeacherServiceUpdateNotFound(t *testing.T) {
	svc := NewTeacherService(newFakeTeacherRepo())

	teacher := testTeacher()
	teacher.ID = "missing"
	if err := svc.Update(context.Background(), teacher); !errors.Is(err, ErrTeacherNotFound) {
		t.Fatalf("Update() error = %v, want %v", err, ErrTeacherNotFound)
	}
}

func TestTeacherServiceDeleteNotFound(t *testing.T) {
	svc := NewTeacherService(newFakeTeacherRepo())

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrTeacherNotFound) {
		t.Fatalf("Delete() error = %v, want %v", err, ErrTeacherNotFound)
	}
}

func TestTeacherServiceList(t *testing.T) {
	repo := newFakeTeacherRepo()
	svc := NewTeacherService(repo)
	for _, teacher := range []*model.Teacher{
		testTeacher(),
		{Name: "Marcus Rodriguez", Email: "mrodriguez@district.edu", Department: "Science", Subjects: []string{"Life Science"}},
	} {
		if _, err := svc.Create(context.Background(), teacher); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	teachers, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(teachers) != 2 {
		t.Errorf("List() returned %d teachers, want 2", len(teachers))
	}
}
