package service

import (
	"context"
	"sort"
	"testing"

	"github.com/nyuchitech/EducatorEval/internal/model"
	"github.com/nyuchitech/EducatorEval/internal/repository"
)

type fakeFrameworkRepo struct {
	store map[string]*model.Framework
}

func newFakeFrameworkRepo() *fakeFrameworkRepo {
	return &fakeFrameworkRepo{store: make(map[string]*model.Framework)}
}

func (r *fakeFrameworkRepo) Create(ctx context.Context, f *model.Framework) (string, error) {
	cp := *f
	r.store[f.ID] = &cp
	return f.ID, nil
}

func (r *fakeFrameworkRepo) GetByID(ctx context.Context, id string) (*model.Framework, error) {
	f, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	cp := *f
	return &cp, nil
}

func (r *fakeFrameworkRepo) List(ctx context.Context) ([]*model.Framework, error) {
	var out []*model.Framework
	for _, f := range r.store {
		cp := *f
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeFrameworkRepo) ListByStatus(ctx context.Context, status model.FrameworkStatus) ([]*model.Framework, error) {
	all, _ := r.List(ctx)
	var out []*model.Framework
	for _, f := range all {
		if f.Status == status {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFrameworkRepo) Replace(ctx context.Context, f *model.Framework) error {
	if _, ok := r.store[f.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *f
	r.store[f.ID] = &cp
	return nil
}

func (r *fakeFrameworkRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.store[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.store, id)
	return nil
}

type fakeFrameworkCache struct {
	active []*model.Framework
}

func (c *fakeFrameworkCache) GetActive(ctx context.Context) ([]*model.Framework, error) {
	return c.active, nil
}

func (c *fakeFrameworkCache) SetActive(ctx context.Context, frameworks []*model.Framework) error {
	c.active = frameworks
	return nil
}

func (c *fakeFrameworkCache) Invalidate(ctx context.Context) error {
	c.active = nil
	return nil
}

func testFramework() *model.Framework {
	return &model.Framework{
		ID:          "fw1",
		Name:        "Core Practices",
		Description: "District observation rubric",
		Version:     "1.0",
		Status:      model.FrameworkActive,
		Sections: []model.Section{
			{
				ID:          "s1",
				Title:       "Instruction",
				Description: "Instructional look-fors",
				Weight:      100,
				Questions: []model.Question{
					{Key: "q1", Text: "Learning target is visible", Type: model.QuestionTypeRating, Scale: 4, Weight: 50},
					{Key: "q2", Text: "Checks for understanding", Type: model.QuestionTypeRating, Scale: 4, Weight: 50},
					{Key: "q3", Text: "Students collaborate", Type: model.QuestionTypeRating, Scale: 4, Weight: 0},
				},
			},
		},
	}
}

func newTestFrameworkService() (*FrameworkService, *fakeFrameworkRepo) {
	repo := newFakeFrameworkRepo()
	return NewFrameworkService(repo, &fakeFrameworkCache{}), repo
}

func TestFrameworkServiceCreate(t *testing.T) {
	svc, repo := newTestFrameworkService()
	ctx := context.Background()

	f := testFramework()
	f.ID = ""
	f.Sections[0].Questions[0].Key = ""

	id, warnings, err := svc.Create(ctx, f)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id == "" {
		t.Error("Create() returned empty id")
	}
	if len(warnings) != 0 {
		t.Errorf("Create() warnings = %v, want none", warnings)
	}

	stored := repo.store[id]
	if stored == nil {
		t.Fatal("framework not stored")
	}
	if stored.Sections[0].Questions[0].Key == "" {
		t.Error("question id not assigned")
	}
}

func TestFrameworkServiceCreateBlocking(t *testing.T) {
	svc, _ := newTestFrameworkService()

	f := testFramework()
	f.Name = ""

	_, _, err := svc.Create(context.Background(), f)
	verr := AsValidationError(err)
	if verr == nil {
		t.Fatalf("Create() error = %v, want validation error", err)
	}
	if len(verr.Fields) == 0 {
		t.Error("validation error has no fields")
	}
}

func TestFrameworkServiceCreateWeightAdvisory(t *testing.T) {
	svc, repo := newTestFrameworkService()

	f := testFramework()
	f.Sections[0].Weight = 90

	id, warnings, err := svc.Create(context.Background(), f)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("Create() warnings = %v, want one weight advisory", warnings)
	}
	if warnings[0].Field != "sections" {
		t.Errorf("warning field = %q, want %q", warnings[0].Field, "sections")
	}
	if repo.store[id] == nil {
		t.Error("advisory blocked the save")
	}
}

func TestFrameworkServiceUpdatePartial(t *testing.T) {
	svc, _ := newTestFrameworkService()
	ctx := context.Background()

	f := testFramework()
	if _, _, err := svc.Create(ctx, f); err != nil {
		t.Fatal(err)
	}

	name := "Revised Practices"
	updated, _, err := svc.Update(ctx, f.ID, model.FrameworkUpdate{Name: &name})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Name != name {
		t.Errorf("Name = %q, want %q", updated.Name, name)
	}
	if updated.Description != f.Description {
		t.Errorf("Description changed unexpectedly: %q", updated.Description)
	}
	if len(updated.Sections) != 1 {
		t.Errorf("Sections length = %d, want 1", len(updated.Sections))
	}
}

func TestFrameworkServiceUpdateNotFound(t *testing.T) {
	svc, _ := newTestFrameworkService()

	name := "x"
	_, _, err := svc.Update(context.Background(), "missing", model.FrameworkUpdate{Name: &name})
	if err != ErrFrameworkNotFound {
		t.Errorf("Update() error = %v, want ErrFrameworkNotFound", err)
	}
}

func TestFrameworkServiceReplaceQuestions(t *testing.T) {
	svc, repo := newTestFrameworkService()
	ctx := context.Background()

	f := testFramework()
	if _, _, err := svc.Create(ctx, f); err != nil {
		t.Fatal(err)
	}

	replacement := []model.Question{
		{Text: "New look-for", Type: model.QuestionTypeRating, Scale: 4},
	}
	updated, err := svc.ReplaceQuestions(ctx, f.ID, "s1", replacement)
	if err != nil {
		t.Fatalf("ReplaceQuestions() error = %v", err)
	}
	if got := len(updated.Sections[0].Questions); got != 1 {
		t.Errorf("question count = %d, want 1", got)
	}
	if updated.Sections[0].Questions[0].Key == "" {
		t.Error("replacement question id not assigned")
	}
	if got := len(repo.store[f.ID].Sections[0].Questions); got != 1 {
		t.Errorf("stored question count = %d, want 1", got)
	}
}

func TestFrameworkServiceReplaceQuestionsMissingSection(t *testing.T) {
	svc, repo := newTestFrameworkService()
	ctx := context.Background()

	f := testFramework()
	if _, _, err := svc.Create(ctx, f); err != nil {
		t.Fatal(err)
	}

	_, err := svc.ReplaceQuestions(ctx, f.ID, "nope", nil)
	if err != ErrSectionNotFound {
		t.Fatalf("ReplaceQuestions() error = %v, want ErrSectionNotFound", err)
	}
	if got := len(repo.store[f.ID].Sections[0].Questions); got != 3 {
		t.Errorf("existing section modified, question count = %d, want 3", got)
	}
}

func TestFrameworkServiceMoveQuestion(t *testing.T) {
	tests := []struct {
		name      string
		question  model.QuestionID
		dir       model.MoveDirection
		wantOrder []model.QuestionID
	}{
		{"down swaps with next", "q1", model.MoveDown, []model.QuestionID{"q2", "q1", "q3"}},
		{"up swaps with previous", "q3", model.MoveUp, []model.QuestionID{"q1", "q3", "q2"}},
		{"up at top is a no-op", "q1", model.MoveUp, []model.QuestionID{"q1", "q2", "q3"}},
		{"down at bottom is a no-op", "q3", model.MoveDown, []model.QuestionID{"q1", "q2", "q3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestFrameworkService()
			ctx := context.Background()

			f := testFramework()
			if _, _, err := svc.Create(ctx, f); err != nil {
				t.Fatal(err)
			}

			updated, err := svc.MoveQuestion(ctx, f.ID, "s1", tt.question, tt.dir)
			if err != nil {
				t.Fatalf("MoveQuestion() error = %v", err)
			}
			for i, want := range tt.wantOrder {
				if got := updated.Sections[0].Questions[i].Key; got != want {
					t.Errorf("position %d = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestFrameworkServiceMoveQuestionNotFound(t *testing.T) {
	svc, _ := newTestFrameworkService()
	ctx := context.Background()

	f := testFramework()
	if _, _, err := svc.Create(ctx, f); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.MoveQuestion(ctx, f.ID, "s1", "ghost", model.MoveUp); err != ErrQuestionNotFound {
		t.Errorf("MoveQuestion() error = %v, want ErrQuestionNotFound", err)
	}
}

func TestFrameworkServiceGetNotFound(t *testing.T) {
	svc, _ := newTestFrameworkService()

	if _, err := svc.Get(context.Background(), "missing"); err != ErrFrameworkNotFound {
		t.Errorf("Get() error = %v, want ErrFrameworkNotFound", err)
	}
}

func TestFrameworkServiceListActiveUsesCache(t *testing.T) {
	repo := newFakeFrameworkRepo()
	cache := &fakeFrameworkCache{}
	svc := NewFrameworkService(repo, cache)
	ctx := context.Background()

	f := testFramework()
	if _, _, err := svc.Create(ctx, f); err != nil {
		t.Fatal(err)
	}

	first, err := svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive() error = %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("ListActive() = %d frameworks, want 1", len(first))
	}

	// Remove from the store; the cached snapshot should still serve.
	delete(repo.store, f.ID)
	second, err := svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive() error = %v", err)
	}
	if len(second) != 1 {
		t.Errorf("ListActive() after delete = %d frameworks, want cached 1", len(second))
	}
}
