package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/nyuchitech/EducatorEval/internal/cache"
	"github.com/nyuchitech/EducatorEval/internal/model"
	"github.com/nyuchitech/EducatorEval/internal/repository"
	"github.com/nyuchitech/EducatorEval/internal/validation"
)

// FrameworkService manages the look-for framework catalog. It is constructed
// once at startup and injected into its consumers; there is no hidden global
// catalog.
type FrameworkService struct {
	repo        repository.FrameworkRepo
	cache       cache.FrameworkCache
	broadcaster Broadcaster
}

// NewFrameworkService creates a new framework service
func NewFrameworkService(repo repository.FrameworkRepo, cache cache.FrameworkCache) *FrameworkService {
	return &FrameworkService{
		repo:  repo,
		cache: cache,
	}
}

// SetBroadcaster injects the snapshot broadcaster
func (s *FrameworkService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Create validates and stores a new framework, assigning ids where the
// editor did not. Advisory validation findings (the section weight-sum rule)
// are returned alongside the id without blocking the save.
func (s *FrameworkService) Create(ctx context.Context, f *model.Framework) (string, []validation.Error, error) {
	res := validation.Framework(f)
	if blocking := validation.Blocking(res.Errors); len(blocking) > 0 {
		return "", nil, &ValidationError{Fields: blocking}
	}

	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.Status == "" {
		f.Status = model.FrameworkDraft
	}
	assignIDs(f)

	id, err := s.repo.Create(ctx, f)
	if err != nil {
		return "", nil, err
	}
	s.publish(ctx)
	return id, advisories(res.Errors), nil
}

// Get retrieves one framework
func (s *FrameworkService) Get(ctx context.Context, id string) (*model.Framework, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrFrameworkNotFound
	}
	return f, nil
}

// List retrieves every framework, name-sorted
func (s *FrameworkService) List(ctx context.Context) ([]*model.Framework, error) {
	return s.repo.List(ctx)
}

// ListActive retrieves active frameworks through the cache
func (s *FrameworkService) ListActive(ctx context.Context) ([]*model.Framework, error) {
	if cached, err := s.cache.GetActive(ctx); err == nil && cached != nil {
		return cached, nil
	}

	frameworks, err := s.repo.ListByStatus(ctx, model.FrameworkActive)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetActive(ctx, frameworks); err != nil {
		log.Printf("framework cache set failed: %v", err)
	}
	return frameworks, nil
}

// Update merges the non-nil fields of upd into the stored framework and
// refreshes lastModified. Concurrent editors race last-write-wins; the store
// keeps no version token.
func (s *FrameworkService) Update(ctx context.Context, id string, upd model.FrameworkUpdate) (*model.Framework, []validation.Error, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if f == nil {
		return nil, nil, ErrFrameworkNotFound
	}

	if upd.Name != nil {
		f.Name = *upd.Name
	}
	if upd.Description != nil {
		f.Description = *upd.Description
	}
	if upd.Version != nil {
		f.Version = *upd.Version
	}
	if upd.Status != nil {
		f.Status = *upd.Status
	}
	if upd.Tags != nil {
		f.Tags = *upd.Tags
	}
	if upd.Sections != nil {
		f.Sections = *upd.Sections
		assignIDs(f)
	}

	res := validation.Framework(f)
	if blocking := validation.Blocking(res.Errors); len(blocking) > 0 {
		return nil, nil, &ValidationError{Fields: blocking}
	}

	if err := s.save(ctx, f); err != nil {
		return nil, nil, err
	}
	return f, advisories(res.Errors), nil
}

// ReplaceQuestions replaces the full ordered question list of one section.
// Other sections are left untouched.
func (s *FrameworkService) ReplaceQuestions(ctx context.Context, id, sectionID string, questions []model.Question) (*model.Framework, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrFrameworkNotFound
	}

	section := f.Section(sectionID)
	if section == nil {
		return nil, ErrSectionNotFound
	}

	for i := range questions {
		if questions[i].Key == "" {
			questions[i].Key = model.QuestionID(uuid.NewString())
		}
	}
	section.Questions = questions

	if err := s.save(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// MoveQuestion swaps a question with its neighbor in the given direction.
// Moving past either end of the list is a no-op, not an error.
func (s *FrameworkService) MoveQuestion(ctx context.Context, id, sectionID string, questionID model.QuestionID, dir model.MoveDirection) (*model.Framework, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrFrameworkNotFound
	}

	section := f.Section(sectionID)
	if section == nil {
		return nil, ErrSectionNotFound
	}

	idx := -1
	for i := range section.Questions {
		if section.Questions[i].Key == questionID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrQuestionNotFound
	}

	qs := section.Questions
	switch {
	case dir == model.MoveUp && idx > 0:
		qs[idx], qs[idx-1] = qs[idx-1], qs[idx]
	case dir == model.MoveDown && idx < len(qs)-1:
		qs[idx], qs[idx+1] = qs[idx+1], qs[idx]
	default:
		// At the boundary; order unchanged, nothing to persist.
		return f, nil
	}

	if err := s.save(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Delete removes a framework entirely. Most flows prefer status=inactive.
func (s *FrameworkService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return ErrFrameworkNotFound
		}
		return err
	}
	s.publish(ctx)
	return nil
}

// Validate runs framework validation without saving
func (s *FrameworkService) Validate(f *model.Framework) validation.Result {
	return validation.Framework(f)
}

func (s *FrameworkService) save(ctx context.Context, f *model.Framework) error {
	if err := s.repo.Replace(ctx, f); err != nil {
		if err == repository.ErrNotFound {
			return ErrFrameworkNotFound
		}
		return err
	}
	s.publish(ctx)
	return nil
}

// publish invalidates the cache and pushes a fresh collection snapshot
func (s *FrameworkService) publish(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("framework cache invalidate failed: %v", err)
	}
	if s.broadcaster == nil {
		return
	}
	frameworks, err := s.repo.List(ctx)
	if err != nil {
		log.Printf("framework snapshot fetch failed: %v", err)
		return
	}
	s.broadcaster.BroadcastSnapshot("frameworks", frameworks)
}

func assignIDs(f *model.Framework) {
	for i := range f.Sections {
		if f.Sections[i].ID == "" {
			f.Sections[i].ID = uuid.NewString()
		}
		for j := range f.Sections[i].Questions {
			if f.Sections[i].Questions[j].Key == "" {
				f.Sections[i].Questions[j].Key = model.QuestionID(uuid.NewString())
			}
		}
	}
}

func advisories(errs []validation.Error) []validation.Error {
	var out []validation.Error
	for _, e := range errs {
		if validation.WeightSumAdvisory(e) {
			out = append(out, e)
		}
	}
	return out
}
