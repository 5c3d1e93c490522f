package service

import (
	"context"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nyuchitech/EducatorEval/internal/cache"
	"github.com/nyuchitech/EducatorEval/internal/model"
	"github.com/nyuchitech/EducatorEval/internal/repository"
	"github.com/nyuchitech/EducatorEval/internal/scoring"
	"github.com/nyuchitech/EducatorEval/internal/validation"
)

// DefaultObservationGoal is the district-wide observation target
const DefaultObservationGoal = 5000

// nowFunc is swapped out in tests to pin month boundaries
var nowFunc = time.Now

// ObservationService records classroom visits and aggregates them for
// dashboards.
type ObservationService struct {
	repo        repository.ObservationRepo
	statsCache  cache.StatsCache
	broadcaster Broadcaster
	goal        int
}

// NewObservationService creates a new observation service
func NewObservationService(repo repository.ObservationRepo, statsCache cache.StatsCache, goal int) *ObservationService {
	if goal <= 0 {
		goal = DefaultObservationGoal
	}
	return &ObservationService{
		repo:       repo,
		statsCache: statsCache,
		goal:       goal,
	}
}

// SetBroadcaster injects the snapshot broadcaster
func (s *ObservationService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Create validates an observation, computes its evidence score from the
// responses, and stores it.
func (s *ObservationService) Create(ctx context.Context, obs *model.Observation) (string, error) {
	if obs.Status == "" {
		obs.Status = model.ObservationDraft
	}
	if res := validation.Observation(obs); !res.Valid {
		return "", &ValidationError{Fields: res.Errors}
	}

	if obs.ID == "" {
		obs.ID = uuid.NewString()
	}
	scoring.Score(obs)

	id, err := s.repo.Create(ctx, obs)
	if err != nil {
		return "", err
	}
	s.publish(ctx)
	return id, nil
}

// Get retrieves one observation
func (s *ObservationService) Get(ctx context.Context, id string) (*model.Observation, error) {
	obs, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if obs == nil {
		return nil, ErrObservationNotFound
	}
	return obs, nil
}

// Update merges the non-nil fields of upd into the stored observation and
// recomputes the evidence score when responses changed. Status transitions
// are not validated; any ordering the caller sends is stored as-is.
func (s *ObservationService) Update(ctx context.Context, id string, upd model.ObservationUpdate) (*model.Observation, error) {
	obs, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if obs == nil {
		return nil, ErrObservationNotFound
	}

	if upd.EndTime != nil {
		obs.EndTime = *upd.EndTime
	}
	if upd.Duration != nil {
		obs.Duration = *upd.Duration
	}
	if upd.Status != nil {
		obs.Status = *upd.Status
	}
	if upd.Comments != nil {
		obs.Comments = *upd.Comments
	}
	if upd.OverallComment != nil {
		obs.OverallComment = *upd.OverallComment
	}
	if upd.Responses != nil {
		obs.Responses = *upd.Responses
		scoring.Score(obs)
	}

	if res := validation.Observation(obs); !res.Valid {
		return nil, &ValidationError{Fields: res.Errors}
	}

	if err := s.repo.Replace(ctx, obs); err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrObservationNotFound
		}
		return nil, err
	}
	s.publish(ctx)
	return obs, nil
}

// GetByObserver returns an observer's visits, most recent first
func (s *ObservationService) GetByObserver(ctx context.Context, observerID string) ([]*model.Observation, error) {
	return s.repo.GetByObserver(ctx, observerID)
}

// GetByTeacher returns the visits recorded against a teacher, most recent first
func (s *ObservationService) GetByTeacher(ctx context.Context, teacherID string) ([]*model.Observation, error) {
	return s.repo.GetByTeacher(ctx, teacherID)
}

// Recent returns the latest observations for the dashboard feed
func (s *ObservationService) Recent(ctx context.Context, limit int64) ([]*model.Observation, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.Recent(ctx, limit)
}

// Stats aggregates the observations collection: total count, count since the
// first of the current month, and the mean evidence rate over observations
// that carry one (rounded to the nearest integer).
func (s *ObservationService) Stats(ctx context.Context) (*model.ObservationStats, error) {
	if cached, err := s.statsCache.Get(ctx); err == nil && cached != nil {
		return cached, nil
	}

	observations, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	now := nowFunc()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := &model.ObservationStats{Total: len(observations)}
	scored, scoreSum := 0, 0
	for _, obs := range observations {
		if !obs.Date.Before(monthStart) {
			stats.ThisMonth++
		}
		if obs.CRPEvidenceRate != nil {
			scored++
			scoreSum += *obs.CRPEvidenceRate
		}
	}
	if scored > 0 {
		stats.CRPEvidenceAverage = int(math.Round(float64(scoreSum) / float64(scored)))
	}

	if err := s.statsCache.Set(ctx, stats); err != nil {
		log.Printf("stats cache set failed: %v", err)
	}
	return stats, nil
}

// Progress reports progress toward the observation goal
func (s *ObservationService) Progress(ctx context.Context) (*model.GoalProgress, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}
	p := ComputeProgress(stats.Total, s.goal)
	return &p, nil
}

// ComputeProgress maps a running total onto the goal. The percentage is
// capped at 100 and rounded to one decimal place.
func ComputeProgress(total, goal int) model.GoalProgress {
	pct := math.Min(100, float64(total)/float64(goal)*100)
	return model.GoalProgress{
		Current:    total,
		Goal:       goal,
		Percentage: math.Round(pct*10) / 10,
	}
}

// Search matches query case-insensitively against teacher name, observer name
// and the overall comment, then intersects with the status allow-list.
// Criteria combine with AND.
func (s *ObservationService) Search(ctx context.Context, query string, filters model.SearchFilters) ([]*model.Observation, error) {
	observations, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	var out []*model.Observation
	for _, obs := range observations {
		if query != "" && !matchesQuery(obs, query) {
			continue
		}
		if len(filters.Status) > 0 && !statusAllowed(obs.Status, filters.Status) {
			continue
		}
		out = append(out, obs)
	}
	return out, nil
}

func matchesQuery(obs *model.Observation, query string) bool {
	return strings.Contains(strings.ToLower(obs.TeacherName), query) ||
		strings.Contains(strings.ToLower(obs.ObserverName), query) ||
		strings.Contains(strings.ToLower(obs.OverallComment), query)
}

func statusAllowed(status model.ObservationStatus, allowed []model.ObservationStatus) bool {
	for _, s := range allowed {
		if s == status {
			return true
		}
	}
	return false
}

// Dashboard bundles stats, goal progress and the recent feed
func (s *ObservationService) Dashboard(ctx context.Context) (*model.DashboardSummary, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.Recent(ctx, 10)
	if err != nil {
		return nil, err
	}
	return &model.DashboardSummary{
		Stats:              *stats,
		GoalProgress:       ComputeProgress(stats.Total, s.goal),
		RecentObservations: recent,
	}, nil
}

// publish invalidates cached aggregates and pushes a fresh snapshot
func (s *ObservationService) publish(ctx context.Context) {
	if err := s.statsCache.Invalidate(ctx); err != nil {
		log.Printf("stats cache invalidate failed: %v", err)
	}
	if s.broadcaster == nil {
		return
	}
	observations, err := s.repo.All(ctx)
	if err != nil {
		log.Printf("observation snapshot fetch failed: %v", err)
		return
	}
	s.broadcaster.BroadcastSnapshot("observations", observations)
}
