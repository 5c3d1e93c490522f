package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nyuchitech/EducatorEval/internal/model"
)

// ScheduleRepo handles MongoDB operations for scheduled observations
type ScheduleRepo interface {
	Create(ctx context.Context, s *model.ScheduledObservation) (string, error)
	GetByID(ctx context.Context, id string) (*model.ScheduledObservation, error)
	GetByObserver(ctx context.Context, observerID string) ([]*model.ScheduledObservation, error)
	GetByDate(ctx context.Context, day time.Time) ([]*model.ScheduledObservation, error)
	Replace(ctx context.Context, s *model.ScheduledObservation) error
	Delete(ctx context.Context, id string) error
}

type scheduleRepo struct {
	collection *mongo.Collection
}

// NewScheduleRepo creates a new schedule repository
func NewScheduleRepo(db *mongo.Database) ScheduleRepo {
	return &scheduleRepo{
		collection: db.Collection("scheduledObservations"),
	}
}

func (r *scheduleRepo) Create(ctx context.Context, s *model.ScheduledObservation) (string, error) {
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, s); err != nil {
		return "", err
	}
	return s.ID, nil
}

func (r *scheduleRepo) GetByID(ctx context.Context, id string) (*model.ScheduledObservation, error) {
	var s model.ScheduledObservation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *scheduleRepo) GetByObserver(ctx context.Context, observerID string) ([]*model.ScheduledObservation, error) {
	return r.find(ctx, bson.M{"observerId": observerID})
}

// GetByDate returns visits planned for the calendar day containing day
func (r *scheduleRepo) GetByDate(ctx context.Context, day time.Time) ([]*model.ScheduledObservation, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	return r.find(ctx, bson.M{"scheduledDate": bson.M{"$gte": start, "$lt": end}})
}

func (r *scheduleRepo) find(ctx context.Context, filter bson.M) ([]*model.ScheduledObservation, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "scheduledDate", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var schedules []*model.ScheduledObservation
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepo) Replace(ctx context.Context, s *model.ScheduledObservation) error {
	s.UpdatedAt = time.Now()

	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *scheduleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
