package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nyuchitech/EducatorEval/internal/model"
)

// ObservationRepo handles MongoDB operations for observations
type ObservationRepo interface {
	Create(ctx context.Context, obs *model.Observation) (string, error)
	GetByID(ctx context.Context, id string) (*model.Observation, error)
	GetByObserver(ctx context.Context, observerID string) ([]*model.Observation, error)
	GetByTeacher(ctx context.Context, teacherID string) ([]*model.Observation, error)
	Recent(ctx context.Context, limit int64) ([]*model.Observation, error)
	All(ctx context.Context) ([]*model.Observation, error)
	Replace(ctx context.Context, obs *model.Observation) error
	Delete(ctx context.Context, id string) error
}

type observationRepo struct {
	collection *mongo.Collection
}

// NewObservationRepo creates a new observation repository
func NewObservationRepo(db *mongo.Database) ObservationRepo {
	return &observationRepo{
		collection: db.Collection("observations"),
	}
}

func (r *observationRepo) Create(ctx context.Context, obs *model.Observation) (string, error) {
	now := time.Now()
	obs.CreatedAt = now
	obs.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, obs); err != nil {
		return "", err
	}
	return obs.ID, nil
}

func (r *observationRepo) GetByID(ctx context.Context, id string) (*model.Observation, error) {
	var obs model.Observation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&obs)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &obs, nil
}

func (r *observationRepo) GetByObserver(ctx context.Context, observerID string) ([]*model.Observation, error) {
	return r.find(ctx, bson.M{"observerId": observerID}, dateDescending())
}

func (r *observationRepo) GetByTeacher(ctx context.Context, teacherID string) ([]*model.Observation, error) {
	return r.find(ctx, bson.M{"teacherId": teacherID}, dateDescending())
}

func (r *observationRepo) Recent(ctx context.Context, limit int64) ([]*model.Observation, error) {
	return r.find(ctx, bson.M{}, dateDescending().SetLimit(limit))
}

func (r *observationRepo) All(ctx context.Context) ([]*model.Observation, error) {
	return r.find(ctx, bson.M{}, dateDescending())
}

func dateDescending() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
}

func (r *observationRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.Observation, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var observations []*model.Observation
	if err := cursor.All(ctx, &observations); err != nil {
		return nil, err
	}
	return observations, nil
}

func (r *observationRepo) Replace(ctx context.Context, obs *model.Observation) error {
	obs.UpdatedAt = time.Now()

	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": obs.ID}, obs)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *observationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
