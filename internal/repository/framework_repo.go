package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nyuchitech/EducatorEval/internal/model"
)

// ErrNotFound is returned by mutating operations when the target document
// does not exist.
var ErrNotFound = errors.New("document not found")

// FrameworkRepo handles MongoDB operations for frameworks
type FrameworkRepo interface {
	Create(ctx context.Context, f *model.Framework) (string, error)
	GetByID(ctx context.Context, id string) (*model.Framework, error)
	List(ctx context.Context) ([]*model.Framework, error)
	ListByStatus(ctx context.Context, status model.FrameworkStatus) ([]*model.Framework, error)
	Replace(ctx context.Context, f *model.Framework) error
	Delete(ctx context.Context, id string) error
}

type frameworkRepo struct {
	collection *mongo.Collection
}

// NewFrameworkRepo creates a new framework repository
func NewFrameworkRepo(db *mongo.Database) FrameworkRepo {
	return &frameworkRepo{
		collection: db.Collection("frameworks"),
	}
}

func (r *frameworkRepo) Create(ctx context.Context, f *model.Framework) (string, error) {
	now := time.Now()
	f.CreatedAt = now
	f.UpdatedAt = now
	f.LastModified = now

	if _, err := r.collection.InsertOne(ctx, f); err != nil {
		return "", err
	}
	return f.ID, nil
}

func (r *frameworkRepo) GetByID(ctx context.Context, id string) (*model.Framework, error) {
	var f model.Framework
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *frameworkRepo) List(ctx context.Context) ([]*model.Framework, error) {
	return r.find(ctx, bson.M{})
}

func (r *frameworkRepo) ListByStatus(ctx context.Context, status model.FrameworkStatus) ([]*model.Framework, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *frameworkRepo) find(ctx context.Context, filter bson.M) ([]*model.Framework, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var frameworks []*model.Framework
	if err := cursor.All(ctx, &frameworks); err != nil {
		return nil, err
	}
	return frameworks, nil
}

// Replace overwrites the whole document. Last write wins; there is no
// version token, so concurrent editors silently overwrite each other.
func (r *frameworkRepo) Replace(ctx context.Context, f *model.Framework) error {
	f.UpdatedAt = time.Now()
	f.LastModified = f.UpdatedAt

	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": f.ID}, f)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *frameworkRepo) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
