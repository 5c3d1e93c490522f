package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nyuchitech/EducatorEval/internal/model"
)

// TeacherRepo handles MongoDB operations for teachers
type TeacherRepo interface {
	Create(ctx context.Context, t *model.Teacher) (string, error)
	GetByID(ctx context.Context, id string) (*model.Teacher, error)
	List(ctx context.Context) ([]*model.Teacher, error)
	Replace(ctx context.Context, t *model.Teacher) error
	Delete(ctx context.Context, id string) error
}

type teacherRepo struct {
	collection *mongo.Collection
}

// NewTeacherRepo creates a new teacher repository
func NewTeacherRepo(db *mongo.Database) TeacherRepo {
	return &teacherRepo{
		collection: db.Collection("teachers"),
	}
}

func (r *teacherRepo) Create(ctx context.Context, t *model.Teacher) (string, error) {
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, t); err != nil {
		return "", err
	}
	return t.ID, nil
}

func (r *teacherRepo) GetByID(ctx context.Context, id string) (*model.Teacher, error) {
	var t model.Teacher
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *teacherRepo) List(ctx context.Context) ([]*model.Teacher, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var teachers []*model.Teacher
	if err := cursor.All(ctx, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

func (r *teacherRepo) Replace(ctx context.Context, t *model.Teacher) error {
	t.UpdatedAt = time.Now()

	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": t.ID}, t)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *teacherRepo) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
