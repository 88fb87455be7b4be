package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/switchback8195-code/Linkandlearnlabs/internal/apperror"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/models"
)

// LearningPathStore handles the learning_paths collection.
type LearningPathStore struct {
	col *mongo.Collection
}

func NewLearningPathStore(db *mongo.Database) *LearningPathStore {
	return &LearningPathStore{col: db.Collection(colLearningPaths)}
}

func (s *LearningPathStore) List(ctx context.Context) ([]models.LearningPath, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list learning paths: %w", err)
	}
	defer cur.Close(ctx)

	paths := []models.LearningPath{}
	if err := cur.All(ctx, &paths); err != nil {
		return nil, fmt.Errorf("decode learning paths: %w", err)
	}
	return paths, nil
}

func (s *LearningPathStore) GetByID(ctx context.Context, id string) (*models.LearningPath, error) {
	var p models.LearningPath
	err := s.col.FindOne(ctx, byID(id)).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("learning path")
	}
	if err != nil {
		return nil, fmt.Errorf("find learning path: %w", err)
	}
	return &p, nil
}

// Enroll increments the enrolled counter and returns the updated path. There
// is deliberately no per-user uniqueness: repeated calls double-count.
func (s *LearningPathStore) Enroll(ctx context.Context, id string) (*models.LearningPath, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.LearningPath
	err := s.col.FindOneAndUpdate(ctx, byID(id), bson.M{"$inc": bson.M{"enrolled": 1}}, opts).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("learning path")
	}
	if err != nil {
		return nil, fmt.Errorf("enroll learning path: %w", err)
	}
	return &p, nil
}
