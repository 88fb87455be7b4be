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

// BuildStore handles the builds collection.
type BuildStore struct {
	col *mongo.Collection
}

func NewBuildStore(db *mongo.Database) *BuildStore {
	return &BuildStore{col: db.Collection(colBuilds)}
}

// List returns builds newest-first with offset/limit pagination.
func (s *BuildStore) List(ctx context.Context, limit, offset int) ([]models.Build, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list builds: %w", err)
	}
	defer cur.Close(ctx)

	builds := []models.Build{}
	if err := cur.All(ctx, &builds); err != nil {
		return nil, fmt.Errorf("decode builds: %w", err)
	}
	return builds, nil
}

func (s *BuildStore) Insert(ctx context.Context, b *models.Build) error {
	if _, err := s.col.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("insert build: %w", err)
	}
	return nil
}

// Like increments the likes counter and returns the updated build. Like
// enrollment, there is no per-user uniqueness.
func (s *BuildStore) Like(ctx context.Context, id string) (*models.Build, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var b models.Build
	err := s.col.FindOneAndUpdate(ctx, byID(id), bson.M{"$inc": bson.M{"likes": 1}}, opts).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("build")
	}
	if err != nil {
		return nil, fmt.Errorf("like build: %w", err)
	}
	return &b, nil
}
