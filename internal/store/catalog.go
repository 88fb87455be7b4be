package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/switchback8195-code/Linkandlearnlabs/internal/apperror"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/models"
)

// AffiliateToolStore handles the affiliate_tools collection.
type AffiliateToolStore struct {
	col *mongo.Collection
}

func NewAffiliateToolStore(db *mongo.Database) *AffiliateToolStore {
	return &AffiliateToolStore{col: db.Collection(colAffiliateTools)}
}

func (s *AffiliateToolStore) List(ctx context.Context) ([]models.AffiliateTool, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list affiliate tools: %w", err)
	}
	defer cur.Close(ctx)

	tools := []models.AffiliateTool{}
	if err := cur.All(ctx, &tools); err != nil {
		return nil, fmt.Errorf("decode affiliate tools: %w", err)
	}
	return tools, nil
}

func (s *AffiliateToolStore) GetByID(ctx context.Context, id string) (*models.AffiliateTool, error) {
	var t models.AffiliateTool
	err := s.col.FindOne(ctx, byID(id)).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("affiliate tool")
	}
	if err != nil {
		return nil, fmt.Errorf("find affiliate tool: %w", err)
	}
	return &t, nil
}

func (s *AffiliateToolStore) Insert(ctx context.Context, t *models.AffiliateTool) error {
	if _, err := s.col.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("insert affiliate tool: %w", err)
	}
	return nil
}

func (s *AffiliateToolStore) Update(ctx context.Context, t *models.AffiliateTool) error {
	res, err := s.col.ReplaceOne(ctx, byID(t.ID), t)
	if err != nil {
		return fmt.Errorf("update affiliate tool: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("affiliate tool")
	}
	return nil
}

func (s *AffiliateToolStore) Delete(ctx context.Context, id string) error {
	res, err := s.col.DeleteOne(ctx, byID(id))
	if err != nil {
		return fmt.Errorf("delete affiliate tool: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperror.NotFound("affiliate tool")
	}
	return nil
}

// VideoStore handles the videos collection.
type VideoStore struct {
	col *mongo.Collection
}

func NewVideoStore(db *mongo.Database) *VideoStore {
	return &VideoStore{col: db.Collection(colVideos)}
}

func (s *VideoStore) List(ctx context.Context) ([]models.Video, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	defer cur.Close(ctx)

	videos := []models.Video{}
	if err := cur.All(ctx, &videos); err != nil {
		return nil, fmt.Errorf("decode videos: %w", err)
	}
	return videos, nil
}

func (s *VideoStore) GetByID(ctx context.Context, id string) (*models.Video, error) {
	var v models.Video
	err := s.col.FindOne(ctx, byID(id)).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("video")
	}
	if err != nil {
		return nil, fmt.Errorf("find video: %w", err)
	}
	return &v, nil
}

func (s *VideoStore) Insert(ctx context.Context, v *models.Video) error {
	if _, err := s.col.InsertOne(ctx, v); err != nil {
		return fmt.Errorf("insert video: %w", err)
	}
	return nil
}

func (s *VideoStore) Update(ctx context.Context, v *models.Video) error {
	res, err := s.col.ReplaceOne(ctx, byID(v.ID), v)
	if err != nil {
		return fmt.Errorf("update video: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("video")
	}
	return nil
}

func (s *VideoStore) Delete(ctx context.Context, id string) error {
	res, err := s.col.DeleteOne(ctx, byID(id))
	if err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperror.NotFound("video")
	}
	return nil
}
