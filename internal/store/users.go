package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/switchback8195-code/Linkandlearnlabs/internal/models"
)

// UserStore handles the users collection.
type UserStore struct {
	col *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{col: db.Collection(colUsers)}
}

// Insert adds a new user. A unique-index violation on email surfaces as a
// duplicate-key error; callers detect it with IsDuplicateKey.
func (s *UserStore) Insert(ctx context.Context, u *models.User) error {
	if _, err := s.col.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return err
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByEmail returns the user with the given email, or (nil, nil) if none.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

// GetByID returns the user with the given id, or (nil, nil) if none.
func (s *UserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.col.FindOne(ctx, byID(id)).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &u, nil
}

// IncrementBuildsShared bumps the user's buildsShared counter by one.
func (s *UserStore) IncrementBuildsShared(ctx context.Context, id string) error {
	_, err := s.col.UpdateOne(ctx, byID(id), bson.M{"$inc": bson.M{"buildsShared": 1}})
	if err != nil {
		return fmt.Errorf("increment buildsShared: %w", err)
	}
	return nil
}
