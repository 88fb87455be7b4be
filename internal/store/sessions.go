package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/switchback8195-code/Linkandlearnlabs/internal/models"
)

// SessionStore handles the sessions collection. Expiry is the Session
// Authority's concern; this type only reads and deletes rows.
type SessionStore struct {
	col *mongo.Collection
}

func NewSessionStore(db *mongo.Database) *SessionStore {
	return &SessionStore{col: db.Collection(colSessions)}
}

func (s *SessionStore) Insert(ctx context.Context, sess *models.Session) error {
	if _, err := s.col.InsertOne(ctx, sess); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetByToken returns the session for a token, or (nil, nil) if none.
func (s *SessionStore) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	var sess models.Session
	err := s.col.FindOne(ctx, bson.M{"session_token": token}).Decode(&sess)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	return &sess, nil
}

func (s *SessionStore) DeleteByToken(ctx context.Context, token string) error {
	if _, err := s.col.DeleteOne(ctx, bson.M{"session_token": token}); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteByUser removes every session owned by the user. Deleting zero rows is
// not an error, which is what makes logout idempotent.
func (s *SessionStore) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := s.col.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("delete sessions for user: %w", err)
	}
	return nil
}
