package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/switchback8195-code/Linkandlearnlabs/internal/apperror"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/models"
)

// ForumStore handles the forum_topics and forum_replies collections.
type ForumStore struct {
	topics  *mongo.Collection
	replies *mongo.Collection
}

func NewForumStore(db *mongo.Database) *ForumStore {
	return &ForumStore{
		topics:  db.Collection(colForumTopics),
		replies: db.Collection(colForumReplies),
	}
}

// ListTopics returns topics by most recent activity, optionally filtered by
// category.
func (s *ForumStore) ListTopics(ctx context.Context, category string, limit, offset int) ([]models.ForumTopic, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "lastActivity", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cur, err := s.topics.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list forum topics: %w", err)
	}
	defer cur.Close(ctx)

	topics := []models.ForumTopic{}
	if err := cur.All(ctx, &topics); err != nil {
		return nil, fmt.Errorf("decode forum topics: %w", err)
	}
	return topics, nil
}

func (s *ForumStore) InsertTopic(ctx context.Context, t *models.ForumTopic) error {
	if _, err := s.topics.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("insert forum topic: %w", err)
	}
	return nil
}

// AddReply bumps the topic's reply counter and lastActivity in one update,
// then inserts the reply row. The topic update doubles as the existence
// check: a missing topic rejects before anything is written.
func (s *ForumStore) AddReply(ctx context.Context, reply *models.ForumReply) error {
	res, err := s.topics.UpdateOne(ctx, byID(reply.TopicID), bson.M{
		"$inc": bson.M{"replies": 1},
		"$set": bson.M{"lastActivity": reply.CreatedAt},
	})
	if err != nil {
		return fmt.Errorf("update forum topic: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("topic")
	}

	if _, err := s.replies.InsertOne(ctx, reply); err != nil {
		return fmt.Errorf("insert forum reply: %w", err)
	}
	return nil
}

// ListReplies returns a topic's replies oldest-first.
func (s *ForumStore) ListReplies(ctx context.Context, topicID string) ([]models.ForumReply, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.replies.Find(ctx, bson.M{"topic_id": topicID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list forum replies: %w", err)
	}
	defer cur.Close(ctx)

	replies := []models.ForumReply{}
	if err := cur.All(ctx, &replies); err != nil {
		return nil, fmt.Errorf("decode forum replies: %w", err)
	}
	return replies, nil
}
