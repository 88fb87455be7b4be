// Package store contains the typed collection gateways over MongoDB plus the
// Redis and MinIO clients. Every entity is keyed by its string "id" field,
// not the driver's native _id.
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	colUsers          = "users"
	colSessions       = "sessions"
	colLearningPaths  = "learning_paths"
	colBuilds         = "builds"
	colEvents         = "events"
	colForumTopics    = "forum_topics"
	colForumReplies   = "forum_replies"
	colAffiliateTools = "affiliate_tools"
	colVideos         = "videos"
)

// Connect opens a MongoDB client and verifies the connection.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the indexes the gateways rely on. The unique index on
// users.email is load-bearing: concurrent first-time logins for the same
// email race at insert, and the index is what makes first-writer-wins hold.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	idx := map[string][]mongo.IndexModel{
		colUsers: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		colSessions: {
			{Keys: bson.D{{Key: "session_token", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		},
		colLearningPaths:  {{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique}},
		colBuilds:         {{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique}},
		colEvents:         {{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique}},
		colForumTopics:    {{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique}},
		colForumReplies:   {{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique}},
		colAffiliateTools: {{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique}},
		colVideos:         {{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique}},
	}

	for col, models := range idx {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", col, err)
		}
	}
	return nil
}

// IsDuplicateKey reports whether err is a unique-index violation, so callers
// outside this package don't need to import the driver.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

func byID(id string) bson.M {
	return bson.M{"id": id}
}
