// Package community implements the guarded mutations over the community
// resources: learning paths, builds, events, and the forum. Every mutation
// follows the same discipline: existence is checked before any write, and
// compound precondition+effect pairs are pushed down to the store as one
// conditional atomic update.
package community

import (
	"context"

	"github.com/switchback8195-code/Linkandlearnlabs/internal/models"
)

// LearningPaths is the slice of the learning-path gateway the handlers need.
type LearningPaths interface {
	List(ctx context.Context) ([]models.LearningPath, error)
	GetByID(ctx context.Context, id string) (*models.LearningPath, error)
	Enroll(ctx context.Context, id string) (*models.LearningPath, error)
}

// Builds is the slice of the build gateway the handlers need.
type Builds interface {
	List(ctx context.Context, limit, offset int) ([]models.Build, error)
	Insert(ctx context.Context, b *models.Build) error
	Like(ctx context.Context, id string) (*models.Build, error)
}

// Users is the slice of the user gateway the handlers need.
type Users interface {
	IncrementBuildsShared(ctx context.Context, id string) error
}

// Events is the slice of the event gateway the handlers need.
type Events interface {
	List(ctx context.Context) ([]models.Event, error)
	Register(ctx context.Context, eventID, userID string) (*models.Event, error)
}

// Forum is the slice of the forum gateway the handlers need.
type Forum interface {
	ListTopics(ctx context.Context, category string, limit, offset int) ([]models.ForumTopic, error)
	InsertTopic(ctx context.Context, t *models.ForumTopic) error
	AddReply(ctx context.Context, reply *models.ForumReply) error
	ListReplies(ctx context.Context, topicID string) ([]models.ForumReply, error)
}

// Images stores build gallery images.
type Images interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Download(ctx context.Context, key string) ([]byte, string, error)
}

// Handler holds the community HTTP handlers.
type Handler struct {
	paths  LearningPaths
	builds Builds
	users  Users
	events Events
	forum  Forum
	images Images
}

func NewHandler(paths LearningPaths, builds Builds, users Users, events Events, forum Forum, images Images) *Handler {
	return &Handler{
		paths:  paths,
		builds: builds,
		users:  users,
		events: events,
		forum:  forum,
		images: images,
	}
}
