package models

import "time"

// LearningPath is a catalog entry in the learning_paths collection. Enrolled
// is a fire-and-forget counter with no per-user uniqueness.
type LearningPath struct {
	ID          string `json:"id"          bson:"id"`
	Title       string `json:"title"       bson:"title"`
	Description string `json:"description" bson:"description"`
	Difficulty  string `json:"difficulty"  bson:"difficulty"`
	Duration    string `json:"duration"    bson:"duration"`
	Modules     int    `json:"modules"     bson:"modules"`
	Enrolled    int    `json:"enrolled"    bson:"enrolled"`
}

// Build is a user-submitted gallery entry. Builder is a denormalized snapshot
// of the author's name at creation time.
type Build struct {
	ID        string    `json:"id"         bson:"id"`
	Title     string    `json:"title"      bson:"title"`
	Builder   string    `json:"builder"    bson:"builder"`
	BuilderID string    `json:"builder_id" bson:"builder_id"`
	Image     string    `json:"image"      bson:"image"`
	Specs     string    `json:"specs"      bson:"specs"`
	Likes     int       `json:"likes"      bson:"likes"`
	Date      time.Time `json:"date"       bson:"date"`
}

// BuildCreate is the JSON body for POST /api/builds.
type BuildCreate struct {
	Title string `json:"title"`
	Image string `json:"image"`
	Specs string `json:"specs"`
}

// Event is a community event with bounded capacity. Invariant:
// Attendees == len(RegisteredUsers) at all times, never above MaxAttendees.
type Event struct {
	ID              string   `json:"id"               bson:"id"`
	Title           string   `json:"title"            bson:"title"`
	Date            string   `json:"date"             bson:"date"`
	Time            string   `json:"time"             bson:"time"`
	Location        string   `json:"location"         bson:"location"`
	Image           string   `json:"image"            bson:"image"`
	Attendees       int      `json:"attendees"        bson:"attendees"`
	MaxAttendees    int      `json:"maxAttendees"     bson:"maxAttendees"`
	Description     string   `json:"description"      bson:"description"`
	RegisteredUsers []string `json:"registered_users" bson:"registered_users"`
}

// ForumTopic is a discussion thread. Replies and LastActivity move together
// with each new ForumReply.
type ForumTopic struct {
	ID           string    `json:"id"           bson:"id"`
	Title        string    `json:"title"        bson:"title"`
	Author       string    `json:"author"       bson:"author"`
	AuthorID     string    `json:"author_id"    bson:"author_id"`
	Category     string    `json:"category"     bson:"category"`
	Replies      int       `json:"replies"      bson:"replies"`
	Views        int       `json:"views"        bson:"views"`
	LastActivity time.Time `json:"lastActivity" bson:"lastActivity"`
	IsPinned     bool      `json:"isPinned"     bson:"isPinned"`
	CreatedAt    time.Time `json:"created_at"   bson:"created_at"`
}

// ForumTopicCreate is the JSON body for POST /api/forum/topics.
type ForumTopicCreate struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

// ForumReply is a single post under a topic.
type ForumReply struct {
	ID        string    `json:"id"         bson:"id"`
	TopicID   string    `json:"topic_id"   bson:"topic_id"`
	Author    string    `json:"author"     bson:"author"`
	AuthorID  string    `json:"author_id"  bson:"author_id"`
	Content   string    `json:"content"    bson:"content"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// ForumReplyCreate is the JSON body for POST /api/forum/topics/{id}/reply.
type ForumReplyCreate struct {
	Content string `json:"content"`
}
