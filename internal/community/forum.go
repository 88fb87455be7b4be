package community

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/switchback8195-code/Linkandlearnlabs/internal/middleware"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/models"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/web"
)

// ListTopics returns forum topics by most recent activity, optionally
// filtered by category.
func (h *Handler) ListTopics(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	limit := queryInt(r, "limit", 20)
	offset := queryInt(r, "offset", 0)

	topics, err := h.forum.ListTopics(r.Context(), category, limit, offset)
	if err != nil {
		web.Error(w, err)
		return
	}
	web.JSON(w, http.StatusOK, topics)
}

// CreateTopic starts a new discussion thread authored by the caller.
func (h *Handler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	var req models.ForumTopicCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Title == "" || req.Category == "" {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "title and category are required"})
		return
	}

	now := time.Now().UTC()
	topic := &models.ForumTopic{
		ID:           uuid.New().String(),
		Title:        req.Title,
		Author:       user.Name,
		AuthorID:     user.ID,
		Category:     req.Category,
		LastActivity: now,
		CreatedAt:    now,
	}

	if err := h.forum.InsertTopic(r.Context(), topic); err != nil {
		web.Error(w, err)
		return
	}
	web.JSON(w, http.StatusCreated, topic)
}

// ReplyTopic posts a reply under a topic, moving the topic's reply counter
// and lastActivity with it.
func (h *Handler) ReplyTopic(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	var req models.ForumReplyCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Content == "" {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "content is required"})
		return
	}

	reply := &models.ForumReply{
		ID:        uuid.New().String(),
		TopicID:   chi.URLParam(r, "id"),
		Author:    user.Name,
		AuthorID:  user.ID,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.forum.AddReply(r.Context(), reply); err != nil {
		web.Error(w, err)
		return
	}
	web.JSON(w, http.StatusCreated, reply)
}

// ListReplies returns a topic's replies oldest-first.
func (h *Handler) ListReplies(w http.ResponseWriter, r *http.Request) {
	replies, err := h.forum.ListReplies(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.Error(w, err)
		return
	}
	web.JSON(w, http.StatusOK, replies)
}
