// Package catalog implements CRUD over the affiliate-product and video
// collections. Mutations require a logged-in caller; there is intentionally
// no role tier beyond that.
package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/switchback8195-code/Linkandlearnlabs/internal/models"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/web"
)

// AffiliateTools is the slice of the affiliate-tool gateway the handlers need.
type AffiliateTools interface {
	List(ctx context.Context) ([]models.AffiliateTool, error)
	GetByID(ctx context.Context, id string) (*models.AffiliateTool, error)
	Insert(ctx context.Context, t *models.AffiliateTool) error
	Update(ctx context.Context, t *models.AffiliateTool) error
	Delete(ctx context.Context, id string) error
}

// Videos is the slice of the video gateway the handlers need.
type Videos interface {
	List(ctx context.Context) ([]models.Video, error)
	GetByID(ctx context.Context, id string) (*models.Video, error)
	Insert(ctx context.Context, v *models.Video) error
	Update(ctx context.Context, v *models.Video) error
	Delete(ctx context.Context, id string) error
}

// Handler holds the catalog HTTP handlers.
type Handler struct {
	tools  AffiliateTools
	videos Videos
}

func NewHandler(tools AffiliateTools, videos Videos) *Handler {
	return &Handler{tools: tools, videos: videos}
}

func (h *Handler) ListTools(w http.ResponseWriter, r *http.Request) {
	tools, err := h.tools.List(r.Context())
	if err != nil {
		web.Error(w, err)
		return
	}
	web.JSON(w, http.StatusOK, tools)
}

func (h *Handler) GetTool(w http.ResponseWriter, r *http.Request) {
	tool, err := h.tools.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.Error(w, err)
		return
	}
	web.JSON(w, http.StatusOK, tool)
}

func (h *Handler) CreateTool(w http.ResponseWriter, r *http.Request) {
	var tool models.AffiliateTool
	if err := json.NewDecoder(r.Body).Decode(&tool); err != nil {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "invalid request body"})
		return
	}
	if tool.Name == "" {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "name is required"})
		return
	}
	if tool.ID == "" {
		tool.ID = uuid.New().String()
	}

	if err := h.tools.Insert(r.Context(), &tool); err != nil {
		web.Error(w, err)
		return
	}
	web.JSON(w, http.StatusCreated, tool)
}

func (h *Handler) UpdateTool(w http.ResponseWriter, r *http.Request) {
	var tool models.AffiliateTool
	if err := json.NewDecoder(r.Body).Decode(&tool); err != nil {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "invalid request body"})
		return
	}
	tool.ID = chi.URLParam(r, "id")

	if err := h.tools.Update(r.Context(), &tool); err != nil {
		web.Error(w, err)
		return
	}
	web.JSON(w, http.StatusOK, tool)
}

func (h *Handler) DeleteTool(w http.ResponseWriter, r *http.Request) {
	if err := h.tools.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		web.Error(w, err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) ListVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.videos.List(r.Context())
	if err != nil {
		web.Error(w, err)
		return
	}
	web.JSON(w, http.StatusOK, videos)
}

func (h *Handler) GetVideo(w http.ResponseWriter, r *http.Request) {
	video, err := h.videos.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.Error(w, err)
		return
	}
	web.JSON(w, http.StatusOK, video)
}

func (h *Handler) CreateVideo(w http.ResponseWriter, r *http.Request) {
	var video models.Video
	if err := json.NewDecoder(r.Body).Decode(&video); err != nil {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "invalid request body"})
		return
	}
	if video.Title == "" {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "title is required"})
		return
	}
	if video.ID == "" {
		video.ID = uuid.New().String()
	}
	if video.Date.IsZero() {
		video.Date = time.Now().UTC()
	}

	if err := h.videos.Insert(r.Context(), &video); err != nil {
		web.Error(w, err)
		return
	}
	web.JSON(w, http.StatusCreated, video)
}

func (h *Handler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	var video models.Video
	if err := json.NewDecoder(r.Body).Decode(&video); err != nil {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "invalid request body"})
		return
	}
	video.ID = chi.URLParam(r, "id")

	if err := h.videos.Update(r.Context(), &video); err != nil {
		web.Error(w, err)
		return
	}
	web.JSON(w, http.StatusOK, video)
}

func (h *Handler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	if err := h.videos.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		web.Error(w, err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
