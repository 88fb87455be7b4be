package community

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/switchback8195-code/Linkandlearnlabs/internal/logger"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/middleware"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/models"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/web"
)

const maxImageBytes = 10 << 20

// ListBuilds returns builds newest-first with limit/offset pagination.
func (h *Handler) ListBuilds(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 10)
	offset := queryInt(r, "offset", 0)

	builds, err := h.builds.List(r.Context(), limit, offset)
	if err != nil {
		web.Error(w, err)
		return
	}
	web.JSON(w, http.StatusOK, builds)
}

// CreateBuild inserts a build authored by the caller and bumps the caller's
// buildsShared counter. The builder name is snapshotted at creation time.
func (h *Handler) CreateBuild(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	var req models.BuildCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Title == "" {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "title is required"})
		return
	}

	build := &models.Build{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Builder:   user.Name,
		BuilderID: user.ID,
		Image:     req.Image,
		Specs:     req.Specs,
		Date:      time.Now().UTC(),
	}

	if err := h.builds.Insert(r.Context(), build); err != nil {
		web.Error(w, err)
		return
	}

	// buildsShared moves only here, never on likes.
	if err := h.users.IncrementBuildsShared(r.Context(), user.ID); err != nil {
		logger.Log.Errorw("increment buildsShared", "user_id", user.ID, "err", err)
	}

	web.JSON(w, http.StatusCreated, build)
}

// LikeBuild bumps the build's like counter and returns the updated build.
func (h *Handler) LikeBuild(w http.ResponseWriter, r *http.Request) {
	build, err := h.builds.Like(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.Error(w, err)
		return
	}
	web.JSON(w, http.StatusOK, build)
}

// UploadBuildImage stores a gallery image and returns the path clients put
// in the build's image field.
func (h *Handler) UploadBuildImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "image file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		web.Error(w, err)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	key := uuid.New().String()
	if err := h.images.Upload(r.Context(), key, data, contentType); err != nil {
		web.Error(w, err)
		return
	}

	web.JSON(w, http.StatusCreated, map[string]string{"image": "/api/builds/images/" + key})
}

// GetBuildImage streams a stored gallery image.
func (h *Handler) GetBuildImage(w http.ResponseWriter, r *http.Request) {
	data, contentType, err := h.images.Download(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		web.Error(w, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Write(data)
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return fallback
}
