package community

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/switchback8195-code/Linkandlearnlabs/internal/web"
)

// ListPaths returns all learning paths.
func (h *Handler) ListPaths(w http.ResponseWriter, r *http.Request) {
	paths, err := h.paths.List(r.Context())
	if err != nil {
		web.Error(w, err)
		return
	}
	web.JSON(w, http.StatusOK, paths)
}

// GetPath returns a single learning path.
func (h *Handler) GetPath(w http.ResponseWriter, r *http.Request) {
	path, err := h.paths.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.Error(w, err)
		return
	}
	web.JSON(w, http.StatusOK, path)
}

// EnrollPath bumps the path's enrolled counter and returns the updated path.
func (h *Handler) EnrollPath(w http.ResponseWriter, r *http.Request) {
	path, err := h.paths.Enroll(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.Error(w, err)
		return
	}
	web.JSON(w, http.StatusOK, path)
}
