package community

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/switchback8195-code/Linkandlearnlabs/internal/middleware"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/web"
)

// ListEvents returns all events.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.List(r.Context())
	if err != nil {
		web.Error(w, err)
		return
	}
	web.JSON(w, http.StatusOK, events)
}

// RegisterEvent adds the caller to an event. Rejections, in order of
// precedence: event missing (404), caller already registered (400), event at
// capacity (400).
func (h *Handler) RegisterEvent(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	event, err := h.events.Register(r.Context(), chi.URLParam(r, "id"), user.ID)
	if err != nil {
		web.Error(w, err)
		return
	}
	web.JSON(w, http.StatusOK, event)
}
