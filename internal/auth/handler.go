package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/switchback8195-code/Linkandlearnlabs/internal/apperror"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/middleware"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/models"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/web"
)

// Handler holds the auth HTTP handlers.
type Handler struct {
	authority *Authority
}

func NewHandler(authority *Authority) *Handler {
	return &Handler{authority: authority}
}

// SessionResponse is the body of a successful login.
type SessionResponse struct {
	User         *models.User `json:"user"`
	SessionToken string       `json:"session_token"`
}

// CreateSession exchanges an external session-id for a logged-in session.
// The token is set as a cookie for browsers and echoed in the body for
// clients that send it as a bearer header instead.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.SessionCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SessionID == "" {
		web.JSON(w, http.StatusBadRequest, web.ErrorResponse{Error: "session_id is required"})
		return
	}

	user, token, err := h.authority.Login(r.Context(), req.SessionID)
	if err != nil {
		web.Error(w, err)
		return
	}

	// Cross-site capable: the frontend is served from a different origin.
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		MaxAge:   int(SessionTTL / time.Second),
	})

	web.JSON(w, http.StatusOK, SessionResponse{User: user, SessionToken: token})
}

// Me returns the authenticated caller.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		web.Error(w, apperror.Auth(apperror.ErrUnauthenticated, "not authenticated"))
		return
	}
	web.JSON(w, http.StatusOK, user)
}

// Logout revokes all of the caller's sessions and clears the cookie.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		web.Error(w, apperror.Auth(apperror.ErrUnauthenticated, "not authenticated"))
		return
	}

	if err := h.authority.Logout(r.Context(), user.ID); err != nil {
		web.Error(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		MaxAge:   -1,
	})

	web.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
