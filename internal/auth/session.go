package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/switchback8195-code/Linkandlearnlabs/internal/apperror"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/logger"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/models"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/store"
)

const (
	SessionTTL    = 7 * 24 * time.Hour
	SessionCookie = "session_token"
)

// Users is the slice of the user gateway the authority needs.
type Users interface {
	Insert(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// Sessions is the slice of the session gateway the authority needs.
type Sessions interface {
	Insert(ctx context.Context, s *models.Session) error
	GetByToken(ctx context.Context, token string) (*models.Session, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteByUser(ctx context.Context, userID string) error
}

// Exchanger converts an external session-id into a verified identity.
type Exchanger interface {
	Exchange(ctx context.Context, sessionID string) (*Identity, error)
}

// Authority owns session lifecycle: login creates sessions, ResolveCaller
// authenticates requests against them, Logout tears them down. A session is
// usable only while its row exists and expires_at is in the future; expiry
// is enforced lazily by deleting the row on first access past it.
type Authority struct {
	users    Users
	sessions Sessions
	identity Exchanger
	now      func() time.Time
}

func NewAuthority(users Users, sessions Sessions, identity Exchanger) *Authority {
	return &Authority{users: users, sessions: sessions, identity: identity, now: time.Now}
}

// ResolveCaller authenticates a request. The credential is taken from the
// session cookie first, then from an Authorization bearer header. The four
// rejection reasons all map to 401 at the HTTP surface but stay distinct
// here for diagnostics.
func (a *Authority) ResolveCaller(r *http.Request) (*models.User, error) {
	ctx := r.Context()

	token := ""
	if c, err := r.Cookie(SessionCookie); err == nil {
		token = c.Value
	}
	if token == "" {
		if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
			token = strings.TrimPrefix(h, "Bearer ")
		}
	}
	if token == "" {
		return nil, apperror.Auth(apperror.ErrUnauthenticated, "not authenticated")
	}

	sess, err := a.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, apperror.Auth(apperror.ErrInvalidSession, "invalid session")
	}

	if sess.ExpiresAt.Before(a.now()) {
		// Self-cleaning read path: the stale row is removed so it cannot
		// fail again or linger.
		if err := a.sessions.DeleteByToken(ctx, token); err != nil {
			logger.Log.Errorw("delete expired session", "err", err)
		}
		return nil, apperror.Auth(apperror.ErrSessionExpired, "session expired")
	}

	user, err := a.users.GetByID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.Auth(apperror.ErrUserNotFound, "user not found")
	}

	return user, nil
}

// Login runs the identity handshake: exchange the external session-id, find
// or create the user by email, then record a session valid for SessionTTL.
func (a *Authority) Login(ctx context.Context, externalSessionID string) (*models.User, string, error) {
	id, err := a.identity.Exchange(ctx, externalSessionID)
	if err != nil {
		return nil, "", err
	}

	user, err := a.findOrCreateUser(ctx, id)
	if err != nil {
		return nil, "", err
	}

	now := a.now()
	sess := &models.Session{
		SessionToken: id.SessionToken,
		UserID:       user.ID,
		ExpiresAt:    now.Add(SessionTTL),
		CreatedAt:    now,
	}
	if err := a.sessions.Insert(ctx, sess); err != nil {
		return nil, "", err
	}

	return user, id.SessionToken, nil
}

// findOrCreateUser is first-writer-wins: if two first-time logins for the
// same email race, the unique email index rejects the second insert and we
// fall back to reading the winner's row.
func (a *Authority) findOrCreateUser(ctx context.Context, id *Identity) (*models.User, error) {
	user, err := a.users.GetByEmail(ctx, id.Email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user = &models.User{
		ID:            uuid.New().String(),
		Email:         id.Email,
		Name:          id.Name,
		Picture:       id.Picture,
		Joined:        a.now(),
		CommunityRank: "Bronze",
	}
	if err := a.users.Insert(ctx, user); err != nil {
		if store.IsDuplicateKey(err) {
			winner, gerr := a.users.GetByEmail(ctx, id.Email)
			if gerr != nil {
				return nil, gerr
			}
			if winner != nil {
				return winner, nil
			}
		}
		return nil, err
	}
	return user, nil
}

// Logout revokes every session the user holds, across all devices. Deleting
// nothing is still success, so calling it twice is fine.
func (a *Authority) Logout(ctx context.Context, userID string) error {
	return a.sessions.DeleteByUser(ctx, userID)
}
