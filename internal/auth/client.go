package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/switchback8195-code/Linkandlearnlabs/internal/apperror"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/logger"
)

// Identity is what the external provider returns for a valid session-id:
// the caller's verified attributes plus a freshly issued bearer token.
type Identity struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture,omitempty"`
	SessionToken string `json:"session_token"`
}

// Client exchanges an opaque external session-id for a verified identity.
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

// Exchange calls the identity endpoint with the session-id as a credential
// header. Every failure mode — transport error, timeout, non-success status,
// malformed body — collapses to apperror.ErrUpstreamAuth; the cause is logged
// but never surfaced to the caller.
func (c *Client) Exchange(ctx context.Context, sessionID string) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("identity request: %w", err)
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Log.Errorw("identity exchange failed", "err", err)
		return nil, apperror.Auth(apperror.ErrUpstreamAuth, "invalid session_id")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("identity exchange rejected", "status", resp.StatusCode)
		return nil, apperror.Auth(apperror.ErrUpstreamAuth, "invalid session_id")
	}

	var id Identity
	if err := json.NewDecoder(resp.Body).Decode(&id); err != nil {
		logger.Log.Errorw("identity exchange decode failed", "err", err)
		return nil, apperror.Auth(apperror.ErrUpstreamAuth, "invalid session_id")
	}
	if id.Email == "" || id.SessionToken == "" {
		logger.Log.Errorw("identity exchange returned incomplete identity")
		return nil, apperror.Auth(apperror.ErrUpstreamAuth, "invalid session_id")
	}

	return &id, nil
}
