package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/switchback8195-code/Linkandlearnlabs/internal/apperror"
)

func TestExchangeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "ext-session-123", r.Header.Get("X-Session-ID"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"email": "ada@example.com",
			"name": "Ada",
			"picture": "https://example.com/ada.png",
			"session_token": "tok-456"
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 10*time.Second)
	id, err := c.Exchange(context.Background(), "ext-session-123")

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", id.Email)
	assert.Equal(t, "Ada", id.Name)
	assert.Equal(t, "https://example.com/ada.png", id.Picture)
	assert.Equal(t, "tok-456", id.SessionToken)
}

func TestExchangeFailuresCollapseToUpstreamAuth(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "provider rejects the session id",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
		},
		{
			name: "provider errors",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{not json`))
			},
		},
		{
			name: "incomplete identity",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"name":"Ada"}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewClient(srv.URL, 10*time.Second)
			id, err := c.Exchange(context.Background(), "whatever")

			assert.Nil(t, id)
			assert.True(t, errors.Is(err, apperror.ErrUpstreamAuth))
		})
	}
}

func TestExchangeTransportError(t *testing.T) {
	// Point at a server that is already gone.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, time.Second)
	id, err := c.Exchange(context.Background(), "whatever")

	assert.Nil(t, id)
	assert.True(t, errors.Is(err, apperror.ErrUpstreamAuth))
}
