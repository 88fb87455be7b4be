package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/switchback8195-code/Linkandlearnlabs/internal/apperror"
)

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"unauthenticated", apperror.Auth(apperror.ErrUnauthenticated, "not authenticated"), http.StatusUnauthorized, "not authenticated"},
		{"invalid session", apperror.Auth(apperror.ErrInvalidSession, "invalid session"), http.StatusUnauthorized, "invalid session"},
		{"expired session", apperror.Auth(apperror.ErrSessionExpired, "session expired"), http.StatusUnauthorized, "session expired"},
		{"upstream auth", apperror.Auth(apperror.ErrUpstreamAuth, "invalid session_id"), http.StatusUnauthorized, "invalid session_id"},
		{"not found", apperror.NotFound("event"), http.StatusNotFound, "event not found"},
		{"conflict is 400 not 409", apperror.Conflict("event is full"), http.StatusBadRequest, "event is full"},
		{"unknown error", errors.New("db exploded"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Error(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body ErrorResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body.Error)
		})
	}
}

func TestJSONSetsContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"hello":"world"}`, rec.Body.String())
}
