// Package web holds the JSON response helpers shared by every handler
// package, so each error class maps to the same status and body shape
// everywhere.
package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/switchback8195-code/Linkandlearnlabs/internal/apperror"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/logger"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Log.Errorw("encode response", "err", err)
		}
	}
}

// Error maps a domain error to its HTTP status. Authentication failures are
// one indistinguishable 401 class to the client; conflicts are 400 to match
// the original API contract rather than 409.
func Error(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		switch {
		case apperror.IsAuthError(err):
			JSON(w, http.StatusUnauthorized, ErrorResponse{Error: appErr.Message})
			return
		case errors.Is(err, apperror.ErrNotFound):
			JSON(w, http.StatusNotFound, ErrorResponse{Error: appErr.Message})
			return
		case errors.Is(err, apperror.ErrConflict):
			JSON(w, http.StatusBadRequest, ErrorResponse{Error: appErr.Message})
			return
		}
	}

	logger.Log.Errorw("internal error", "err", err)
	JSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
