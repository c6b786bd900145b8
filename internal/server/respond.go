// ABOUTME: JSON response helpers and error-to-status mapping
// ABOUTME: All handlers reply through writeJSON / sendJSONError

package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2389/coven-board/internal/board"
	"github.com/2389/coven-board/internal/store"
)

// errorResponse is the uniform error body for all non-2xx replies.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) sendJSONError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps service and store errors to HTTP statuses.
// Unrecognized errors are logged and masked as a 500.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, board.ErrValidation):
		s.sendJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, board.ErrForbidden):
		s.sendJSONError(w, http.StatusForbidden, "only the author may perform this action")
	case errors.Is(err, board.ErrUserNotFound), errors.Is(err, store.ErrNotFound):
		s.sendJSONError(w, http.StatusNotFound, "not found")
	case errors.Is(err, store.ErrDuplicateUser):
		s.sendJSONError(w, http.StatusConflict, "user already exists")
	default:
		s.logger.Error("request failed", "error", err)
		s.sendJSONError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON parses the request body into v, replying 400 on failure.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
