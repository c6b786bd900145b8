// ABOUTME: HTTP handlers for registration, login, and user profiles
// ABOUTME: Registration replies with a login response so clients get a token immediately

package server

import (
	"errors"
	"net/http"

	"github.com/2389/coven-board/internal/auth"
	"github.com/2389/coven-board/internal/board"
)

type registerRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}

type profileResponse struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

func profileJSON(p *board.Profile) profileResponse {
	return profileResponse{ID: p.ID, UserID: p.UserID, Name: p.Name}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	if _, err := s.users.Register(r.Context(), req.UserID, req.Password, req.Name); err != nil {
		s.writeServiceError(w, err)
		return
	}

	// Log the new account in immediately so the client gets a token back.
	result, err := s.users.Login(r.Context(), req.UserID, req.Password)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.logger.Info("user registered", "user_id", req.UserID)
	s.writeJSON(w, http.StatusCreated, loginResponse{
		ID:     result.ID,
		UserID: result.UserID,
		Name:   result.Name,
		Token:  result.Token,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	result, err := s.users.Login(r.Context(), req.UserID, req.Password)
	switch {
	case errors.Is(err, board.ErrUserNotFound):
		s.sendJSONError(w, http.StatusUnauthorized, "user not found")
		return
	case errors.Is(err, board.ErrBadCredentials):
		s.sendJSONError(w, http.StatusUnauthorized, "invalid credentials")
		return
	case err != nil:
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, loginResponse{
		ID:     result.ID,
		UserID: result.UserID,
		Name:   result.Name,
		Token:  result.Token,
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	profile, err := s.users.Me(r.Context(), auth.PrincipalFromContext(r.Context()))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, profileJSON(profile))
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.users.ListUsers(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	out := make([]profileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, profileJSON(p))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	profile, err := s.users.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, profileJSON(profile))
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	profile, err := s.users.UpdateUser(r.Context(), auth.PrincipalFromContext(r.Context()), r.PathValue("id"), board.UserUpdate{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, profileJSON(profile))
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.users.DeleteUser(r.Context(), auth.PrincipalFromContext(r.Context()), r.PathValue("id")); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
