// ABOUTME: HTTP handlers for comments and threaded replies
// ABOUTME: Comments list oldest-first under their post

package server

import (
	"net/http"
	"time"

	"github.com/2389/coven-board/internal/auth"
	"github.com/2389/coven-board/internal/store"
)

type createCommentRequest struct {
	Content  string `json:"content"`
	ParentID string `json:"parentId"`
}

type updateCommentRequest struct {
	Content string `json:"content"`
}

type commentResponse struct {
	ID           string `json:"id"`
	PostID       string `json:"postId"`
	ParentID     string `json:"parentId,omitempty"`
	Content      string `json:"content"`
	AuthorUserID string `json:"authorUserId"`
	AuthorName   string `json:"authorName"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

func commentJSON(c *store.Comment) commentResponse {
	return commentResponse{
		ID:           c.ID,
		PostID:       c.PostID,
		ParentID:     c.ParentID,
		Content:      c.Content,
		AuthorUserID: c.AuthorUserID,
		AuthorName:   c.AuthorName,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    c.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	comment, err := s.comments.Create(r.Context(), auth.PrincipalFromContext(r.Context()), r.PathValue("id"), req.Content, req.ParentID)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, commentJSON(comment))
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	// The post must exist; an empty thread is a 200, an unknown post a 404.
	if _, err := s.posts.Get(r.Context(), r.PathValue("id")); err != nil {
		s.writeServiceError(w, err)
		return
	}

	comments, err := s.comments.ListByPost(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	out := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, commentJSON(c))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleUpdateComment(w http.ResponseWriter, r *http.Request) {
	var req updateCommentRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	comment, err := s.comments.Update(r.Context(), auth.PrincipalFromContext(r.Context()), r.PathValue("id"), req.Content)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, commentJSON(comment))
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	if err := s.comments.Delete(r.Context(), auth.PrincipalFromContext(r.Context()), r.PathValue("id")); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
