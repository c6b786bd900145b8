// ABOUTME: HTTP handlers for the post CRUD surface
// ABOUTME: Listings are paginated newest-first; detail reads include rendered HTML

package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/2389/coven-board/internal/auth"
	"github.com/2389/coven-board/internal/board"
	"github.com/2389/coven-board/internal/store"
)

type createPostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}

type updatePostRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	ImageURL *string `json:"imageUrl"`
}

type postResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	ContentHTML  string `json:"contentHtml,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
	AuthorUserID string `json:"authorUserId"`
	AuthorName   string `json:"authorName"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

type postPageResponse struct {
	Posts []postResponse `json:"posts"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
	Total int            `json:"total"`
}

func postJSON(p *store.Post) postResponse {
	return postResponse{
		ID:           p.ID,
		Title:        p.Title,
		Content:      p.Content,
		ImageURL:     p.ImageURL,
		AuthorUserID: p.AuthorUserID,
		AuthorName:   p.AuthorName,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    p.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	post, err := s.posts.Create(r.Context(), auth.PrincipalFromContext(r.Context()), req.Title, req.Content, req.ImageURL)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, postJSON(post))
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	post, err := s.posts.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	resp := postJSON(post)
	resp.ContentHTML = s.renderMarkdown(post.Content)
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 0)
	size := queryInt(r, "size", board.DefaultPageSize)

	result, err := s.posts.List(r.Context(), page, size)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	resp := postPageResponse{
		Posts: make([]postResponse, 0, len(result.Posts)),
		Page:  result.Page,
		Size:  result.Size,
		Total: result.Total,
	}
	for _, p := range result.Posts {
		resp.Posts = append(resp.Posts, postJSON(p))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	var req updatePostRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	post, err := s.posts.Update(r.Context(), auth.PrincipalFromContext(r.Context()), r.PathValue("id"), board.PostUpdate{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, postJSON(post))
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	if err := s.posts.Delete(r.Context(), auth.PrincipalFromContext(r.Context()), r.PathValue("id")); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or unparseable.
func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
