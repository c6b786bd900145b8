// ABOUTME: Post business logic with author-only mutation enforcement
// ABOUTME: Ownership is checked after the post is loaded, never before

package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/2389/coven-board/internal/auth"
	"github.com/2389/coven-board/internal/store"
)

// DefaultPageSize is used when a post listing does not specify a size.
const DefaultPageSize = 10

// MaxPageSize bounds a single post listing.
const MaxPageSize = 100

// PostPage is one window of the newest-first post listing.
type PostPage struct {
	Posts []*store.Post
	Page  int
	Size  int
	Total int
}

// PostService handles post CRUD with ownership enforcement.
type PostService struct {
	store  store.Store
	logger *slog.Logger
}

// NewPostService creates a PostService backed by the given store.
func NewPostService(s store.Store, logger *slog.Logger) *PostService {
	return &PostService{
		store:  s,
		logger: logger.With("component", "posts"),
	}
}

// Create makes a new post authored by the principal.
func (s *PostService) Create(ctx context.Context, p *auth.Principal, title, content, imageURL string) (*store.Post, error) {
	if p == nil || !p.Authenticated {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	author, err := s.store.GetUserByUserID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("looking up author: %w", err)
	}

	now := time.Now().UTC()
	post := &store.Post{
		ID:        uuid.NewString(),
		AuthorID:  author.ID,
		Title:     title,
		Content:   content,
		ImageURL:  imageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	post.AuthorUserID = author.UserID
	post.AuthorName = author.Name

	s.logger.Info("created post", "id", post.ID, "author", author.UserID)
	return post, nil
}

// Get returns a single post.
func (s *PostService) Get(ctx context.Context, id string) (*store.Post, error) {
	return s.store.GetPost(ctx, id)
}

// List returns one page of posts, newest first. Page numbering starts at 0.
func (s *PostService) List(ctx context.Context, page, size int) (*PostPage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	posts, err := s.store.ListPosts(ctx, size, page*size)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	total, err := s.store.CountPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting posts: %w", err)
	}

	return &PostPage{
		Posts: posts,
		Page:  page,
		Size:  size,
		Total: total,
	}, nil
}

// PostUpdate carries the fields of a post update. Title and content are
// replaced; the image URL is only replaced when non-nil.
type PostUpdate struct {
	Title    string
	Content  string
	ImageURL *string
}

// Update edits a post. Only the author may edit it; the post is loaded
// first so a missing post reports not-found before any ownership decision.
func (s *PostService) Update(ctx context.Context, p *auth.Principal, id string, upd PostUpdate) (*store.Post, error) {
	post, err := s.store.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := requireOwner(p, post.AuthorUserID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(upd.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(upd.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	post.Title = upd.Title
	post.Content = upd.Content
	if upd.ImageURL != nil {
		post.ImageURL = *upd.ImageURL
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("updating post: %w", err)
	}

	s.logger.Info("updated post", "id", post.ID, "author", post.AuthorUserID)
	return post, nil
}

// Delete removes a post. Only the author may delete it. Comments go with
// the post via the storage cascade.
func (s *PostService) Delete(ctx context.Context, p *auth.Principal, id string) error {
	post, err := s.store.GetPost(ctx, id)
	if err != nil {
		return err
	}

	if err := requireOwner(p, post.AuthorUserID); err != nil {
		return err
	}

	if err := s.store.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}

	s.logger.Info("deleted post", "id", id, "author", post.AuthorUserID)
	return nil
}
