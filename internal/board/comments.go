// ABOUTME: Comment business logic for threaded replies with ownership enforcement
// ABOUTME: A reply's parent must be a comment on the same post

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

// CommentService handles comment CRUD with ownership enforcement.
type CommentService struct {
	store  store.Store
	logger *slog.Logger
}

// NewCommentService creates a CommentService backed by the given store.
func NewCommentService(s store.Store, logger *slog.Logger) *CommentService {
	return &CommentService{
		store:  s,
		logger: logger.With("component", "comments"),
	}
}

// Create adds a comment to a post. parentID may be empty for a top-level
// comment. A non-empty parentID must name an existing comment on the same
// post; thread depth is otherwise unbounded.
func (s *CommentService) Create(ctx context.Context, p *auth.Principal, postID, content, parentID string) (*store.Comment, error) {
	if p == nil || !p.Authenticated {
		return nil, ErrForbidden
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

	if _, err := s.store.GetPost(ctx, postID); err != nil {
		return nil, err
	}

	if parentID != "" {
		parent, err := s.store.GetComment(ctx, parentID)
		if err != nil {
			return nil, err
		}
		if parent.PostID != postID {
			return nil, fmt.Errorf("%w: parent comment belongs to a different post", ErrValidation)
		}
	}

	now := time.Now().UTC()
	comment := &store.Comment{
		ID:        uuid.NewString(),
		PostID:    postID,
		AuthorID:  author.ID,
		ParentID:  parentID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	comment.AuthorUserID = author.UserID
	comment.AuthorName = author.Name

	s.logger.Info("created comment", "id", comment.ID, "post_id", postID, "author", author.UserID)
	return comment, nil
}

// ListByPost returns a post's comments, oldest first.
func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]*store.Comment, error) {
	return s.store.ListCommentsByPost(ctx, postID)
}

// Update edits a comment's content. Only the author may edit it; the
// comment is loaded first so a missing comment reports not-found before
// any ownership decision.
func (s *CommentService) Update(ctx context.Context, p *auth.Principal, id, content string) (*store.Comment, error) {
	comment, err := s.store.GetComment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := requireOwner(p, comment.AuthorUserID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	comment.Content = content
	comment.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("updating comment: %w", err)
	}

	s.logger.Info("updated comment", "id", id, "author", comment.AuthorUserID)
	return comment, nil
}

// Delete removes a comment. Only the author may delete it. Replies go with
// the comment via the storage cascade.
func (s *CommentService) Delete(ctx context.Context, p *auth.Principal, id string) error {
	comment, err := s.store.GetComment(ctx, id)
	if err != nil {
		return err
	}

	if err := requireOwner(p, comment.AuthorUserID); err != nil {
		return err
	}

	if err := s.store.DeleteComment(ctx, id); err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}

	s.logger.Info("deleted comment", "id", id, "author", comment.AuthorUserID)
	return nil
}
