// ABOUTME: Comment store methods for threaded replies on posts
// ABOUTME: Comments list ascending by creation time; parent_id links replies

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const commentColumns = `
	c.id, c.post_id, c.author_id, c.parent_id, c.content, c.created_at, c.updated_at,
	u.user_id, u.name
`

// CreateComment creates a new comment.
func (s *SQLiteStore) CreateComment(ctx context.Context, comment *Comment) error {
	query := `
		INSERT INTO comments (id, post_id, author_id, parent_id, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var parentID any
	if comment.ParentID != "" {
		parentID = comment.ParentID
	}

	_, err := s.db.ExecContext(ctx, query,
		comment.ID,
		comment.PostID,
		comment.AuthorID,
		parentID,
		comment.Content,
		comment.CreatedAt.UTC().Format(time.RFC3339),
		comment.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting comment: %w", err)
	}

	s.logger.Debug("created comment", "id", comment.ID, "post_id", comment.PostID)
	return nil
}

// GetComment retrieves a comment by ID with its author's identifier and name.
// Returns ErrNotFound if the comment doesn't exist.
func (s *SQLiteStore) GetComment(ctx context.Context, id string) (*Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = ?
	`

	comment, err := scanComment(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying comment: %w", err)
	}
	return comment, nil
}

func scanComment(row rowScanner) (*Comment, error) {
	var comment Comment
	var parentID sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&comment.ID,
		&comment.PostID,
		&comment.AuthorID,
		&parentID,
		&comment.Content,
		&createdAtStr,
		&updatedAtStr,
		&comment.AuthorUserID,
		&comment.AuthorName,
	)
	if err != nil {
		return nil, err
	}

	if parentID.Valid {
		comment.ParentID = parentID.String
	}

	comment.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	comment.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &comment, nil
}

// ListCommentsByPost returns a post's comments ordered oldest first.
// A post without comments yields an empty slice, not an error.
func (s *SQLiteStore) ListCommentsByPost(ctx context.Context, postID string) ([]*Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = ?
		ORDER BY c.created_at ASC, c.id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("querying comments: %w", err)
	}
	defer rows.Close()

	var comments []*Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning comment: %w", err)
		}
		comments = append(comments, comment)
	}

	return comments, rows.Err()
}

// UpdateComment updates a comment's content and updated_at.
// Returns ErrNotFound if the comment doesn't exist.
func (s *SQLiteStore) UpdateComment(ctx context.Context, comment *Comment) error {
	query := `
		UPDATE comments
		SET content = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		comment.Content,
		comment.UpdatedAt.UTC().Format(time.RFC3339),
		comment.ID,
	)
	if err != nil {
		return fmt.Errorf("updating comment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.logger.Debug("updated comment", "id", comment.ID)
	return nil
}

// DeleteComment deletes a comment. Replies to it are removed by the foreign
// key cascade. Returns ErrNotFound if the comment doesn't exist.
func (s *SQLiteStore) DeleteComment(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.logger.Debug("deleted comment", "id", id)
	return nil
}
