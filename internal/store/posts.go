// ABOUTME: Post store methods with joined author reads
// ABOUTME: The author's login identifier is read directly for ownership checks

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// CreatePost creates a new post.
func (s *SQLiteStore) CreatePost(ctx context.Context, post *Post) error {
	query := `
		INSERT INTO posts (id, author_id, title, content, image_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		post.ID,
		post.AuthorID,
		post.Title,
		post.Content,
		post.ImageURL,
		post.CreatedAt.UTC().Format(time.RFC3339),
		post.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting post: %w", err)
	}

	s.logger.Debug("created post", "id", post.ID, "author_id", post.AuthorID)
	return nil
}

const postColumns = `
	p.id, p.author_id, p.title, p.content, p.image_url, p.created_at, p.updated_at,
	u.user_id, u.name
`

// GetPost retrieves a post by ID with its author's identifier and name.
// Returns ErrNotFound if the post doesn't exist.
func (s *SQLiteStore) GetPost(ctx context.Context, id string) (*Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = ?
	`

	post, err := scanPost(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying post: %w", err)
	}
	return post, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan code
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*Post, error) {
	var post Post
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Content,
		&post.ImageURL,
		&createdAtStr,
		&updatedAtStr,
		&post.AuthorUserID,
		&post.AuthorName,
	)
	if err != nil {
		return nil, err
	}

	post.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	post.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &post, nil
}

// ListPosts returns posts ordered newest first with the given page window.
func (s *SQLiteStore) ListPosts(ctx context.Context, limit, offset int) ([]*Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT ? OFFSET ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying posts: %w", err)
	}
	defer rows.Close()

	var posts []*Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning post: %w", err)
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

// CountPosts returns the total number of posts.
func (s *SQLiteStore) CountPosts(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting posts: %w", err)
	}
	return count, nil
}

// UpdatePost updates a post's title, content, image URL, and updated_at.
// Returns ErrNotFound if the post doesn't exist.
func (s *SQLiteStore) UpdatePost(ctx context.Context, post *Post) error {
	query := `
		UPDATE posts
		SET title = ?, content = ?, image_url = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		post.Title,
		post.Content,
		post.ImageURL,
		post.UpdatedAt.UTC().Format(time.RFC3339),
		post.ID,
	)
	if err != nil {
		return fmt.Errorf("updating post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.logger.Debug("updated post", "id", post.ID)
	return nil
}

// DeletePost deletes a post. Its comments are removed by the foreign key
// cascade. Returns ErrNotFound if the post doesn't exist.
func (s *SQLiteStore) DeletePost(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.logger.Debug("deleted post", "id", id)
	return nil
}
