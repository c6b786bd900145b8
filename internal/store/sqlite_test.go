// ABOUTME: Tests for SQLite store initialization plus shared test helpers
// ABOUTME: Covers schema creation, directory creation, and seed fixtures

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

// newTestStore creates a SQLite store in a temp directory.
func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}

	t.Cleanup(func() { s.Close() })
	return s
}

// seedUser inserts a user with the given login identifier.
func seedUser(t *testing.T, s *SQLiteStore, userID string) *User {
	t.Helper()

	user := &User{
		ID:           uuid.NewString(),
		UserID:       userID,
		PasswordHash: "$2a$10$fixturefixturefixturefixture",
		Name:         "User " + userID,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	if err := s.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

// seedPost inserts a post authored by the given user.
func seedPost(t *testing.T, s *SQLiteStore, author *User, title string) *Post {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	post := &Post{
		ID:        uuid.NewString(),
		AuthorID:  author.ID,
		Title:     title,
		Content:   "content of " + title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.CreatePost(context.Background(), post); err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	return post
}

// seedComment inserts a comment on the given post.
func seedComment(t *testing.T, s *SQLiteStore, author *User, post *Post, parentID, content string) *Comment {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	comment := &Comment{
		ID:        uuid.NewString(),
		PostID:    post.ID,
		AuthorID:  author.ID,
		ParentID:  parentID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.CreateComment(context.Background(), comment); err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}
	return comment
}

func TestNewSQLiteStore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	defer s.Close()

	// Verify the database file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestNewSQLiteStore_CreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "nested", "test.db")

	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created in nested directory")
	}
}
