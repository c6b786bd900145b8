// ABOUTME: Store interface and data types for coven-board persistence
// ABOUTME: Defines User, Post, Comment structs and the Store interface

package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrDuplicateUser is returned when trying to create a user whose login
// identifier is already taken
var ErrDuplicateUser = errors.New("user already exists")

// User represents a registered account. PasswordHash is a bcrypt hash and
// is never exposed through the API layer.
type User struct {
	ID           string // internal UUID
	UserID       string // login identifier, unique
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}

// Post represents a board post. AuthorUserID and AuthorName are read-only
// fields populated by joined reads; ownership checks compare AuthorUserID
// against the requesting principal.
type Post struct {
	ID        string
	AuthorID  string // users.id
	Title     string
	Content   string
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Populated on reads
	AuthorUserID string
	AuthorName   string
}

// Comment represents a comment on a post. ParentID is empty for top-level
// comments and references another comment on the same post for replies.
type Comment struct {
	ID        string
	PostID    string
	AuthorID  string
	ParentID  string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Populated on reads
	AuthorUserID string
	AuthorName   string
}

// Store defines the interface for board persistence
type Store interface {
	// Users
	CreateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context, id string) (*User, error)
	GetUserByUserID(ctx context.Context, userID string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	UpdateUser(ctx context.Context, user *User) error
	DeleteUser(ctx context.Context, id string) error

	// Posts
	CreatePost(ctx context.Context, post *Post) error
	GetPost(ctx context.Context, id string) (*Post, error)
	ListPosts(ctx context.Context, limit, offset int) ([]*Post, error)
	CountPosts(ctx context.Context) (int, error)
	UpdatePost(ctx context.Context, post *Post) error
	DeletePost(ctx context.Context, id string) error

	// Comments
	CreateComment(ctx context.Context, comment *Comment) error
	GetComment(ctx context.Context, id string) (*Comment, error)
	ListCommentsByPost(ctx context.Context, postID string) ([]*Comment, error)
	UpdateComment(ctx context.Context, comment *Comment) error
	DeleteComment(ctx context.Context, id string) error

	Close() error
}
