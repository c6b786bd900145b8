// ABOUTME: Tests for user store methods
// ABOUTME: Covers CRUD, duplicate detection, and cascade deletion of content

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCreateAndGetUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := &User{
		ID:           uuid.NewString(),
		UserID:       "alice",
		PasswordHash: "$2a$10$somethinghashed",
		Name:         "Alice",
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}

	if err := s.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	got, err := s.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}

	if got.UserID != "alice" {
		t.Errorf("UserID = %q, want %q", got.UserID, "alice")
	}
	if got.Name != "Alice" {
		t.Errorf("Name = %q, want %q", got.Name, "Alice")
	}
	if got.PasswordHash != user.PasswordHash {
		t.Errorf("PasswordHash mismatch: got %q", got.PasswordHash)
	}
	if !got.CreatedAt.Equal(user.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, user.CreatedAt)
	}
}

func TestGetUserByUserID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := seedUser(t, s, "alice")

	got, err := s.GetUserByUserID(ctx, "alice")
	if err != nil {
		t.Fatalf("GetUserByUserID failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("ID = %q, want %q", got.ID, user.ID)
	}

	_, err = s.GetUserByUserID(ctx, "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetUserByUserID(nobody) error = %v, want ErrNotFound", err)
	}
}

func TestCreateUser_Duplicate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedUser(t, s, "alice")

	dup := &User{
		ID:           uuid.NewString(),
		UserID:       "alice",
		PasswordHash: "$2a$10$otherhash",
		Name:         "Other Alice",
		CreatedAt:    time.Now().UTC(),
	}

	err := s.CreateUser(ctx, dup)
	if !errors.Is(err, ErrDuplicateUser) {
		t.Errorf("CreateUser error = %v, want ErrDuplicateUser", err)
	}
}

func TestListUsers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedUser(t, s, "alice")
	seedUser(t, s, "bob")

	users, err := s.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("len(users) = %d, want 2", len(users))
	}
}

func TestUpdateUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := seedUser(t, s, "alice")
	user.Name = "Alice Updated"
	user.PasswordHash = "$2a$10$newhash"

	if err := s.UpdateUser(ctx, user); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}

	got, err := s.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got.Name != "Alice Updated" {
		t.Errorf("Name = %q, want %q", got.Name, "Alice Updated")
	}
	if got.PasswordHash != "$2a$10$newhash" {
		t.Errorf("PasswordHash = %q, want updated hash", got.PasswordHash)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.UpdateUser(context.Background(), &User{ID: "missing", Name: "X", PasswordHash: "y"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateUser error = %v, want ErrNotFound", err)
	}
}

func TestDeleteUser_CascadesContent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")
	post := seedPost(t, s, alice, "hello")
	seedComment(t, s, bob, post, "", "first")

	if err := s.DeleteUser(ctx, alice.ID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	// Alice's post is gone, and bob's comment on it went with the post
	if _, err := s.GetPost(ctx, post.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetPost after cascade error = %v, want ErrNotFound", err)
	}
	comments, err := s.ListCommentsByPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("ListCommentsByPost failed: %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("len(comments) = %d, want 0 after cascade", len(comments))
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.DeleteUser(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteUser error = %v, want ErrNotFound", err)
	}
}
