// ABOUTME: Shared test fixtures for board service tests
// ABOUTME: Uses a real SQLite store in a temp directory, no mocking

package board

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/2389/coven-board/internal/auth"
	"github.com/2389/coven-board/internal/store"
)

// boardTestSecret is a 32-byte secret that meets auth.MinSecretLength.
var boardTestSecret = []byte("board-service-test-secret-32-by!")

type testEnv struct {
	store    *store.SQLiteStore
	codec    *auth.JWTCodec
	users    *UserService
	posts    *PostService
	comments *CommentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := store.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	codec, err := auth.NewJWTCodec(boardTestSecret)
	require.NoError(t, err)

	logger := slog.New(slog.DiscardHandler)
	return &testEnv{
		store:    s,
		codec:    codec,
		users:    NewUserService(s, codec, time.Hour, logger),
		posts:    NewPostService(s, logger),
		comments: NewCommentService(s, logger),
	}
}

// registerUser registers an account and returns its internal ID.
func (e *testEnv) registerUser(t *testing.T, userID, name string) string {
	t.Helper()

	id, err := e.users.Register(context.Background(), userID, "password123", name)
	require.NoError(t, err)
	return id
}

// principal builds an authenticated principal for the given login identifier.
func principal(userID string) *auth.Principal {
	return &auth.Principal{UserID: userID, Authenticated: true}
}
