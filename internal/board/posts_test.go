// ABOUTME: Tests for post creation, paging, and author-only mutations
// ABOUTME: Verifies not-found ordering ahead of ownership decisions

package board

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389/coven-board/internal/store"
)

func TestPostCreate(t *testing.T) {
	e := newTestEnv(t)

	e.registerUser(t, "alice", "Alice")

	post, err := e.posts.Create(context.Background(), principal("alice"), "hello", "first post", "")
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "alice", post.AuthorUserID)
	assert.Equal(t, "Alice", post.AuthorName)
}

func TestPostCreate_Validation(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	e.registerUser(t, "alice", "Alice")

	_, err := e.posts.Create(ctx, principal("alice"), "  ", "content", "")
	require.ErrorIs(t, err, ErrValidation)

	_, err = e.posts.Create(ctx, principal("alice"), "title", "", "")
	require.ErrorIs(t, err, ErrValidation)
}

func TestPostCreate_UnknownAuthor(t *testing.T) {
	e := newTestEnv(t)

	// A valid token for a since-deleted account cannot create posts
	_, err := e.posts.Create(context.Background(), principal("ghost"), "title", "content", "")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestPostList_Paging(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	e.registerUser(t, "alice", "Alice")

	for i := 0; i < 5; i++ {
		_, err := e.posts.Create(ctx, principal("alice"), fmt.Sprintf("post %d", i), "content", "")
		require.NoError(t, err)
	}

	page, err := e.posts.List(ctx, 0, 2)
	require.NoError(t, err)
	assert.Len(t, page.Posts, 2)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 0, page.Page)
	assert.Equal(t, 2, page.Size)

	// Out-of-range pages are empty, not errors
	page, err = e.posts.List(ctx, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, page.Posts)

	// Nonsense paging values fall back to defaults
	page, err = e.posts.List(ctx, -1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, page.Page)
	assert.Equal(t, DefaultPageSize, page.Size)
}

func TestPostUpdate_OwnerOnly(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	e.registerUser(t, "alice", "Alice")
	e.registerUser(t, "bob", "Bob")

	post, err := e.posts.Create(ctx, principal("alice"), "hello", "content", "")
	require.NoError(t, err)

	_, err = e.posts.Update(ctx, principal("bob"), post.ID, PostUpdate{Title: "hijacked", Content: "x"})
	require.ErrorIs(t, err, ErrForbidden)

	updated, err := e.posts.Update(ctx, principal("alice"), post.ID, PostUpdate{Title: "edited", Content: "new content"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Title)
}

func TestPostUpdate_ImageOnlyWhenProvided(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	e.registerUser(t, "alice", "Alice")

	post, err := e.posts.Create(ctx, principal("alice"), "hello", "content", "https://example.com/a.png")
	require.NoError(t, err)

	// Nil image URL leaves the stored one alone
	updated, err := e.posts.Update(ctx, principal("alice"), post.ID, PostUpdate{Title: "t", Content: "c"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.png", updated.ImageURL)

	img := "https://example.com/b.png"
	updated, err = e.posts.Update(ctx, principal("alice"), post.ID, PostUpdate{Title: "t", Content: "c", ImageURL: &img})
	require.NoError(t, err)
	assert.Equal(t, img, updated.ImageURL)
}

func TestPostDelete_NotFoundBeforeForbidden(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	e.registerUser(t, "alice", "Alice")
	e.registerUser(t, "bob", "Bob")

	// Missing post reports not-found regardless of principal
	err := e.posts.Delete(ctx, principal("bob"), "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	post, err := e.posts.Create(ctx, principal("alice"), "hello", "content", "")
	require.NoError(t, err)

	// Existing post owned by someone else reports forbidden
	err = e.posts.Delete(ctx, principal("bob"), post.ID)
	require.ErrorIs(t, err, ErrForbidden)

	err = e.posts.Delete(ctx, principal("alice"), post.ID)
	require.NoError(t, err)

	_, err = e.posts.Get(ctx, post.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}
