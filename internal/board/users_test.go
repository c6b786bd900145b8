// ABOUTME: Tests for user registration, login, and profile management
// ABOUTME: Covers validation order, duplicates, credentials, and self-only updates

package board

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389/coven-board/internal/store"
)

func TestRegister_Success(t *testing.T) {
	e := newTestEnv(t)

	id, err := e.users.Register(context.Background(), "alice", "password123", "Alice")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	user, err := e.store.GetUserByUserID(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "Alice", user.Name)
	// The password is stored hashed, never verbatim
	assert.NotEqual(t, "password123", user.PasswordHash)
}

func TestRegister_ValidationOrder(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		userID   string
		password string
		display  string
		wantMsg  string
	}{
		{
			name:     "blank user id reported before short password",
			userID:   "   ",
			password: "short",
			display:  "",
			wantMsg:  "user id is required",
		},
		{
			name:     "short password reported before blank name",
			userID:   "alice",
			password: "1234567",
			display:  "   ",
			wantMsg:  "password must be at least 8 characters",
		},
		{
			name:     "blank name",
			userID:   "alice",
			password: "password123",
			display:  "",
			wantMsg:  "name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.users.Register(ctx, tt.userID, tt.password, tt.display)
			require.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	e.registerUser(t, "alice", "Alice")

	_, err := e.users.Register(ctx, "alice", "password456", "Other Alice")
	require.ErrorIs(t, err, store.ErrDuplicateUser)
}

func TestRegister_DuplicateCheckedLast(t *testing.T) {
	e := newTestEnv(t)

	e.registerUser(t, "alice", "Alice")

	// A bad password on an existing user id reports the validation error,
	// not the duplicate
	_, err := e.users.Register(context.Background(), "alice", "short", "Alice")
	require.ErrorIs(t, err, ErrValidation)
}

func TestLogin_Success(t *testing.T) {
	e := newTestEnv(t)

	id := e.registerUser(t, "alice", "Alice")

	result, err := e.users.Login(context.Background(), "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, id, result.ID)
	assert.Equal(t, "alice", result.UserID)
	assert.Equal(t, "Alice", result.Name)
	require.NotEmpty(t, result.Token)

	// The token resolves back to the login identifier
	subject, err := e.codec.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestLogin_UnknownUser(t *testing.T) {
	e := newTestEnv(t)

	result, err := e.users.Login(context.Background(), "nobody", "password123")
	require.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, result)
}

func TestLogin_WrongPassword(t *testing.T) {
	e := newTestEnv(t)

	e.registerUser(t, "alice", "Alice")

	result, err := e.users.Login(context.Background(), "alice", "wrongpass")
	require.ErrorIs(t, err, ErrBadCredentials)
	assert.Nil(t, result)
}

func TestMe(t *testing.T) {
	e := newTestEnv(t)

	id := e.registerUser(t, "alice", "Alice")

	profile, err := e.users.Me(context.Background(), principal("alice"))
	require.NoError(t, err)
	assert.Equal(t, id, profile.ID)
	assert.Equal(t, "Alice", profile.Name)
}

func TestGetUserAndList(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	id := e.registerUser(t, "alice", "Alice")
	e.registerUser(t, "bob", "Bob")

	profile, err := e.users.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.UserID)

	_, err = e.users.GetUser(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	profiles, err := e.users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, profiles, 2)
}

func TestUpdateUser_SelfOnly(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	id := e.registerUser(t, "alice", "Alice")
	e.registerUser(t, "bob", "Bob")

	name := "Alice Renamed"
	profile, err := e.users.UpdateUser(ctx, principal("alice"), id, UserUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alice Renamed", profile.Name)

	// Bob may not touch alice's account
	_, err = e.users.UpdateUser(ctx, principal("bob"), id, UserUpdate{Name: &name})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateUser_PasswordRules(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	id := e.registerUser(t, "alice", "Alice")

	short := "1234567"
	_, err := e.users.UpdateUser(ctx, principal("alice"), id, UserUpdate{Password: &short})
	require.ErrorIs(t, err, ErrValidation)

	ok := "newpassword1"
	_, err = e.users.UpdateUser(ctx, principal("alice"), id, UserUpdate{Password: &ok})
	require.NoError(t, err)

	// Old password no longer works, new one does
	_, err = e.users.Login(ctx, "alice", "password123")
	require.ErrorIs(t, err, ErrBadCredentials)
	_, err = e.users.Login(ctx, "alice", "newpassword1")
	require.NoError(t, err)
}

func TestUpdateUser_NotFoundBeforeForbidden(t *testing.T) {
	e := newTestEnv(t)

	name := "X"
	_, err := e.users.UpdateUser(context.Background(), principal("bob"), "missing", UserUpdate{Name: &name})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteUser_SelfOnly(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	id := e.registerUser(t, "alice", "Alice")
	e.registerUser(t, "bob", "Bob")

	err := e.users.DeleteUser(ctx, principal("bob"), id)
	require.ErrorIs(t, err, ErrForbidden)

	err = e.users.DeleteUser(ctx, principal("alice"), id)
	require.NoError(t, err)

	_, err = e.users.GetUser(ctx, id)
	require.ErrorIs(t, err, store.ErrNotFound)
}
