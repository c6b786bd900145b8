// ABOUTME: User business logic: registration, login, and profile management
// ABOUTME: Login mints a stateless session token; nothing is persisted per session

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

// MinPasswordLength is the minimum accepted password size in characters.
const MinPasswordLength = 8

// dummyHash is compared against when a login names an unknown user, so the
// request costs one bcrypt comparison either way.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Profile is the public view of a user.
type Profile struct {
	ID     string
	UserID string
	Name   string
}

// LoginResult bundles the profile data returned at login with the freshly
// minted session token.
type LoginResult struct {
	ID     string
	UserID string
	Name   string
	Token  string
}

// UserService handles registration, login, and profile operations.
type UserService struct {
	store    store.Store
	codec    auth.TokenCodec
	tokenTTL time.Duration
	logger   *slog.Logger
}

// NewUserService creates a UserService using the given store and token codec.
func NewUserService(s store.Store, codec auth.TokenCodec, tokenTTL time.Duration, logger *slog.Logger) *UserService {
	return &UserService{
		store:    s,
		codec:    codec,
		tokenTTL: tokenTTL,
		logger:   logger.With("component", "users"),
	}
}

// Register creates a new account and returns its internal ID.
//
// Checks run in a fixed order so callers get deterministic errors: login
// identifier presence, password length, display name presence, then the
// duplicate check.
func (s *UserService) Register(ctx context.Context, userID, password, name string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", fmt.Errorf("%w: user id is required", ErrValidation)
	}
	if len(password) < MinPasswordLength {
		return "", fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	}
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: name is required", ErrValidation)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	user := &store.User{
		ID:           uuid.NewString(),
		UserID:       userID,
		PasswordHash: hash,
		Name:         name,
		CreatedAt:    time.Now().UTC(),
	}

	// The UNIQUE constraint on user_id is the duplicate check; a race
	// between two registrations resolves at the insert.
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateUser) {
			return "", store.ErrDuplicateUser
		}
		return "", fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("registered user", "user_id", userID)
	return user.ID, nil
}

// Login verifies the credentials and mints a session token with the login
// identifier as subject. No session state is persisted: the token is
// self-contained and valid until expiry.
func (s *UserService) Login(ctx context.Context, userID, password string) (*LoginResult, error) {
	user, err := s.store.GetUserByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a comparison so unknown users cost the same as bad passwords
			_ = auth.CheckPassword(password, dummyHash)
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, ErrBadCredentials
	}

	token, err := s.codec.Generate(user.UserID, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	s.logger.Info("user logged in", "user_id", userID)
	return &LoginResult{
		ID:     user.ID,
		UserID: user.UserID,
		Name:   user.Name,
		Token:  token,
	}, nil
}

// Me returns the profile of the authenticated principal.
func (s *UserService) Me(ctx context.Context, p *auth.Principal) (*Profile, error) {
	if p == nil || !p.Authenticated {
		return nil, ErrForbidden
	}
	user, err := s.store.GetUserByUserID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	return profileOf(user), nil
}

// GetUser returns the profile for an internal user ID.
func (s *UserService) GetUser(ctx context.Context, id string) (*Profile, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return profileOf(user), nil
}

// ListUsers returns all profiles.
func (s *UserService) ListUsers(ctx context.Context) ([]*Profile, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]*Profile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, profileOf(u))
	}
	return profiles, nil
}

// UserUpdate carries the optional fields of a profile update. Nil fields
// are left unchanged.
type UserUpdate struct {
	Name     *string
	Password *string
}

// UpdateUser changes a user's display name and/or password. Only the
// account owner may update it; the resource is loaded before the ownership
// decision so a missing user reports not-found first.
func (s *UserService) UpdateUser(ctx context.Context, p *auth.Principal, id string, upd UserUpdate) (*Profile, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := requireOwner(p, user.UserID); err != nil {
		return nil, err
	}

	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			return nil, fmt.Errorf("%w: name is required", ErrValidation)
		}
		user.Name = *upd.Name
	}
	if upd.Password != nil {
		if len(*upd.Password) < MinPasswordLength {
			return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
		}
		hash, err := auth.HashPassword(*upd.Password)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	s.logger.Info("updated user", "user_id", user.UserID)
	return profileOf(user), nil
}

// DeleteUser removes an account. Only the account owner may delete it.
// The user's posts and comments are removed by the storage cascade.
func (s *UserService) DeleteUser(ctx context.Context, p *auth.Principal, id string) error {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return err
	}

	if err := requireOwner(p, user.UserID); err != nil {
		return err
	}

	if err := s.store.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	s.logger.Info("deleted user", "user_id", user.UserID)
	return nil
}

func profileOf(u *store.User) *Profile {
	return &Profile{
		ID:     u.ID,
		UserID: u.UserID,
		Name:   u.Name,
	}
}
