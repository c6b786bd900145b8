// ABOUTME: Unit tests for bcrypt password hashing and verification
// ABOUTME: Covers matching, mismatches, per-call salting, and malformed hashes

package auth

import (
	"testing"
)

func TestHashPassword_Matches(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !CheckPassword("password123", hash) {
		t.Error("CheckPassword() = false for correct password")
	}
	if CheckPassword("wrongpass", hash) {
		t.Error("CheckPassword() = true for wrong password")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	h1, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	h2, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if h1 == h2 {
		t.Error("two hashes of the same password should differ")
	}

	// Both must still verify
	if !CheckPassword("password123", h1) || !CheckPassword("password123", h2) {
		t.Error("CheckPassword() = false for a freshly generated hash")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{name: "empty hash", hash: ""},
		{name: "garbage hash", hash: "not-a-bcrypt-hash"},
		{name: "truncated hash", hash: "$2a$10$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if CheckPassword("password123", tt.hash) {
				t.Error("CheckPassword() = true for malformed hash")
			}
		})
	}
}
