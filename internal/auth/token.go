// ABOUTME: JWT session token codec for authenticating API requests
// ABOUTME: Uses HS256 signing with a process-wide secret and exact expiry

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token errors
var (
	ErrMalformedToken = errors.New("malformed token")
	ErrBadSignature   = errors.New("bad token signature")
	ErrExpiredToken   = errors.New("token expired")
	ErrMissingClaim   = errors.New("missing required claim")
)

// MinSecretLength is the minimum allowed signing secret size in bytes.
const MinSecretLength = 32

// TokenCodec mints and verifies signed session tokens.
type TokenCodec interface {
	Generate(subject string, ttl time.Duration) (string, error)
	Verify(tokenString string) (subject string, err error)
}

// JWTCodec implements TokenCodec using HS256 signed JWTs. Tokens are
// self-contained: subject, issued-at, and expiry are bound together by the
// signature, so no server-side session state exists.
type JWTCodec struct {
	secret []byte
}

// NewJWTCodec creates a new codec with the given secret.
// The secret must be at least MinSecretLength bytes.
func NewJWTCodec(secret []byte) (*JWTCodec, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("jwt secret must be at least %d bytes, got %d", MinSecretLength, len(secret))
	}
	return &JWTCodec{secret: secret}, nil
}

// Generate creates a new signed token for the given subject, valid for ttl.
func (c *JWTCodec) Generate(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify validates the token and extracts the subject from the "sub" claim.
// Expiry is exact: no leeway is granted. Signature comparison is the
// library's constant-time HMAC equality check.
func (c *JWTCodec) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method is HMAC before handing over the secret
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithExpirationRequired())

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", fmt.Errorf("%w: %v", ErrMalformedToken, err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrBadSignature
		default:
			return "", fmt.Errorf("%w: %v", ErrMalformedToken, err)
		}
	}

	if !token.Valid {
		return "", ErrBadSignature
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("%w: claims", ErrMalformedToken)
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("%w: sub", ErrMissingClaim)
	}

	return sub, nil
}
