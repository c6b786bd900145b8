// ABOUTME: Request principal for tracking identity through request handlers
// ABOUTME: Provides WithPrincipal/PrincipalFromContext for explicit context passing

package auth

import (
	"context"
)

// Principal holds the authenticated identity resolved from a request's
// session token. It lives only for the duration of that request and is
// never persisted.
type Principal struct {
	UserID        string // login identifier of the authenticated user
	Authenticated bool
}

// principalKey is the key type for storing a Principal in context.Context.
type principalKey struct{}

// WithPrincipal returns a new context with the Principal attached.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext retrieves the Principal from the context, returning
// nil if the request is unauthenticated.
func PrincipalFromContext(ctx context.Context) *Principal {
	val := ctx.Value(principalKey{})
	if val == nil {
		return nil
	}
	p, ok := val.(*Principal)
	if !ok {
		return nil
	}
	return p
}
