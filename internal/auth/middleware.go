// ABOUTME: HTTP middleware that resolves session tokens into request principals
// ABOUTME: Never rejects a request; handlers decide whether auth is required

package auth

import (
	"log/slog"
	"net/http"
	"strings"
)

// bearerScheme is the expected Authorization scheme, compared case-sensitively.
const bearerScheme = "Bearer "

// extractBearerToken extracts a bearer token from the Authorization header.
// The value must be the exact scheme string followed by one space and the
// token; anything else is treated as "no token".
func extractBearerToken(authHeader string) string {
	token, ok := strings.CutPrefix(authHeader, bearerScheme)
	if !ok || token == "" || strings.HasPrefix(token, " ") {
		return ""
	}
	return token
}

// Middleware creates an HTTP middleware that resolves the Authorization
// header into a Principal on the request context. It runs once per request
// and always forwards to the next handler: a missing or invalid token simply
// leaves the request unauthenticated. Rejecting unauthenticated access to a
// specific endpoint is that endpoint's responsibility (see RequirePrincipal).
//
// Re-invocation within the same request is idempotent: the already attached
// principal is kept as is.
func Middleware(codec TokenCodec, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if PrincipalFromContext(r.Context()) != nil {
				next.ServeHTTP(w, r)
				return
			}

			token := extractBearerToken(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			subject, err := codec.Verify(token)
			if err != nil {
				// Any verification failure degrades to unauthenticated;
				// the error is never surfaced to the caller directly.
				logger.Debug("rejected session token", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			principal := &Principal{UserID: subject, Authenticated: true}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// RequirePrincipal wraps a handler that needs an authenticated caller.
// Requests without a principal receive a 401 response.
// Must be used after Middleware.
func RequirePrincipal(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if PrincipalFromContext(r.Context()) == nil {
			http.Error(w, `{"error":"authentication required"}`, http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}
