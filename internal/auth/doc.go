// Package auth provides authentication for coven-board.
//
// # Session Tokens
//
// Users authenticate with self-contained JWT session tokens signed with
// HS256 using the configured jwt_secret:
//
//	codec, err := auth.NewJWTCodec(secret)
//	token, err := codec.Generate(userID, ttl)
//	userID, err := codec.Verify(token)
//
// Tokens carry subject, issued-at, and expiry claims bound together by the
// signature. Tampering with any field fails verification; expiry is exact
// with no leeway. There is no server-side revocation list: a token is valid
// until it expires.
//
// Verification failures are classified as ErrMalformedToken, ErrBadSignature,
// or ErrExpiredToken.
//
// # Passwords
//
// Stored credentials use bcrypt with a per-call random salt:
//
//	hash, err := auth.HashPassword(password)
//	ok := auth.CheckPassword(password, hash)
//
// # Request Principals
//
// Middleware resolves the Authorization header ("Bearer " + token) into a
// *Principal attached to the request context. The middleware never rejects
// a request: invalid or absent tokens leave it unauthenticated, and each
// handler decides whether authentication is required. This lets public read
// endpoints share the pipeline with protected mutations.
//
// Handlers retrieve the identity with explicit context passing:
//
//	p := auth.PrincipalFromContext(r.Context())
//
// and protect mutating endpoints with:
//
//	mux.HandleFunc("POST /posts", auth.RequirePrincipal(h.createPost))
package auth
