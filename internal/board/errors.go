// ABOUTME: Error taxonomy for board business operations
// ABOUTME: All errors are per-request and recoverable; none crash the service

package board

import "errors"

var (
	// ErrValidation indicates bad input shape; the wrapped message names
	// the offending field and is safe to show to the caller.
	ErrValidation = errors.New("validation error")

	// ErrUserNotFound indicates no account exists for a login identifier.
	ErrUserNotFound = errors.New("user not found")

	// ErrBadCredentials indicates the presented password did not match.
	ErrBadCredentials = errors.New("bad credentials")

	// ErrForbidden indicates an authenticated caller who is not the owner
	// of the target resource.
	ErrForbidden = errors.New("forbidden")
)
