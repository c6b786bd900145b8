// ABOUTME: Ownership guard comparing a resource's recorded author against the principal
// ABOUTME: Always invoked after the resource is loaded, so absence reports not-found first

package board

import (
	"fmt"

	"github.com/2389/coven-board/internal/auth"
)

// requireOwner returns ErrForbidden unless the principal's login identifier
// exactly matches the resource owner's. Identifiers are compared
// case-sensitively. Ownership never transfers, so no locking is needed
// around the check.
func requireOwner(p *auth.Principal, ownerUserID string) error {
	if p == nil || !p.Authenticated {
		return ErrForbidden
	}
	if p.UserID != ownerUserID {
		return fmt.Errorf("%w: only the author may modify this resource", ErrForbidden)
	}
	return nil
}
