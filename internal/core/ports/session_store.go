package ports

import (
	"context"

	"github.com/VarshaKulal/CODECRAFT-FS-02/internal/core/domain"
)

// SessionStore persists sessions keyed by their opaque token. Sessions
// survive process restarts; expiry is enforced by the store's TTL and
// checked lazily on Get — there is no active sweep.
type SessionStore interface {
	// Create persists the session under its token for the session TTL.
	Create(ctx context.Context, session *domain.Session) error
	// Get returns the session for token, or (nil, nil) when the token is
	// unknown or expired. Get never extends expiry.
	Get(ctx context.Context, token string) (*domain.Session, error)
	// Delete removes the session. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
}
