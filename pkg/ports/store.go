package ports

import (
	"context"

	"github.com/wanderkit/packlist/pkg/domain"
)

// SessionStore persists per-user conversation state.
// The store exclusively owns all Session instances; implementations must
// hand out copies so callers cannot alias stored state.
type SessionStore interface {
	// Load retrieves the session for a user.
	// Returns domain.ErrSessionNotFound if the user has none.
	Load(ctx context.Context, userID string) (*domain.Session, error)

	// Save persists the session, keyed by session.UserID.
	Save(ctx context.Context, session *domain.Session) error

	// Delete removes the session for a user. Deleting a missing session
	// is not an error.
	Delete(ctx context.Context, userID string) error

	// List returns the user IDs of all stored sessions.
	List(ctx context.Context) ([]string, error)
}
