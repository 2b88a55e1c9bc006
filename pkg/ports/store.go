package ports

import (
	"context"

	"github.com/aretw0/sahaj/pkg/domain"
)

// SessionStore defines the interface for persisting dialogue sessions.
// Implementations must be safe for concurrent use; turn-level serialization
// per session id is layered on top by the session Manager.
type SessionStore interface {
	// Save persists the session under its id.
	Save(ctx context.Context, sessionID string, session *domain.Session) error

	// Load retrieves the session for a given id.
	// Returns domain.ErrSessionNotFound if the session does not exist
	// (or has expired).
	Load(ctx context.Context, sessionID string) (*domain.Session, error)

	// Delete removes the session for a given id.
	Delete(ctx context.Context, sessionID string) error

	// List returns the ids of all live sessions.
	List(ctx context.Context) ([]string, error)
}
