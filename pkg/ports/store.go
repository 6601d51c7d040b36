package ports

import (
	"context"

	"github.com/aretw0/switchyard/pkg/domain"
)

// CursorStore defines the interface for persisting session cursors.
// This allows a session to be resumed after the host restarts.
type CursorStore interface {
	// Save persists the cursor for a given session ID.
	Save(ctx context.Context, sessionID string, cursor *domain.Cursor) error

	// Load retrieves the cursor for a given session ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.Cursor, error)

	// Delete removes the cursor for a given session ID. Deleting a missing session is not an error.
	Delete(ctx context.Context, sessionID string) error

	// List returns the known session IDs.
	List(ctx context.Context) ([]string, error)
}
