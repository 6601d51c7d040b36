package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/switchyard/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunCursorStoreContract runs a suite of tests to verify that a CursorStore implementation
// adheres to the defined interface contract.
func RunCursorStoreContract(t *testing.T, store CursorStore) {
	t.Helper()
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		cursor := domain.NewCursor(sessionID, "idle")
		cursor.Advance("connecting")

		err := store.Save(ctx, sessionID, cursor)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, cursor.State, loaded.State)
		assert.Equal(t, cursor.History, loaded.History)
		assert.Equal(t, sessionID, loaded.SessionID)
	})

	t.Run("Loaded cursor is isolated", func(t *testing.T) {
		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		loaded.Advance("tampered")

		again, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.NotEqual(t, domain.StateID("tampered"), again.State)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, sessionID, domain.NewCursor(sessionID, "idle"))
		require.NoError(t, err)

		err = store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")

		assert.NoError(t, store.Delete(ctx, sessionID), "Delete is idempotent")
	})

	t.Run("IDs resembling internal names", func(t *testing.T) {
		ids := []string{"index", "tmp-" + sessionID}
		for _, id := range ids {
			require.NoError(t, store.Save(ctx, id, domain.NewCursor(id, "idle")))
		}
		defer func() {
			for _, id := range ids {
				_ = store.Delete(ctx, id)
			}
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		for _, id := range ids {
			assert.Contains(t, sessions, id)
			loaded, err := store.Load(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, id, loaded.SessionID)
		}
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		require.NoError(t, store.Save(ctx, id1, domain.NewCursor(id1, "idle")))
		require.NoError(t, store.Save(ctx, id2, domain.NewCursor(id2, "idle")))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}
