package bolt_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aretw0/switchyard/pkg/adapters/bolt"
	"github.com/aretw0/switchyard/pkg/domain"
	"github.com/aretw0/switchyard/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltStore_Contract(t *testing.T) {
	store, err := bolt.Open(filepath.Join(t.TempDir(), "cursors.db"))
	require.NoError(t, err)
	defer store.Close()

	ports.RunCursorStoreContract(t, store)
}

func TestBoltStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cursors.db")
	ctx := context.Background()

	store, err := bolt.Open(path, bolt.WithBucket("calls"))
	require.NoError(t, err)
	cursor := domain.NewCursor("s1", "idle")
	cursor.Advance("connecting")
	require.NoError(t, store.Save(ctx, "s1", cursor))
	require.NoError(t, store.Close())

	store, err = bolt.Open(path, bolt.WithBucket("calls"))
	require.NoError(t, err)
	defer store.Close()

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.StateID("connecting"), loaded.State)
}
