package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/switchyard/pkg/adapters/memory"
	"github.com/aretw0/switchyard/pkg/adapters/redis"
	"github.com/aretw0/switchyard/pkg/domain"
	"github.com/aretw0/switchyard/pkg/phone"
	"github.com/aretw0/switchyard/pkg/session"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowStore simulates latency to provoke lost updates if locking is missing.
type slowStore struct {
	*memory.Store
}

func (s slowStore) Load(ctx context.Context, id string) (*domain.Cursor, error) {
	time.Sleep(5 * time.Millisecond)
	return s.Store.Load(ctx, id)
}

func TestManager_FireAndPersist(t *testing.T) {
	ctx := context.Background()
	mgr := session.NewManager(phone.Simple().MustBuild(), memory.NewStore())

	cursor, err := mgr.Start(ctx, "call-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StateID("idle"), cursor.State)

	_, err = mgr.Fire(ctx, "call-1", "answer")
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)

	stored, err := mgr.Get(ctx, "call-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StateID("idle"), stored.State, "illegal trigger must not persist")

	cursor, err = mgr.Fire(ctx, "call-1", "dial")
	require.NoError(t, err)
	assert.Equal(t, domain.StateID("connecting"), cursor.State)

	options, err := mgr.Options(ctx, "call-1")
	require.NoError(t, err)
	assert.Equal(t, []domain.Rule{{Trigger: "answer", To: "connected"}}, options)
}

func TestManager_StartIsIdempotent(t *testing.T) {
	ctx := context.Background()
	mgr := session.NewManager(phone.Simple().MustBuild(), memory.NewStore())

	_, err := mgr.Start(ctx, "s")
	require.NoError(t, err)
	_, err = mgr.Fire(ctx, "s", "dial")
	require.NoError(t, err)

	cursor, err := mgr.Start(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, domain.StateID("connecting"), cursor.State)
}

func TestManager_GeneratedSessionID(t *testing.T) {
	ctx := context.Background()
	mgr := session.NewManager(phone.Simple().MustBuild(), memory.NewStore())

	cursor, err := mgr.Start(ctx, "")
	require.NoError(t, err)
	assert.Len(t, cursor.SessionID, 36)

	ids, err := mgr.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{cursor.SessionID}, ids)
}

func TestManager_UnknownSession(t *testing.T) {
	mgr := session.NewManager(phone.Simple().MustBuild(), memory.NewStore())

	_, err := mgr.Fire(context.Background(), "ghost", "dial")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestManager_TerminalSession(t *testing.T) {
	ctx := context.Background()
	var terminal int
	mgr := session.NewManager(phone.Definition().MustBuild(), memory.NewStore(),
		session.WithLifecycleHooks(domain.LifecycleHooks{
			OnTerminal: func(context.Context, *domain.TransitionEvent) { terminal++ },
		}))

	_, err := mgr.Start(ctx, "s")
	require.NoError(t, err)
	cursor, err := mgr.Fire(ctx, "s", phone.StopUsingPhone)
	require.NoError(t, err)
	assert.True(t, cursor.Terminated)
	assert.Equal(t, 1, terminal)

	_, err = mgr.Fire(ctx, "s", phone.CallDialed)
	assert.ErrorIs(t, err, domain.ErrTerminalState)
}

func TestManager_Locking(t *testing.T) {
	ctx := context.Background()
	mgr := session.NewManager(phone.Simple().MustBuild(), slowStore{memory.NewStore()})

	_, err := mgr.Start(ctx, "race")
	require.NoError(t, err)

	// Every goroutine dials from idle. Only the first one may win; the rest must see
	// the persisted "connecting" state and be rejected.
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded, rejected := 0, 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := mgr.Fire(ctx, "race", "dial")
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if assert.ErrorIs(t, err, domain.ErrIllegalTransition) {
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 19, rejected)

	cursor, err := mgr.Get(ctx, "race")
	require.NoError(t, err)
	assert.Equal(t, []domain.StateID{"idle", "connecting"}, cursor.History)
}

func TestManager_DistributedLocker(t *testing.T) {
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	store := redis.NewFromClient(client)

	mgr := session.NewManager(phone.Simple().MustBuild(), store,
		session.WithLocker(redis.NewLocker(client, "test:")),
		session.WithLockTTL(time.Second),
	)
	ctx := context.Background()

	_, err := mgr.Start(ctx, "s")
	require.NoError(t, err)
	_, err = mgr.Fire(ctx, "s", "dial")
	require.NoError(t, err)

	assert.False(t, mr.Exists("test:lock:s"), "lock released after Fire")
	require.NoError(t, mgr.End(ctx, "s"))

	_, err = mgr.Get(ctx, "s")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
