package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/switchyard/internal/logging"
	"github.com/aretw0/switchyard/pkg/domain"
	"github.com/aretw0/switchyard/pkg/fsm"
	"github.com/aretw0/switchyard/pkg/ports"
	"github.com/google/uuid"
)

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager orchestrates session access, ensuring safe concurrent operations.
// It uses reference counting to garbage collect unused locks.
type Manager struct {
	spec  *fsm.Spec
	store ports.CursorStore

	mu    sync.Mutex
	locks map[string]*lockEntry

	locker  ports.DistributedLocker
	lockTTL time.Duration
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLocker enables distributed locking.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(m *Manager) {
		m.locker = locker
	}
}

// WithLockTTL sets the expiry of distributed locks (default 30s).
func WithLockTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.lockTTL = ttl
	}
}

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks passed to every machine.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Manager) {
		m.hooks = hooks
	}
}

// NewManager creates a new Session Manager for a spec and a persistence store.
func NewManager(spec *fsm.Spec, store ports.CursorStore, opts ...Option) *Manager {
	m := &Manager{
		spec:    spec,
		store:   store,
		locks:   make(map[string]*lockEntry),
		lockTTL: 30 * time.Second,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Spec returns the spec sessions are driven through.
func (m *Manager) Spec() *fsm.Spec {
	return m.spec
}

// Start creates a session at the initial state. An empty sessionID gets a generated one.
// Starting an existing session returns its stored cursor unchanged.
func (m *Manager) Start(ctx context.Context, sessionID string) (*domain.Cursor, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	var cursor *domain.Cursor
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		var err error
		cursor, err = m.store.Load(ctx, sessionID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrSessionNotFound) {
			return fmt.Errorf("failed to check session existence: %w", err)
		}

		cursor = fsm.NewMachine(m.spec, fsm.WithSessionID(sessionID)).Cursor()
		if err := m.store.Save(ctx, sessionID, cursor); err != nil {
			return fmt.Errorf("failed to initialize session: %w", err)
		}
		m.logger.Info("session started", "session_id", sessionID, "state", cursor.State)
		return nil
	})
	return cursor, err
}

// Get returns the stored cursor.
func (m *Manager) Get(ctx context.Context, sessionID string) (*domain.Cursor, error) {
	return m.store.Load(ctx, sessionID)
}

// Options returns the rules available to the session right now.
func (m *Manager) Options(ctx context.Context, sessionID string) ([]domain.Rule, error) {
	cursor, err := m.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return m.spec.Table.RulesFor(cursor.State), nil
}

// Fire applies a trigger to the session and persists the new cursor.
// On an illegal transition the stored cursor is left untouched.
func (m *Manager) Fire(ctx context.Context, sessionID string, trigger domain.Trigger) (*domain.Cursor, error) {
	var cursor *domain.Cursor
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		stored, err := m.store.Load(ctx, sessionID)
		if err != nil {
			return err
		}

		machine := fsm.NewMachine(m.spec,
			fsm.WithCursor(stored),
			fsm.WithSessionID(sessionID),
			fsm.WithLifecycleHooks(m.hooks),
			fsm.WithLogger(m.logger),
		)
		if err := machine.Fire(ctx, trigger); err != nil {
			return err
		}

		cursor = machine.Cursor()
		if err := m.store.Save(ctx, sessionID, cursor); err != nil {
			return fmt.Errorf("failed to persist session: %w", err)
		}
		return nil
	})
	return cursor, err
}

// End removes the session from the store.
func (m *Manager) End(ctx context.Context, sessionID string) error {
	return m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		return m.store.Delete(ctx, sessionID)
	})
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller must call release(sessionID) after unlocking entry.mu.
func (m *Manager) acquire(sessionID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		entry = &lockEntry{}
		m.locks[sessionID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager) release(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, sessionID)
	}
}

// WithLock executes a function while holding the lock for the session.
func (m *Manager) WithLock(ctx context.Context, sessionID string, fn func(context.Context) error) error {
	entry := m.acquire(sessionID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(sessionID)
	}()

	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, sessionID, m.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				m.logger.Warn("failed to release distributed lock (will expire via TTL)",
					"session_id", sessionID,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}
