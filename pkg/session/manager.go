package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/wanderkit/packlist/internal/logging"
	"github.com/wanderkit/packlist/pkg/domain"
	"github.com/wanderkit/packlist/pkg/ports"
)

const defaultLockTTL = 30 * time.Second

// lockEntry holds the per-user mutex and its reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager owns session access. It guarantees that two concurrently
// processed events for the same user never race on cursor or responses:
// load, transition and save happen under one per-user lock. Locks are
// garbage collected by reference counting.
type Manager struct {
	store  ports.SessionStore
	engine ports.TransitionEngine

	mu    sync.Mutex
	locks map[string]*lockEntry

	locker ports.DistributedLocker
	logger *slog.Logger
	now    func() time.Time
}

// Option configures the Manager.
type Option func(*Manager)

// WithLocker enables distributed locking across replicas.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(m *Manager) {
		m.locker = locker
	}
}

// WithLogger configures a logger for deferred errors.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates a session manager over a store and an engine.
func NewManager(store ports.SessionStore, engine ports.TransitionEngine, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		engine: engine,
		locks:  make(map[string]*lockEntry),
		logger: logging.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller must Lock entry.mu and then call release(userID) after unlocking.
func (m *Manager) acquire(userID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[userID]
	if !exists {
		entry = &lockEntry{}
		m.locks[userID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and drops the entry at zero.
func (m *Manager) release(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[userID]
	if !exists {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, userID)
	}
}

// WithLock executes fn while holding the lock for the user's session.
func (m *Manager) WithLock(ctx context.Context, userID string, fn func(context.Context) error) error {
	entry := m.acquire(userID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(userID)
	}()

	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, userID, defaultLockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				m.logger.Warn("failed to release distributed lock (will expire via TTL)",
					"user_id", userID,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}

// Get retrieves an existing session.
// Returns domain.ErrSessionNotFound if the user has none.
func (m *Manager) Get(ctx context.Context, userID string) (*domain.Session, error) {
	var sess *domain.Session
	err := m.WithLock(ctx, userID, func(ctx context.Context) error {
		var err error
		sess, err = m.store.Load(ctx, userID)
		return err
	})
	return sess, err
}

// CreateOrReset produces an empty selecting-phase session for the user,
// overwriting whatever existed. Idempotent.
func (m *Manager) CreateOrReset(ctx context.Context, userID string) (*domain.Session, error) {
	var sess *domain.Session
	err := m.WithLock(ctx, userID, func(ctx context.Context) error {
		sess = domain.NewSession(userID)
		sess.LastTouched = m.now()
		if err := m.store.Save(ctx, sess); err != nil {
			return fmt.Errorf("failed to initialize session: %w", err)
		}
		return nil
	})
	return sess, err
}

// Dispatch processes one inbound event for a user: load (or create on
// first contact), transition, save — all under the per-user lock.
func (m *Manager) Dispatch(ctx context.Context, userID string, ev domain.Event) (*domain.Session, domain.RenderRequest, error) {
	var sess *domain.Session
	var render domain.RenderRequest

	err := m.WithLock(ctx, userID, func(ctx context.Context) error {
		current, err := m.store.Load(ctx, userID)
		if errors.Is(err, domain.ErrSessionNotFound) {
			// First contact: same as an explicit reset.
			current = domain.NewSession(userID)
			current.LastTouched = m.now()
		} else if err != nil {
			return fmt.Errorf("failed to load session: %w", err)
		}

		next, r, err := m.engine.Apply(ctx, current, ev)
		if err != nil {
			return err
		}

		if err := m.store.Save(ctx, next); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		sess = next
		render = r
		return nil
	})
	return sess, render, err
}

// Delete removes the user's session.
func (m *Manager) Delete(ctx context.Context, userID string) error {
	return m.WithLock(ctx, userID, func(ctx context.Context) error {
		return m.store.Delete(ctx, userID)
	})
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Store returns the underlying session store.
func (m *Manager) Store() ports.SessionStore {
	return m.store
}

// EvictIdle deletes sessions whose LastTouched is older than maxIdle.
// It returns the number of sessions evicted. Sessions that disappear
// between List and Load are skipped.
func (m *Manager) EvictIdle(ctx context.Context, maxIdle time.Duration) (int, error) {
	userIDs, err := m.store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list sessions: %w", err)
	}

	cutoff := m.now().Add(-maxIdle)
	evicted := 0

	for _, userID := range userIDs {
		err := m.WithLock(ctx, userID, func(ctx context.Context) error {
			sess, err := m.store.Load(ctx, userID)
			if errors.Is(err, domain.ErrSessionNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			if sess.LastTouched.After(cutoff) {
				return nil
			}
			if err := m.store.Delete(ctx, userID); err != nil {
				return err
			}
			evicted++
			return nil
		})
		if err != nil {
			return evicted, fmt.Errorf("failed to evict session %s: %w", userID, err)
		}
	}
	return evicted, nil
}
