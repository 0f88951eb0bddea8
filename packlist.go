package packlist

import (
	"context"
	"log/slog"
	"time"

	"github.com/wanderkit/packlist/internal/engine"
	"github.com/wanderkit/packlist/internal/logging"
	"github.com/wanderkit/packlist/pkg/adapters/memory"
	"github.com/wanderkit/packlist/pkg/domain"
	"github.com/wanderkit/packlist/pkg/ports"
	"github.com/wanderkit/packlist/pkg/session"
)

// Version is the library version, surfaced by the CLI.
const Version = "0.3.0"

// Assistant wires the catalog, the transition engine and the session
// manager into one entry point. All methods are safe for concurrent use;
// events for the same user are serialized by the manager.
type Assistant struct {
	catalog ports.CatalogSource
	manager *session.Manager
	logger  *slog.Logger
}

type config struct {
	store  ports.SessionStore
	locker ports.DistributedLocker
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	now    func() time.Time
}

// Option configures the Assistant.
type Option func(*config)

// WithStore selects the session store. Defaults to an in-memory store.
func WithStore(store ports.SessionStore) Option {
	return func(c *config) {
		c.store = store
	}
}

// WithLocker enables distributed locking for multi-replica deployments.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(c *config) {
		c.locker = locker
	}
}

// WithLogger configures the application logger. Defaults to no-op.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithHooks installs lifecycle callbacks (e.g. metrics).
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(c *config) {
		c.hooks = hooks
	}
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// New creates an Assistant over the given catalog source.
func New(catalog ports.CatalogSource, opts ...Option) (*Assistant, error) {
	cfg := &config{
		store:  memory.NewStore(),
		logger: logging.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	eng := engine.New(catalog,
		engine.WithHooks(cfg.hooks),
		engine.WithLogger(logging.Named(cfg.logger, "engine")),
		engine.WithClock(cfg.now),
	)

	managerOpts := []session.Option{
		session.WithLogger(logging.Named(cfg.logger, "session")),
		session.WithClock(cfg.now),
	}
	if cfg.locker != nil {
		managerOpts = append(managerOpts, session.WithLocker(cfg.locker))
	}

	return &Assistant{
		catalog: catalog,
		manager: session.NewManager(cfg.store, eng, managerOpts...),
		logger:  cfg.logger,
	}, nil
}

// Checklists lists the catalog in its defined order.
func (a *Assistant) Checklists() ([]domain.ChecklistSummary, error) {
	return a.catalog.ListChecklists()
}

// Checklist retrieves one definition.
// Returns domain.ErrUnknownChecklist for IDs not in the catalog.
func (a *Assistant) Checklist(id string) (*domain.ChecklistDefinition, error) {
	return a.catalog.GetChecklist(id)
}

// Dispatch processes one inbound event for a user. A user without a
// session gets a fresh one (first contact behaves like a reset).
func (a *Assistant) Dispatch(ctx context.Context, userID string, ev domain.Event) (*domain.Session, domain.RenderRequest, error) {
	return a.manager.Dispatch(ctx, userID, ev)
}

// Session retrieves the user's current session.
// Returns domain.ErrSessionNotFound if there is none.
func (a *Assistant) Session(ctx context.Context, userID string) (*domain.Session, error) {
	return a.manager.Get(ctx, userID)
}

// Reset wipes the user's session and renders the checklist picker.
func (a *Assistant) Reset(ctx context.Context, userID string) (*domain.Session, domain.RenderRequest, error) {
	return a.manager.Dispatch(ctx, userID, domain.Reset())
}

// Delete removes the user's session entirely.
func (a *Assistant) Delete(ctx context.Context, userID string) error {
	return a.manager.Delete(ctx, userID)
}

// Sessions lists the user IDs of all active sessions.
func (a *Assistant) Sessions(ctx context.Context) ([]string, error) {
	return a.manager.List(ctx)
}

// EvictIdle deletes sessions untouched for longer than maxIdle and
// returns how many were removed.
func (a *Assistant) EvictIdle(ctx context.Context, maxIdle time.Duration) (int, error) {
	return a.manager.EvictIdle(ctx, maxIdle)
}
