// Package engine implements the conversation state machine: pure
// transitions over per-user sessions, driven by typed events, producing
// one rendering instruction per transition.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/wanderkit/packlist/internal/logging"
	"github.com/wanderkit/packlist/pkg/domain"
	"github.com/wanderkit/packlist/pkg/ports"
)

// Engine is the session state-transition core. It performs no I/O beyond
// catalog lookups and never blocks; concurrency control belongs to the
// session manager, not here.
type Engine struct {
	catalog ports.CatalogSource
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures the Engine.
type Option func(*Engine)

// WithHooks installs lifecycle callbacks for observability.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger configures a logger for rejected events.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New creates an engine over the given catalog.
func New(catalog ports.CatalogSource, opts ...Option) *Engine {
	e := &Engine{
		catalog: catalog,
		logger:  logging.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ ports.TransitionEngine = (*Engine)(nil)

// Apply computes one transition. The input session is never mutated: the
// result is a fresh value, identical to the input when the event is
// rejected. Only infrastructure failures (unreadable catalog) surface as
// errors; every validation failure becomes a RenderError instruction.
func (e *Engine) Apply(ctx context.Context, sess *domain.Session, ev domain.Event) (*domain.Session, domain.RenderRequest, error) {
	next := sess.Clone()

	var render domain.RenderRequest
	var kind domain.ErrorKind
	var err error

	switch ev.Type {
	case domain.EventChoose:
		render, kind, err = e.choose(next, ev.ChecklistID)
	case domain.EventAnswer:
		render, kind, err = e.answer(next, ev.Disposition)
	case domain.EventEditSelect:
		render, kind, err = e.editSelect(next, ev.Item)
	case domain.EventSetStatus:
		render, kind, err = e.setStatus(next, ev.Disposition)
	case domain.EventRestart:
		render, kind, err = e.restart(next)
	case domain.EventReset:
		render, kind, err = e.reset(next)
	case domain.EventShowList:
		render, kind, err = e.showList(next, ev.ChecklistID)
	case domain.EventEditList:
		render, kind, err = e.editList(next)
	default:
		kind = domain.ErrorUnexpectedEvent
	}

	if err != nil {
		return nil, domain.RenderRequest{}, err
	}

	if kind != "" {
		e.emitReject(ctx, sess, ev, kind)
		// Rejections leave the session exactly as it was.
		return sess.Clone(), errorRender(kind, ev), nil
	}

	next.LastTouched = e.now()
	e.emitTransition(ctx, sess, next, ev)
	return next, render, nil
}

func (e *Engine) emitTransition(ctx context.Context, from, to *domain.Session, ev domain.Event) {
	if e.hooks.OnTransition == nil {
		return
	}
	e.hooks.OnTransition(ctx, &domain.TransitionEvent{
		Timestamp:   e.now(),
		UserID:      from.UserID,
		Event:       ev.Type,
		From:        from.Phase,
		To:          to.Phase,
		ChecklistID: to.ActiveChecklistID,
	})
}

func (e *Engine) emitReject(ctx context.Context, sess *domain.Session, ev domain.Event, kind domain.ErrorKind) {
	e.logger.Debug("event rejected",
		"user_id", sess.UserID,
		"event", string(ev.Type),
		"kind", string(kind),
	)
	if e.hooks.OnReject == nil {
		return
	}
	e.hooks.OnReject(ctx, &domain.RejectEvent{
		Timestamp: e.now(),
		UserID:    sess.UserID,
		Event:     ev.Type,
		Kind:      kind,
	})
}
