package ports

import (
	"context"

	"github.com/wanderkit/packlist/pkg/domain"
)

// TransitionEngine is the pure state-transition core.
// Apply never performs I/O beyond catalog lookups and never blocks.
type TransitionEngine interface {
	// Apply computes the transition for one inbound event. It returns the
	// next session state and the rendering instruction for the host.
	//
	// Validation failures (unknown checklist, unknown item, disposition
	// outside the closed set, out-of-phase events) are not errors: they
	// yield a RenderError instruction and a state equal to the input.
	// The error return is reserved for infrastructure failures, e.g. a
	// catalog source that cannot be read.
	Apply(ctx context.Context, session *domain.Session, event domain.Event) (*domain.Session, domain.RenderRequest, error)
}
