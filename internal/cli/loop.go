// Package cli drives the interactive terminal conversation: it routes
// typed input to engine events and prints rendering instructions.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/wanderkit/packlist/pkg/domain"
)

// Service is the part of the assistant the terminal loop needs.
type Service interface {
	Dispatch(ctx context.Context, userID string, ev domain.Event) (*domain.Session, domain.RenderRequest, error)
	Reset(ctx context.Context, userID string) (*domain.Session, domain.RenderRequest, error)
}

// Loop is a single-user conversation over a terminal.
type Loop struct {
	Service Service
	UserID  string
	In      io.Reader
	Out     io.Writer
	// Render converts markdown to terminal output (glamour or plain).
	Render func(string) (string, error)
}

// Run starts with a fresh session and processes lines until EOF or
// context cancellation.
func (l *Loop) Run(ctx context.Context) error {
	sess, render, err := l.Service.Reset(ctx, l.UserID)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	l.print(render)

	scanner := bufio.NewScanner(l.In)
	for {
		fmt.Fprint(l.Out, "> ")
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		ev, ok := Route(sess.Phase, scanner.Text())
		if !ok {
			continue
		}

		next, render, err := l.Service.Dispatch(ctx, l.UserID, ev)
		if err != nil {
			return fmt.Errorf("transition failed: %w", err)
		}
		sess = next
		l.print(render)
	}
	return scanner.Err()
}

func (l *Loop) print(render domain.RenderRequest) {
	out, err := l.Render(FormatRender(render))
	if err != nil {
		// Fall back to raw markdown rather than dropping the message.
		out = FormatRender(render)
	}
	fmt.Fprint(l.Out, out)
}
