package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderkit/packlist/pkg/domain"
)

func TestRoute_GlobalCommands(t *testing.T) {
	cases := []struct {
		line string
		want domain.Event
	}{
		{"/reset", domain.Reset()},
		{"reset", domain.Reset()},
		{"RESET", domain.Reset()},
		{"/restart", domain.Restart()},
		{"restart", domain.Restart()},
		{"show", domain.ShowList("")},
		{"show hiking", domain.ShowList("hiking")},
		{"list hiking", domain.ShowList("hiking")},
		{"edit", domain.EditList()},
		{"edit Sleeping bag", domain.EditSelect("Sleeping bag")},
	}

	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			// Phase must not matter for globals.
			for _, phase := range []domain.Phase{domain.PhaseSelecting, domain.PhaseAsking, domain.PhaseReviewing, domain.PhaseEditing} {
				ev, ok := Route(phase, tc.line)
				require.True(t, ok)
				assert.Equal(t, tc.want, ev)
			}
		})
	}
}

func TestRoute_PerPhase(t *testing.T) {
	cases := []struct {
		name  string
		phase domain.Phase
		line  string
		want  domain.Event
	}{
		{"selecting picks checklist", domain.PhaseSelecting, "hiking", domain.Choose("hiking")},
		{"asking take", domain.PhaseAsking, "take", domain.Answer("take")},
		{"asking shorthand y", domain.PhaseAsking, "y", domain.Answer("take")},
		{"asking shorthand 2", domain.PhaseAsking, "2", domain.Answer("take_later")},
		{"asking shorthand n", domain.PhaseAsking, "n", domain.Answer("skip")},
		{"asking canonical later", domain.PhaseAsking, "take_later", domain.Answer("take_later")},
		{"asking garbage passes through", domain.PhaseAsking, "maybe", domain.Answer("maybe")},
		{"editing sets status", domain.PhaseEditing, "skip", domain.SetStatus("skip")},
		{"reviewing picks item", domain.PhaseReviewing, "Sleeping bag", domain.EditSelect("Sleeping bag")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev, ok := Route(tc.phase, tc.line)
			require.True(t, ok)
			assert.Equal(t, tc.want, ev)
		})
	}
}

func TestRoute_BlankLine(t *testing.T) {
	_, ok := Route(domain.PhaseAsking, "   ")
	assert.False(t, ok)
}
