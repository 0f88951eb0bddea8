package packlist_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	packlist "github.com/wanderkit/packlist"
	"github.com/wanderkit/packlist/pkg/adapters/file"
	"github.com/wanderkit/packlist/pkg/adapters/memory"
	"github.com/wanderkit/packlist/pkg/domain"
)

func newAssistant(t *testing.T, opts ...packlist.Option) *packlist.Assistant {
	t.Helper()
	catalog, err := memory.NewCatalog(domain.ChecklistDefinition{
		ID:   "hiking",
		Name: "Hiking",
		Items: []domain.ItemDefinition{
			{FullName: "Tent"},
			{FullName: "Sleeping bag"},
			{FullName: "Lamp"},
		},
	})
	require.NoError(t, err)

	assistant, err := packlist.New(catalog, opts...)
	require.NoError(t, err)
	return assistant
}

func TestAssistant_PackingConversation(t *testing.T) {
	a := newAssistant(t)
	ctx := context.Background()

	// First contact: reset renders the picker.
	_, render, err := a.Reset(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.RenderChecklistPicker, render.Type)

	sess, render, err := a.Dispatch(ctx, "alice", domain.Choose("hiking"))
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseAsking, sess.Phase)
	assert.Equal(t, "Tent", render.Payload.(domain.PromptItem).Item.FullName)

	for _, disposition := range []string{"take", "skip", "take_later"} {
		sess, render, err = a.Dispatch(ctx, "alice", domain.Answer(disposition))
		require.NoError(t, err)
	}
	assert.Equal(t, domain.PhaseReviewing, sess.Phase)

	summary := render.Payload.(domain.SummaryView)
	require.Len(t, summary.Taken, 1)
	assert.Equal(t, "Tent", summary.Taken[0].FullName)

	// Change one answer, then confirm the summary reflects it.
	_, _, err = a.Dispatch(ctx, "alice", domain.EditSelect("Tent"))
	require.NoError(t, err)
	_, render, err = a.Dispatch(ctx, "alice", domain.SetStatus("skip"))
	require.NoError(t, err)
	summary = render.Payload.(domain.SummaryView)
	assert.Empty(t, summary.Taken)
	assert.Len(t, summary.Skipped, 2)
}

func TestAssistant_IndependentUsers(t *testing.T) {
	a := newAssistant(t)
	ctx := context.Background()

	_, _, err := a.Dispatch(ctx, "alice", domain.Choose("hiking"))
	require.NoError(t, err)
	_, _, err = a.Dispatch(ctx, "alice", domain.Answer("take"))
	require.NoError(t, err)

	_, _, err = a.Dispatch(ctx, "bob", domain.Choose("hiking"))
	require.NoError(t, err)

	alice, err := a.Session(ctx, "alice")
	require.NoError(t, err)
	bob, err := a.Session(ctx, "bob")
	require.NoError(t, err)

	assert.Equal(t, 1, alice.Cursor)
	assert.Equal(t, 0, bob.Cursor)

	ids, err := a.Sessions(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob"}, ids)
}

func TestAssistant_CatalogAccess(t *testing.T) {
	a := newAssistant(t)

	summaries, err := a.Checklists()
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 3, summaries[0].ItemCount)

	_, err = a.Checklist("sailing")
	assert.ErrorIs(t, err, domain.ErrUnknownChecklist)
}

func TestAssistant_FileStorePersistence(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	a := newAssistant(t, packlist.WithStore(file.NewStore(dir)))
	_, _, err := a.Dispatch(ctx, "alice", domain.Choose("hiking"))
	require.NoError(t, err)
	_, _, err = a.Dispatch(ctx, "alice", domain.Answer("take"))
	require.NoError(t, err)

	// A new assistant over the same directory resumes mid-walk.
	b := newAssistant(t, packlist.WithStore(file.NewStore(dir)))
	sess, render, err := b.Dispatch(ctx, "alice", domain.Answer("skip"))
	require.NoError(t, err)
	assert.Equal(t, 2, sess.Cursor)
	assert.Equal(t, "Lamp", render.Payload.(domain.PromptItem).Item.FullName)
}
