package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	packlist "github.com/wanderkit/packlist"
	"github.com/wanderkit/packlist/pkg/adapters/memory"
	"github.com/wanderkit/packlist/pkg/domain"
)

func newTestMCPServer(t *testing.T) *Server {
	t.Helper()
	catalog, err := memory.NewCatalog(domain.ChecklistDefinition{
		ID:    "hiking",
		Name:  "Hiking",
		Items: []domain.ItemDefinition{{FullName: "Tent"}},
	})
	require.NoError(t, err)

	assistant, err := packlist.New(catalog)
	require.NoError(t, err)
	return NewServer(assistant, packlist.Version)
}

func TestHandleSendEvent(t *testing.T) {
	s := newTestMCPServer(t)
	ctx := context.Background()

	out, err := s.handleSendEvent(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"user_id":      "alice",
		"type":         "choose",
		"checklist_id": "hiking",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseAsking, out.Session.Phase)
	assert.Equal(t, domain.RenderPromptItem, out.Render.Type)

	out, err = s.handleSendEvent(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"user_id":     "alice",
		"type":        "answer",
		"disposition": "take",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseReviewing, out.Session.Phase)
	assert.Equal(t, domain.RenderSummary, out.Render.Type)
}

func TestHandleSendEvent_RequiresUserID(t *testing.T) {
	s := newTestMCPServer(t)

	_, err := s.handleSendEvent(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"type": "reset",
	})
	assert.ErrorContains(t, err, "user_id")
}

func TestHandleReset(t *testing.T) {
	s := newTestMCPServer(t)
	ctx := context.Background()

	_, err := s.handleSendEvent(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"user_id":      "alice",
		"type":         "choose",
		"checklist_id": "hiking",
	})
	require.NoError(t, err)

	out, err := s.handleReset(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"user_id": "alice",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseSelecting, out.Session.Phase)
	assert.Equal(t, domain.RenderChecklistPicker, out.Render.Type)
}
