// Package mcp exposes the assistant as a Model Context Protocol server,
// so agent hosts can drive the checklist conversation as tool calls.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wanderkit/packlist/pkg/domain"
)

// Service is the part of the assistant the MCP adapter needs.
type Service interface {
	Checklists() ([]domain.ChecklistSummary, error)
	Checklist(id string) (*domain.ChecklistDefinition, error)
	Dispatch(ctx context.Context, userID string, ev domain.Event) (*domain.Session, domain.RenderRequest, error)
	Session(ctx context.Context, userID string) (*domain.Session, error)
	Reset(ctx context.Context, userID string) (*domain.Session, domain.RenderRequest, error)
}

// EventResponse is the structured result of a dispatched event.
type EventResponse struct {
	Session *domain.Session      `json:"session" jsonschema_description:"The session state after the transition"`
	Render  domain.RenderRequest `json:"render" jsonschema_description:"The rendering instruction for the host"`
}

// Server wraps the assistant and exposes it as an MCP server.
type Server struct {
	service   Service
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server instance.
func NewServer(service Service, version string) *Server {
	s := &Server{
		service:   service,
		mcpServer: server.NewMCPServer("packlist-mcp", version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: list_checklists
	s.mcpServer.AddTool(mcp.NewTool("list_checklists",
		mcp.WithDescription("List the available checklists."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summaries, err := s.service.Checklists()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(summaries)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: send_event
	eventTool := mcp.NewTool("send_event",
		mcp.WithDescription("Send a conversation event for a user: choose, answer, edit_select, set_status, restart, reset, show_list or edit_list."),
		mcp.WithString("user_id", mcp.Required(), mcp.Description("The user the session belongs to")),
		mcp.WithString("type", mcp.Required(), mcp.Description("Event type")),
		mcp.WithString("checklist_id", mcp.Description("Checklist ID (for choose/show_list)")),
		mcp.WithString("item", mcp.Description("Item full name (for edit_select)")),
		mcp.WithString("disposition", mcp.Description("One of take, take_later, skip (for answer/set_status)")),
		mcp.WithOutputSchema[EventResponse](),
	)
	s.mcpServer.AddTool(eventTool, mcp.NewStructuredToolHandler(s.handleSendEvent))

	// TOOL: get_session
	sessionTool := mcp.NewTool("get_session",
		mcp.WithDescription("Get the current session state for a user."),
		mcp.WithString("user_id", mcp.Required(), mcp.Description("The user the session belongs to")),
	)
	s.mcpServer.AddTool(sessionTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		userID := request.GetString("user_id", "")
		sess, err := s.service.Session(ctx, userID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("get session failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(sess)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: reset_session
	resetTool := mcp.NewTool("reset_session",
		mcp.WithDescription("Hard-reset a user's session from any state."),
		mcp.WithString("user_id", mcp.Required(), mcp.Description("The user the session belongs to")),
		mcp.WithOutputSchema[EventResponse](),
	)
	s.mcpServer.AddTool(resetTool, mcp.NewStructuredToolHandler(s.handleReset))
}

func (s *Server) handleSendEvent(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (EventResponse, error) {
	userID, _ := args["user_id"].(string)
	eventType, _ := args["type"].(string)
	checklistID, _ := args["checklist_id"].(string)
	item, _ := args["item"].(string)
	disposition, _ := args["disposition"].(string)

	if userID == "" {
		return EventResponse{}, fmt.Errorf("user_id is required")
	}

	sess, render, err := s.service.Dispatch(ctx, userID, domain.Event{
		Type:        domain.EventType(eventType),
		ChecklistID: checklistID,
		Item:        item,
		Disposition: disposition,
	})
	if err != nil {
		return EventResponse{}, fmt.Errorf("dispatch failed: %w", err)
	}
	return EventResponse{Session: sess, Render: render}, nil
}

func (s *Server) handleReset(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (EventResponse, error) {
	userID, _ := args["user_id"].(string)
	if userID == "" {
		return EventResponse{}, fmt.Errorf("user_id is required")
	}

	sess, render, err := s.service.Reset(ctx, userID)
	if err != nil {
		return EventResponse{}, fmt.Errorf("reset failed: %w", err)
	}
	return EventResponse{Session: sess, Render: render}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: packlist://catalog
	s.mcpServer.AddResource(mcp.NewResource("packlist://catalog", "Checklist Catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		summaries, err := s.service.Checklists()
		if err != nil {
			return nil, fmt.Errorf("failed to list checklists: %w", err)
		}

		defs := make([]*domain.ChecklistDefinition, 0, len(summaries))
		for _, summary := range summaries {
			def, err := s.service.Checklist(summary.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to load checklist %s: %w", summary.ID, err)
			}
			defs = append(defs, def)
		}
		jsonBytes, _ := json.Marshal(defs)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "packlist://catalog",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
