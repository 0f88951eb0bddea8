// Package httpapi exposes the assistant as a JSON API over HTTP.
// It is one possible render adapter: it maps inbound requests to engine
// events and returns the resulting rendering instruction verbatim,
// leaving presentation to the API consumer.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wanderkit/packlist/internal/logging"
	"github.com/wanderkit/packlist/pkg/domain"
)

// Service is the part of the assistant the HTTP adapter needs.
type Service interface {
	Checklists() ([]domain.ChecklistSummary, error)
	Checklist(id string) (*domain.ChecklistDefinition, error)
	Dispatch(ctx context.Context, userID string, ev domain.Event) (*domain.Session, domain.RenderRequest, error)
	Session(ctx context.Context, userID string) (*domain.Session, error)
	Sessions(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, userID string) error
}

// Server handles the HTTP surface over a Service.
type Server struct {
	service Service
	logger  *slog.Logger
}

// EventRequest is the wire form of an engine event.
type EventRequest struct {
	Type        string `json:"type"`
	ChecklistID string `json:"checklist_id,omitempty"`
	Item        string `json:"item,omitempty"`
	Disposition string `json:"disposition,omitempty"`
}

// EventResponse pairs the new session state with the rendering instruction.
type EventResponse struct {
	Session *domain.Session      `json:"session"`
	Render  domain.RenderRequest `json:"render"`
}

// NewHandler creates the HTTP handler for the assistant.
func NewHandler(service Service, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{service: service, logger: logger}

	r := chi.NewRouter()
	r.Get("/healthz", s.health)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/checklists", s.listChecklists)
		r.Get("/checklists/{checklistID}", s.getChecklist)
		r.Get("/sessions", s.listSessions)
		r.Get("/sessions/{userID}", s.getSession)
		r.Delete("/sessions/{userID}", s.deleteSession)
		r.Post("/sessions/{userID}/events", s.postEvent)
	})
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listChecklists(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.service.Checklists()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, summaries)
}

func (s *Server) getChecklist(w http.ResponseWriter, r *http.Request) {
	def, err := s.service.Checklist(chi.URLParam(r, "checklistID"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, def)
}

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	userIDs, err := s.service.Sessions(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if userIDs == nil {
		userIDs = []string{}
	}
	s.respond(w, http.StatusOK, userIDs)
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.service.Session(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, sess)
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Delete(r.Context(), chi.URLParam(r, "userID")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) postEvent(w http.ResponseWriter, r *http.Request) {
	var body EventRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.logger.Warn("invalid event body", "err", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ev := domain.Event{
		Type:        domain.EventType(body.Type),
		ChecklistID: body.ChecklistID,
		Item:        body.Item,
		Disposition: body.Disposition,
	}

	sess, render, err := s.service.Dispatch(r.Context(), chi.URLParam(r, "userID"), ev)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, EventResponse{Session: sess, Render: render})
}

func (s *Server) respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrUnknownChecklist), errors.Is(err, domain.ErrSessionNotFound):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
