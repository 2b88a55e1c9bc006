package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aretw0/sahaj/internal/logging"
	"github.com/aretw0/sahaj/internal/observability"
	"github.com/aretw0/sahaj/pkg/domain"
)

// Assistant defines what the HTTP surface needs from the dialogue runtime.
type Assistant interface {
	Process(ctx context.Context, sessionID, message string) (domain.Reply, error)
	Session(ctx context.Context, sessionID string) (*domain.Session, error)
	ResetSession(ctx context.Context, sessionID string) error
	Sessions(ctx context.Context) ([]string, error)
}

// GraphExporter renders the dialogue graph for the /graph endpoint.
type GraphExporter interface {
	Mermaid() string
}

// Server exposes the dialogue over HTTP.
type Server struct {
	assistant Assistant
	graph     GraphExporter
	metrics   *observability.Metrics
	logger    *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithMetrics mounts the Prometheus handler at /metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithGraph enables the GET /graph endpoint.
func WithGraph(g GraphExporter) Option {
	return func(s *Server) {
		s.graph = g
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler builds the HTTP handler for the assistant.
func NewHandler(assistant Assistant, opts ...Option) http.Handler {
	s := &Server{
		assistant: assistant,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/chat", s.chat)
	r.Get("/sessions", s.listSessions)
	r.Get("/sessions/{id}", s.getSession)
	r.Delete("/sessions/{id}", s.deleteSession)
	r.Get("/healthz", s.healthz)

	if s.graph != nil {
		r.Get("/graph", s.getGraph)
	}
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	return r
}

// ChatRequest is the POST /chat body.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

func (s *Server) chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	reply, err := s.assistant.Process(r.Context(), req.SessionID, req.Message)
	if err != nil {
		s.logger.Error("chat turn failed", "session_id", req.SessionID, "err", err)
		http.Error(w, "Failed to process message", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, reply)
}

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	ids, err := s.assistant.Sessions(r.Context())
	if err != nil {
		s.logger.Error("list sessions failed", "err", err)
		http.Error(w, "Failed to list sessions", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, map[string][]string{"sessions": ids})
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sess, err := s.assistant.Session(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}
		s.logger.Error("get session failed", "session_id", id, "err", err)
		http.Error(w, "Failed to load session", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, sess)
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.assistant.ResetSession(r.Context(), id); err != nil {
		s.logger.Error("delete session failed", "session_id", id, "err", err)
		http.Error(w, "Failed to delete session", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getGraph(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(s.graph.Mermaid()))
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}
