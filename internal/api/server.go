package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/docgraph/internal/config"
	"github.com/dgallion1/docgraph/internal/corpus"
	"github.com/dgallion1/docgraph/internal/render"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for docgraph.
type Server struct {
	router       chi.Router
	orchestrator *corpus.Orchestrator
	renderer     *render.Renderer
	timings      *corpus.Timings
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *corpus.Orchestrator, renderer *render.Renderer, timings *corpus.Timings, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		renderer:     renderer,
		timings:      timings,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.DocgraphAPIKey, s.log))

		r.Post("/api/analyze", s.handleAnalyze)
		r.Post("/api/render", s.handleRender)

		r.Post("/api/scans", s.handleCreateScan)
		r.Get("/api/scans/{jobID}", s.handleScanStatus)
		r.Get("/api/scans/{jobID}/documents", s.handleScanDocuments)
		r.Get("/api/scans/{jobID}/graph", s.handleScanGraph)

		r.Get("/api/stats/timing", s.handleTimingStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
