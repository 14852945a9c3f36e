// Package api exposes outline extraction over HTTP.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tsawler/outliner/classify"
	"github.com/tsawler/outliner/config"
)

// Server is the HTTP API server for outline extraction.
type Server struct {
	router    chi.Router
	log       *slog.Logger
	cfg       config.Config
	predictor classify.Predictor
}

// NewServer creates and configures the HTTP server. The predictor may
// be nil, disabling the model fallback.
func NewServer(cfg config.Config, log *slog.Logger, predictor classify.Predictor) *Server {
	s := &Server{
		log:       log,
		cfg:       cfg,
		predictor: predictor,
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

	r.Get("/v1/healthz", s.handleHealth)
	r.Post("/v1/outline", s.handleOutline)
	r.Post("/v1/outline/fragments", s.handleOutlineFragments)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
