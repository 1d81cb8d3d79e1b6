// Package server provides the HTTP query API for lvrank.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/katalvlaran/lvrank/internal/config"
	"github.com/katalvlaran/lvrank/internal/logging"
	"github.com/katalvlaran/lvrank/internal/snapshot"
	"github.com/katalvlaran/lvrank/pagerank"
	"go.uber.org/zap"
)

// maxBodyBytes bounds POST /api/v1/rank payloads.
const maxBodyBytes = 32 << 20

// Server is the HTTP server for the lvrank API.
type Server struct {
	holder *snapshot.Holder
	engine *pagerank.Engine
	config config.ServerConfig
	search config.SearchConfig
	logger *zap.Logger
	server *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(
	holder *snapshot.Holder,
	engine *pagerank.Engine,
	cfg config.ServerConfig,
	search config.SearchConfig,
	logger *zap.Logger,
) *Server {
	return &Server{
		holder: holder,
		engine: engine,
		config: cfg,
		search: search,
		logger: logging.OrNop(logger),
	}
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	if s.config.RequestTimeout > 0 {
		r.Use(middleware.Timeout(s.config.RequestTimeout))
	}

	r.Get("/health", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/rankings", s.handleRankings)
		r.Get("/search", s.handleSearch)
		r.Get("/nodes/{id}", s.handleNode)
		r.Post("/rank", s.handleRank)
		r.Post("/reload", s.handleReload)
	})
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := s.config.Addr()
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// logRequests logs one debug line per request with its chi request ID.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)))
	})
}
