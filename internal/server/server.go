// Package server is the HTTP adapter over the analytics service. It carries
// no aggregation logic: route registration, parameter validation and response
// envelopes only.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/TimonStadelmann/polymarket-analyzer/internal/server/handler"
	"github.com/TimonStadelmann/polymarket-analyzer/internal/server/middleware"
)

// Config holds the HTTP server configuration.
type Config struct {
	Port        int
	CORSOrigins []string
}

// Handlers aggregates all HTTP handlers that the server needs to register.
type Handlers struct {
	Health     *handler.HealthHandler
	Contrarian *handler.ContrarianHandler
	Network    *handler.NetworkHandler
	Stats      *handler.StatsHandler
}

// Server is the read-only analytics API consumed by the dashboard.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates a Server with all routes registered on the ServeMux and
// the middleware chain (request-id, logging, CORS) attached.
func NewServer(cfg Config, handlers Handlers, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", handlers.Health.HealthCheck)

	mux.HandleFunc("GET /api/contrarians/leaderboard", handlers.Contrarian.Leaderboard)
	mux.HandleFunc("GET /api/contrarians/categories", handlers.Contrarian.Categories)
	mux.HandleFunc("GET /api/contrarians/success-rate", handlers.Contrarian.SuccessRate)
	mux.HandleFunc("GET /api/contrarians/top-traders", handlers.Contrarian.TopTraders)

	mux.HandleFunc("GET /api/network/traders", handlers.Network.TraderNetwork)
	mux.HandleFunc("GET /api/network/markets", handlers.Network.MarketCorrelation)
	mux.HandleFunc("GET /api/flow/categories", handlers.Network.CategoryFlow)

	mux.HandleFunc("GET /api/timeline/contrarian", handlers.Contrarian.Timeline)
	mux.HandleFunc("GET /api/stats/database", handlers.Stats.DatabaseStats)

	// Build the middleware chain, innermost first.
	var h http.Handler = mux
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID()(h)
	h = middleware.CORS(cfg.CORSOrigins)(h)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: srv,
		logger:     logger,
	}
}

// Start begins listening for HTTP requests. It blocks until the server
// encounters an error or is shut down.
func (s *Server) Start() error {
	s.logger.Info("server: starting",
		slog.String("addr", s.httpServer.Addr),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: listen: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server, waiting for in-flight requests
// to complete within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server: shutting down")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
