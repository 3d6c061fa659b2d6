// Command analyzer serves read-only contrarian analytics over a Neo4j graph
// of prediction-market trades. It loads configuration, connects the shared
// graph driver, wires the aggregation service behind an HTTP API, and shuts
// down gracefully on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TimonStadelmann/polymarket-analyzer/internal/config"
	"github.com/TimonStadelmann/polymarket-analyzer/internal/server"
	"github.com/TimonStadelmann/polymarket-analyzer/internal/server/handler"
	"github.com/TimonStadelmann/polymarket-analyzer/internal/service"
	neo4jstore "github.com/TimonStadelmann/polymarket-analyzer/internal/store/neo4j"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to configuration file")
	flag.Parse()

	// Load configuration.
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config",
			slog.String("path", *configPath),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	// Structured JSON logger at the configured level.
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("polymarket analyzer starting",
		slog.String("config", *configPath),
		slog.String("neo4j_uri", cfg.Neo4j.URI),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Shared graph driver: created once, reused by every store, closed once.
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	client, err := neo4jstore.New(connectCtx, neo4jstore.ClientConfig{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
	})
	cancel()
	if err != nil {
		logger.Error("failed to connect to graph store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	analytics := service.NewAnalytics(
		neo4jstore.NewContrarianStore(client),
		neo4jstore.NewNetworkStore(client),
		neo4jstore.NewStatsStore(client),
		service.Config{
			MarketPool:    cfg.Analytics.MarketPool,
			TraderPool:    cfg.Analytics.TraderPool,
			FlowPool:      cfg.Analytics.FlowPool,
			FlowMinTrades: cfg.Analytics.FlowMinTrades,
			FlowMaxRows:   cfg.Analytics.FlowMaxRows,
		},
		logger,
	)

	srv := server.NewServer(
		server.Config{
			Port:        cfg.Server.Port,
			CORSOrigins: cfg.Server.CORSOrigins,
		},
		server.Handlers{
			Health:     handler.NewHealthHandler(),
			Contrarian: handler.NewContrarianHandler(analytics, logger),
			Network:    handler.NewNetworkHandler(analytics, logger),
			Stats:      handler.NewStatsHandler(analytics, logger),
		},
		logger,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}

	// Drain the HTTP server first so no new queries reach the driver, then
	// close the driver. In-flight queries past the deadline are abandoned.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
	if err := client.Close(shutdownCtx); err != nil {
		logger.Error("graph store close error", slog.String("error", err.Error()))
	}

	logger.Info("polymarket analyzer stopped")
}
