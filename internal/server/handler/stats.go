package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/TimonStadelmann/polymarket-analyzer/internal/domain"
)

// StatsService provides the whole-graph statistics aggregate.
type StatsService interface {
	DatabaseStats(ctx context.Context) (domain.DatabaseStats, error)
}

// StatsHandler serves the database statistics endpoint.
type StatsHandler struct {
	svc    StatsService
	logger *slog.Logger
}

// NewStatsHandler creates a StatsHandler with the given service and logger.
func NewStatsHandler(svc StatsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, logger: logger}
}

// DatabaseStats returns node/relationship counts, totals and store health.
// GET /api/stats/database
func (h *StatsHandler) DatabaseStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.DatabaseStats(r.Context())
	if err != nil {
		failQuery(w, r, h.logger, "database stats", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    stats,
	})
}
