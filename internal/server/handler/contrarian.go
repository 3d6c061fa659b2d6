package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/TimonStadelmann/polymarket-analyzer/internal/domain"
)

// ContrarianService defines the methods the contrarian handler requires from
// the service layer. It is declared locally so the handler package does not
// depend on the concrete service implementation.
type ContrarianService interface {
	Leaderboard(ctx context.Context, p domain.LeaderboardParams) ([]domain.LeaderboardEntry, error)
	Categories(ctx context.Context) ([]string, error)
	SuccessRateByCategory(ctx context.Context, maxEntryPrice float64) ([]domain.CategoryStat, error)
	TopTraders(ctx context.Context, p domain.TopTradersParams) ([]domain.TopTrader, error)
	Timeline(ctx context.Context, p domain.TimelineParams) ([]domain.TimelinePoint, error)
}

// ContrarianHandler serves the contrarian leaderboard, category, success-rate
// and timeline endpoints.
type ContrarianHandler struct {
	svc    ContrarianService
	logger *slog.Logger
}

// NewContrarianHandler creates a ContrarianHandler with the given service and
// logger.
func NewContrarianHandler(svc ContrarianService, logger *slog.Logger) *ContrarianHandler {
	return &ContrarianHandler{svc: svc, logger: logger}
}

// Leaderboard returns the ranked winning contrarian trades.
// GET /api/contrarians/leaderboard?limit=20&category=Politics&minRoi=0&maxEntryPrice=0.2
func (h *ContrarianHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := domain.LeaderboardParams{Category: q.Get("category")}
	var err error
	if params.Limit, err = intParam(q, "limit", 20, 1, 100); err != nil {
		failQuery(w, r, h.logger, "contrarians leaderboard", err)
		return
	}
	if params.MinROI, err = floatParam(q, "minRoi", 0, 0, -1); err != nil {
		failQuery(w, r, h.logger, "contrarians leaderboard", err)
		return
	}
	if params.MaxEntryPrice, err = floatParam(q, "maxEntryPrice", 0.2, 0, 1); err != nil {
		failQuery(w, r, h.logger, "contrarians leaderboard", err)
		return
	}

	entries, err := h.svc.Leaderboard(r.Context(), params)
	if err != nil {
		failQuery(w, r, h.logger, "contrarians leaderboard", err)
		return
	}
	writeList(w, params, entries)
}

// Categories returns all event categories.
// GET /api/contrarians/categories
func (h *ContrarianHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		failQuery(w, r, h.logger, "categories", err)
		return
	}
	writeList(w, nil, categories)
}

// SuccessRate returns the per-category contrarian success rates.
// GET /api/contrarians/success-rate?maxEntryPrice=0.2
func (h *ContrarianHandler) SuccessRate(w http.ResponseWriter, r *http.Request) {
	maxEntryPrice, err := floatParam(r.URL.Query(), "maxEntryPrice", 0.2, 0, 1)
	if err != nil {
		failQuery(w, r, h.logger, "success rate by category", err)
		return
	}

	stats, err := h.svc.SuccessRateByCategory(r.Context(), maxEntryPrice)
	if err != nil {
		failQuery(w, r, h.logger, "success rate by category", err)
		return
	}
	writeList(w, nil, stats)
}

// TopTraders returns the ranked contrarian traders.
// GET /api/contrarians/top-traders?limit=20&minWins=2&maxEntryPrice=0.2
func (h *ContrarianHandler) TopTraders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var params domain.TopTradersParams
	var err error
	if params.Limit, err = intParam(q, "limit", 20, 1, 100); err != nil {
		failQuery(w, r, h.logger, "top contrarian traders", err)
		return
	}
	if params.MinWins, err = intParam(q, "minWins", 2, 1, 0); err != nil {
		failQuery(w, r, h.logger, "top contrarian traders", err)
		return
	}
	if params.MaxEntryPrice, err = floatParam(q, "maxEntryPrice", 0.2, 0, 1); err != nil {
		failQuery(w, r, h.logger, "top contrarian traders", err)
		return
	}

	traders, err := h.svc.TopTraders(r.Context(), params)
	if err != nil {
		failQuery(w, r, h.logger, "top contrarian traders", err)
		return
	}
	writeList(w, params, traders)
}

// Timeline returns winning contrarian trades in chronological order.
// GET /api/timeline/contrarian?maxEntryPrice=0.2
func (h *ContrarianHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	maxEntryPrice, err := floatParam(r.URL.Query(), "maxEntryPrice", 0.2, 0, 1)
	if err != nil {
		failQuery(w, r, h.logger, "contrarian timeline", err)
		return
	}

	params := domain.TimelineParams{MaxEntryPrice: maxEntryPrice}
	points, err := h.svc.Timeline(r.Context(), params)
	if err != nil {
		failQuery(w, r, h.logger, "contrarian timeline", err)
		return
	}
	writeList(w, params, points)
}
