package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/TimonStadelmann/polymarket-analyzer/internal/domain"
)

// NetworkService defines the relationship-graph methods the network handler
// requires from the service layer.
type NetworkService interface {
	TraderNetwork(ctx context.Context, p domain.NetworkParams) ([]domain.TraderLink, error)
	MarketCorrelation(ctx context.Context, p domain.NetworkParams) ([]domain.MarketLink, error)
	CategoryFlow(ctx context.Context) ([]domain.CategoryTransition, error)
}

// NetworkHandler serves the trader-network, market-correlation and
// category-flow visualization endpoints.
type NetworkHandler struct {
	svc    NetworkService
	logger *slog.Logger
}

// NewNetworkHandler creates a NetworkHandler with the given service and
// logger.
func NewNetworkHandler(svc NetworkService, logger *slog.Logger) *NetworkHandler {
	return &NetworkHandler{svc: svc, logger: logger}
}

// TraderNetwork returns trader pairs with overlapping market sets.
// GET /api/network/traders?minShared=2&limit=50
func (h *NetworkHandler) TraderNetwork(w http.ResponseWriter, r *http.Request) {
	params, err := networkParams(r, 2)
	if err != nil {
		failQuery(w, r, h.logger, "trader network", err)
		return
	}

	links, err := h.svc.TraderNetwork(r.Context(), params)
	if err != nil {
		failQuery(w, r, h.logger, "trader network", err)
		return
	}
	writeList(w, params, links)
}

// MarketCorrelation returns resolved market pairs sharing traders.
// GET /api/network/markets?minShared=3&limit=50
func (h *NetworkHandler) MarketCorrelation(w http.ResponseWriter, r *http.Request) {
	params, err := networkParams(r, 3)
	if err != nil {
		failQuery(w, r, h.logger, "market correlation", err)
		return
	}

	links, err := h.svc.MarketCorrelation(r.Context(), params)
	if err != nil {
		failQuery(w, r, h.logger, "market correlation", err)
		return
	}
	writeList(w, params, links)
}

// CategoryFlow returns category transition counts for the flow diagram.
// GET /api/flow/categories
func (h *NetworkHandler) CategoryFlow(w http.ResponseWriter, r *http.Request) {
	transitions, err := h.svc.CategoryFlow(r.Context())
	if err != nil {
		failQuery(w, r, h.logger, "category flow", err)
		return
	}
	writeList(w, nil, transitions)
}

// networkParams parses the shared minShared/limit pair. The minShared
// default differs between the two pair endpoints.
func networkParams(r *http.Request, defaultMinShared int) (domain.NetworkParams, error) {
	q := r.URL.Query()

	var params domain.NetworkParams
	var err error
	if params.MinShared, err = intParam(q, "minShared", defaultMinShared, 1, 0); err != nil {
		return domain.NetworkParams{}, err
	}
	if params.Limit, err = intParam(q, "limit", 50, 1, 100); err != nil {
		return domain.NetworkParams{}, err
	}
	return params, nil
}
