// Package service implements the aggregation catalog on top of the graph
// store interfaces: ratio derivation, pairwise overlap computation,
// transition counting and deterministic ordering. Everything here is a pure
// function of store state and parameters; there is no caching and no
// in-process mutable state.
package service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/TimonStadelmann/polymarket-analyzer/internal/domain"
)

// Config holds the bounded-candidate-pool sizes used by the relationship
// aggregations. True all-pairs joins over the full dataset are avoided by
// restricting to the most active entities first; correlations among less
// active entities are an accepted undercount.
type Config struct {
	// MarketPool is the number of most-traded markets considered by the
	// trader network.
	MarketPool int

	// TraderPool caps the traders considered by the trader network and the
	// market correlation.
	TraderPool int

	// FlowPool caps the users considered by the category flow.
	FlowPool int

	// FlowMinTrades is the minimum trade count for a user to enter the
	// category flow pool.
	FlowMinTrades int

	// FlowMaxRows caps the number of category transitions returned.
	FlowMaxRows int
}

// Analytics exposes the nine read-only aggregations over the trade graph.
type Analytics struct {
	contrarian domain.ContrarianStore
	network    domain.NetworkStore
	stats      domain.StatsStore
	cfg        Config
	logger     *slog.Logger
}

// NewAnalytics creates the analytics service over the given stores.
func NewAnalytics(
	contrarian domain.ContrarianStore,
	network domain.NetworkStore,
	stats domain.StatsStore,
	cfg Config,
	logger *slog.Logger,
) *Analytics {
	return &Analytics{
		contrarian: contrarian,
		network:    network,
		stats:      stats,
		cfg:        cfg,
		logger:     logger,
	}
}

// Leaderboard returns winning contrarian trades ranked by ROI. The store
// already orders and limits; rows pass through unchanged.
func (s *Analytics) Leaderboard(ctx context.Context, p domain.LeaderboardParams) ([]domain.LeaderboardEntry, error) {
	return s.contrarian.Leaderboard(ctx, p)
}

// Categories returns all event categories in ascending order.
func (s *Analytics) Categories(ctx context.Context) ([]string, error) {
	return s.contrarian.Categories(ctx)
}

// SuccessRateByCategory derives each category's contrarian success rate from
// the raw bet totals. Categories with zero qualifying bets are skipped so a
// zero denominator never reaches the ratio. Ordered by success rate
// descending, category ascending.
func (s *Analytics) SuccessRateByCategory(ctx context.Context, maxEntryPrice float64) ([]domain.CategoryStat, error) {
	totals, err := s.contrarian.CategoryTotals(ctx, maxEntryPrice)
	if err != nil {
		return nil, err
	}

	stats := make([]domain.CategoryStat, 0, len(totals))
	for _, t := range totals {
		if t.TotalContrarianBets <= 0 {
			continue
		}
		stats = append(stats, domain.CategoryStat{
			Category:            t.Category,
			TotalContrarianBets: t.TotalContrarianBets,
			WinningBets:         t.WinningBets,
			SuccessRate:         float64(t.WinningBets) / float64(t.TotalContrarianBets) * 100,
			WinningVolume:       t.WinningVolume,
			TotalVolume:         t.TotalVolume,
			AvgEntryPrice:       t.AvgEntryPrice,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].SuccessRate != stats[j].SuccessRate {
			return stats[i].SuccessRate > stats[j].SuccessRate
		}
		return stats[i].Category < stats[j].Category
	})
	return stats, nil
}

// TopTraders ranks traders by winning contrarian trades. Profit is payout
// minus investment; ROI percent is guarded against a zero investment.
// Ordered by wins descending, profit descending, address ascending.
func (s *Analytics) TopTraders(ctx context.Context, p domain.TopTradersParams) ([]domain.TopTrader, error) {
	totals, err := s.contrarian.TraderTotals(ctx, p.MinWins, p.MaxEntryPrice)
	if err != nil {
		return nil, err
	}

	traders := make([]domain.TopTrader, 0, len(totals))
	for _, t := range totals {
		profit := t.TotalPayout - t.TotalInvestment
		roi := 0.0
		if t.TotalInvestment > 0 {
			roi = profit / t.TotalInvestment * 100
		}
		traders = append(traders, domain.TopTrader{
			TraderAddress:   t.Address,
			TraderName:      t.Name,
			TraderPseudonym: t.Pseudonym,
			TraderImage:     t.Image,
			ContrarianWins:  t.ContrarianWins,
			TotalInvestment: t.TotalInvestment,
			TotalPayout:     t.TotalPayout,
			Profit:          profit,
			ROIPercent:      roi,
			AvgEntryPrice:   t.AvgEntryPrice,
			BestEntryPrice:  t.BestEntryPrice,
		})
	}

	sort.Slice(traders, func(i, j int) bool {
		if traders[i].ContrarianWins != traders[j].ContrarianWins {
			return traders[i].ContrarianWins > traders[j].ContrarianWins
		}
		if traders[i].Profit != traders[j].Profit {
			return traders[i].Profit > traders[j].Profit
		}
		return traders[i].TraderAddress < traders[j].TraderAddress
	})

	if p.Limit > 0 && len(traders) > p.Limit {
		traders = traders[:p.Limit]
	}
	return traders, nil
}

// Timeline returns winning contrarian trades in chronological order for
// plotting. The store orders by timestamp; no limit applies.
func (s *Analytics) Timeline(ctx context.Context, p domain.TimelineParams) ([]domain.TimelinePoint, error) {
	return s.contrarian.Timeline(ctx, p.MaxEntryPrice)
}
