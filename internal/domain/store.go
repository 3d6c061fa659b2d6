package domain

import "context"

// ContrarianStore executes the per-trade and per-group contrarian traversals
// against the graph store. Implementations return fully materialized slices;
// a failed query yields a DataAccessError and no rows.
type ContrarianStore interface {
	// Leaderboard returns qualifying winning trades ordered by ROI percent
	// descending, then investment descending, capped at p.Limit.
	Leaderboard(ctx context.Context, p LeaderboardParams) ([]LeaderboardEntry, error)

	// Categories returns all distinct event categories in ascending order.
	Categories(ctx context.Context) ([]string, error)

	// CategoryTotals returns per-category contrarian bet aggregates (winners
	// and losers) for BUY trades below maxEntryPrice, ungrouped order.
	CategoryTotals(ctx context.Context, maxEntryPrice float64) ([]CategoryTotals, error)

	// TraderTotals returns per-trader aggregates over winning contrarian
	// trades, keeping only traders with at least minWins wins.
	TraderTotals(ctx context.Context, minWins int, maxEntryPrice float64) ([]TraderTotals, error)

	// Timeline returns all winning contrarian trades below maxEntryPrice in
	// chronological order.
	Timeline(ctx context.Context, maxEntryPrice float64) ([]TimelinePoint, error)
}

// NetworkStore fetches the bounded candidate pools that feed the pairwise
// relationship aggregations. Pool sizes are deliberate scalability bounds;
// entities outside the pools are not considered.
type NetworkStore interface {
	// TraderMarketSets returns the top traderPool traders by trade count
	// among the top marketPool most-traded markets, each with their distinct
	// market IDs inside that pool.
	TraderMarketSets(ctx context.Context, marketPool, traderPool int) ([]TraderMarkets, error)

	// TraderBaskets returns the top traderPool traders that traded at least
	// two distinct resolved markets, each with those markets' identities.
	TraderBaskets(ctx context.Context, traderPool int) ([]TraderBasket, error)

	// CategorySequences returns, for the top flowPool users with at least
	// minTrades trades, each user's trade categories in chronological order.
	CategorySequences(ctx context.Context, flowPool, minTrades int) ([]CategorySequence, error)
}

// StatsStore runs the whole-graph aggregates behind the database stats
// operation.
type StatsStore interface {
	NodeCounts(ctx context.Context) (map[string]int64, error)
	RelationshipCounts(ctx context.Context) (map[string]int64, error)
	TotalVolumeUSD(ctx context.Context) (float64, error)
	ResolvedMarketCount(ctx context.Context) (int64, error)

	// Ping runs a trivial round-trip query to probe store liveness.
	Ping(ctx context.Context) error
}
