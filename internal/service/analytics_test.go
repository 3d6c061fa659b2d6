package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TimonStadelmann/polymarket-analyzer/internal/domain"
)

// fakeContrarianStore serves canned aggregates so the derivation logic can be
// exercised without a live graph.
type fakeContrarianStore struct {
	leaderboard    []domain.LeaderboardEntry
	categories     []string
	categoryTotals []domain.CategoryTotals
	traderTotals   []domain.TraderTotals
	timeline       []domain.TimelinePoint
	err            error
}

func (f *fakeContrarianStore) Leaderboard(ctx context.Context, p domain.LeaderboardParams) ([]domain.LeaderboardEntry, error) {
	return f.leaderboard, f.err
}

func (f *fakeContrarianStore) Categories(ctx context.Context) ([]string, error) {
	return f.categories, f.err
}

func (f *fakeContrarianStore) CategoryTotals(ctx context.Context, maxEntryPrice float64) ([]domain.CategoryTotals, error) {
	return f.categoryTotals, f.err
}

func (f *fakeContrarianStore) TraderTotals(ctx context.Context, minWins int, maxEntryPrice float64) ([]domain.TraderTotals, error) {
	return f.traderTotals, f.err
}

func (f *fakeContrarianStore) Timeline(ctx context.Context, maxEntryPrice float64) ([]domain.TimelinePoint, error) {
	return f.timeline, f.err
}

type fakeNetworkStore struct {
	sets      []domain.TraderMarkets
	baskets   []domain.TraderBasket
	sequences []domain.CategorySequence
	err       error
}

func (f *fakeNetworkStore) TraderMarketSets(ctx context.Context, marketPool, traderPool int) ([]domain.TraderMarkets, error) {
	return f.sets, f.err
}

func (f *fakeNetworkStore) TraderBaskets(ctx context.Context, traderPool int) ([]domain.TraderBasket, error) {
	return f.baskets, f.err
}

func (f *fakeNetworkStore) CategorySequences(ctx context.Context, flowPool, minTrades int) ([]domain.CategorySequence, error) {
	return f.sequences, f.err
}

func testConfig() Config {
	return Config{
		MarketPool:    50,
		TraderPool:    50,
		FlowPool:      50,
		FlowMinTrades: 2,
		FlowMaxRows:   100,
	}
}

func newTestAnalytics(c domain.ContrarianStore, n domain.NetworkStore, s domain.StatsStore) *Analytics {
	return NewAnalytics(c, n, s, testConfig(), slog.Default())
}

func TestSuccessRateByCategory(t *testing.T) {
	store := &fakeContrarianStore{
		categoryTotals: []domain.CategoryTotals{
			{Category: "Politics", TotalContrarianBets: 10, WinningBets: 3, WinningVolume: 300, TotalVolume: 1000, AvgEntryPrice: 0.12},
			{Category: "Sports", TotalContrarianBets: 4, WinningBets: 4, WinningVolume: 400, TotalVolume: 400, AvgEntryPrice: 0.18},
			{Category: "Crypto", TotalContrarianBets: 0, WinningBets: 0},
			{Category: "Science", TotalContrarianBets: 5, WinningBets: 0, TotalVolume: 50, AvgEntryPrice: 0.05},
		},
	}
	svc := newTestAnalytics(store, &fakeNetworkStore{}, &fakeStatsStore{})

	stats, err := svc.SuccessRateByCategory(context.Background(), 0.2)
	require.NoError(t, err)

	// The zero-bet group is skipped, never divided.
	require.Len(t, stats, 3)
	require.Equal(t, "Sports", stats[0].Category)
	require.Equal(t, 100.0, stats[0].SuccessRate)
	require.Equal(t, "Politics", stats[1].Category)
	require.InDelta(t, 30.0, stats[1].SuccessRate, 1e-9)
	require.Equal(t, "Science", stats[2].Category)
	require.Equal(t, 0.0, stats[2].SuccessRate)

	for _, s := range stats {
		require.GreaterOrEqual(t, s.SuccessRate, 0.0)
		require.LessOrEqual(t, s.SuccessRate, 100.0)
		require.LessOrEqual(t, s.WinningBets, s.TotalContrarianBets)
	}
}

func TestSuccessRateByCategoryTieBreak(t *testing.T) {
	store := &fakeContrarianStore{
		categoryTotals: []domain.CategoryTotals{
			{Category: "B", TotalContrarianBets: 2, WinningBets: 1},
			{Category: "A", TotalContrarianBets: 4, WinningBets: 2},
		},
	}
	svc := newTestAnalytics(store, &fakeNetworkStore{}, &fakeStatsStore{})

	stats, err := svc.SuccessRateByCategory(context.Background(), 0.2)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, []string{stats[0].Category, stats[1].Category})
}

func TestTopTradersDerivation(t *testing.T) {
	// The worked example: one winning trade at price 0.1 for 100 USDC pays
	// out 1000, so profit is 900 and ROI 900%.
	store := &fakeContrarianStore{
		traderTotals: []domain.TraderTotals{
			{Address: "0xabc", ContrarianWins: 1, TotalInvestment: 100, TotalPayout: 1000, AvgEntryPrice: 0.1, BestEntryPrice: 0.1},
		},
	}
	svc := newTestAnalytics(store, &fakeNetworkStore{}, &fakeStatsStore{})

	traders, err := svc.TopTraders(context.Background(), domain.TopTradersParams{Limit: 20, MinWins: 1, MaxEntryPrice: 0.2})
	require.NoError(t, err)
	require.Len(t, traders, 1)

	u := traders[0]
	require.Equal(t, int64(1), u.ContrarianWins)
	require.Equal(t, 100.0, u.TotalInvestment)
	require.Equal(t, 1000.0, u.TotalPayout)
	require.Equal(t, 900.0, u.Profit)
	require.Equal(t, 900.0, u.ROIPercent)
	require.Equal(t, u.TotalPayout-u.TotalInvestment, u.Profit)
}

func TestTopTradersOrderingAndLimit(t *testing.T) {
	store := &fakeContrarianStore{
		traderTotals: []domain.TraderTotals{
			{Address: "0xaa", ContrarianWins: 2, TotalInvestment: 100, TotalPayout: 200},
			{Address: "0xbb", ContrarianWins: 5, TotalInvestment: 100, TotalPayout: 150},
			{Address: "0xcc", ContrarianWins: 2, TotalInvestment: 100, TotalPayout: 500},
			{Address: "0xdd", ContrarianWins: 5, TotalInvestment: 100, TotalPayout: 150},
		},
	}
	svc := newTestAnalytics(store, &fakeNetworkStore{}, &fakeStatsStore{})

	traders, err := svc.TopTraders(context.Background(), domain.TopTradersParams{Limit: 3, MinWins: 2})
	require.NoError(t, err)
	require.Len(t, traders, 3)

	// Wins descending, profit descending, address ascending on full ties.
	require.Equal(t, "0xbb", traders[0].TraderAddress)
	require.Equal(t, "0xdd", traders[1].TraderAddress)
	require.Equal(t, "0xcc", traders[2].TraderAddress)
}

func TestTopTradersZeroInvestmentGuard(t *testing.T) {
	store := &fakeContrarianStore{
		traderTotals: []domain.TraderTotals{
			{Address: "0xzero", ContrarianWins: 3, TotalInvestment: 0, TotalPayout: 0},
		},
	}
	svc := newTestAnalytics(store, &fakeNetworkStore{}, &fakeStatsStore{})

	traders, err := svc.TopTraders(context.Background(), domain.TopTradersParams{Limit: 10, MinWins: 1})
	require.NoError(t, err)
	require.Len(t, traders, 1)
	require.Equal(t, 0.0, traders[0].ROIPercent)
}

func TestStoreErrorsPropagate(t *testing.T) {
	dae := domain.NewQueryError("leaderboard", errors.New("boom"))
	store := &fakeContrarianStore{err: dae}
	svc := newTestAnalytics(store, &fakeNetworkStore{err: dae}, &fakeStatsStore{pingErr: dae})

	_, err := svc.Leaderboard(context.Background(), domain.LeaderboardParams{Limit: 20})
	require.ErrorIs(t, err, dae)

	_, err = svc.SuccessRateByCategory(context.Background(), 0.2)
	require.ErrorIs(t, err, dae)

	_, err = svc.TraderNetwork(context.Background(), domain.NetworkParams{MinShared: 2, Limit: 50})
	require.ErrorIs(t, err, dae)

	_, err = svc.CategoryFlow(context.Background())
	require.ErrorIs(t, err, dae)
}

func TestAggregationsAreIdempotent(t *testing.T) {
	store := &fakeContrarianStore{
		categoryTotals: []domain.CategoryTotals{
			{Category: "Politics", TotalContrarianBets: 10, WinningBets: 3},
			{Category: "Sports", TotalContrarianBets: 4, WinningBets: 2},
		},
		traderTotals: []domain.TraderTotals{
			{Address: "0xaa", ContrarianWins: 2, TotalInvestment: 10, TotalPayout: 40},
			{Address: "0xbb", ContrarianWins: 2, TotalInvestment: 10, TotalPayout: 40},
		},
	}
	network := &fakeNetworkStore{
		sets: []domain.TraderMarkets{
			{Trader: domain.NetworkTrader{Address: "0xaa"}, MarketIDs: []string{"m1", "m2", "m3"}},
			{Trader: domain.NetworkTrader{Address: "0xbb"}, MarketIDs: []string{"m2", "m3"}},
			{Trader: domain.NetworkTrader{Address: "0xcc"}, MarketIDs: []string{"m1", "m2", "m3"}},
		},
		sequences: []domain.CategorySequence{
			{Address: "0xaa", Categories: []string{"Politics", "Sports", "Politics"}},
			{Address: "0xbb", Categories: []string{"Politics", "Sports"}},
		},
	}
	svc := newTestAnalytics(store, network, &fakeStatsStore{})
	ctx := context.Background()

	first, err := svc.SuccessRateByCategory(ctx, 0.2)
	require.NoError(t, err)
	second, err := svc.SuccessRateByCategory(ctx, 0.2)
	require.NoError(t, err)
	require.Equal(t, first, second)

	links1, err := svc.TraderNetwork(ctx, domain.NetworkParams{MinShared: 2, Limit: 50})
	require.NoError(t, err)
	links2, err := svc.TraderNetwork(ctx, domain.NetworkParams{MinShared: 2, Limit: 50})
	require.NoError(t, err)
	require.Equal(t, links1, links2)

	flow1, err := svc.CategoryFlow(ctx)
	require.NoError(t, err)
	flow2, err := svc.CategoryFlow(ctx)
	require.NoError(t, err)
	require.Equal(t, flow1, flow2)
}
