package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/TimonStadelmann/polymarket-analyzer/internal/domain"
)

// DatabaseStats assembles whole-graph statistics: node counts by label,
// relationship counts by type, named totals, and a liveness probe. The five
// store calls are independent and run concurrently, each in its own session;
// if any of them fails the whole call fails, so callers never see a
// partially assembled payload.
func (s *Analytics) DatabaseStats(ctx context.Context) (domain.DatabaseStats, error) {
	var (
		nodes    map[string]int64
		rels     map[string]int64
		volume   float64
		resolved int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		nodes, err = s.stats.NodeCounts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		rels, err = s.stats.RelationshipCounts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		volume, err = s.stats.TotalVolumeUSD(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		resolved, err = s.stats.ResolvedMarketCount(gctx)
		return err
	})
	g.Go(func() error {
		return s.stats.Ping(gctx)
	})

	if err := g.Wait(); err != nil {
		return domain.DatabaseStats{}, err
	}

	return domain.DatabaseStats{
		Nodes:         nodes,
		Relationships: rels,
		Stats: domain.GraphTotals{
			TotalEvents:     nodes["Event"],
			TotalMarkets:    nodes["Market"],
			TotalUsers:      nodes["User"],
			TotalTrades:     nodes["Trade"],
			TotalOutcomes:   nodes["Outcome"],
			ResolvedMarkets: resolved,
			TotalVolumeUSD:  volume,
		},
		Health: domain.HealthStatus{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}
