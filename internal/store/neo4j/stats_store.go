package neo4j

import (
	"context"
	"errors"

	"github.com/TimonStadelmann/polymarket-analyzer/internal/domain"
)

// StatsStore implements domain.StatsStore with whole-graph aggregates. These
// queries ignore every contrarian filter on purpose: the totals describe the
// raw dataset.
type StatsStore struct {
	run runner
}

// NewStatsStore creates a StatsStore backed by the shared client.
func NewStatsStore(c *Client) *StatsStore {
	return &StatsStore{run: c}
}

const nodeCountsQuery = `
MATCH (n)
WITH labels(n)[0] AS label, count(*) AS count
RETURN label, count
ORDER BY count DESC`

// NodeCounts returns the number of nodes per primary label.
func (s *StatsStore) NodeCounts(ctx context.Context) (map[string]int64, error) {
	rows, err := s.run.Read(ctx, "node counts", nodeCountsQuery, nil)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.str("label")] = r.integer("count")
	}
	return counts, nil
}

const relationshipCountsQuery = `
MATCH ()-[r]->()
WITH type(r) AS rel_type, count(*) AS count
RETURN rel_type, count
ORDER BY count DESC`

// RelationshipCounts returns the number of relationships per type.
func (s *StatsStore) RelationshipCounts(ctx context.Context) (map[string]int64, error) {
	rows, err := s.run.Read(ctx, "relationship counts", relationshipCountsQuery, nil)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.str("rel_type")] = r.integer("count")
	}
	return counts, nil
}

const totalVolumeQuery = `
MATCH (t:Trade)
RETURN sum(t.size_usdc) AS total_volume`

// TotalVolumeUSD returns the sum of size_usdc over every trade node,
// independent of any filter.
func (s *StatsStore) TotalVolumeUSD(ctx context.Context) (float64, error) {
	rows, err := s.run.Read(ctx, "total volume", totalVolumeQuery, nil)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].float("total_volume"), nil
}

const resolvedMarketsQuery = `
MATCH (m:Market)
WHERE m.resolved = true
RETURN count(m) AS resolved_count`

// ResolvedMarketCount returns the number of resolved markets.
func (s *StatsStore) ResolvedMarketCount(ctx context.Context) (int64, error) {
	rows, err := s.run.Read(ctx, "resolved markets", resolvedMarketsQuery, nil)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].integer("resolved_count"), nil
}

const pingQuery = `RETURN 1 AS health`

// Ping issues a trivial round-trip query to probe liveness.
func (s *StatsStore) Ping(ctx context.Context) error {
	rows, err := s.run.Read(ctx, "ping", pingQuery, nil)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return domain.NewQueryError("ping", errors.New("empty result"))
	}
	return nil
}
