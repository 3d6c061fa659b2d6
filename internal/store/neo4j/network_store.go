package neo4j

import (
	"context"

	"github.com/TimonStadelmann/polymarket-analyzer/internal/domain"
)

// NetworkStore implements domain.NetworkStore. Each query first restricts to
// a bounded candidate pool of the most active entities so that the pairwise
// overlap computed above this layer stays tractable on large graphs. Less
// active entities are deliberately undercounted; the pool sizes are
// configuration, not correctness bounds.
type NetworkStore struct {
	run runner
}

// NewNetworkStore creates a NetworkStore backed by the shared client.
func NewNetworkStore(c *Client) *NetworkStore {
	return &NetworkStore{run: c}
}

const traderMarketSetsQuery = `
MATCH (m:Market)<-[:ON_MARKET]-(:Trade)
WITH m, count(*) AS market_trades
ORDER BY market_trades DESC, m.condition_id
LIMIT $marketPool
WITH collect(m) AS pool
UNWIND pool AS m
MATCH (u:User)-[:PLACED_TRADE]->(t:Trade)-[:ON_MARKET]->(m)
WITH u, count(DISTINCT t) AS trades, collect(DISTINCT m.condition_id) AS market_ids
ORDER BY trades DESC, u.address
LIMIT $traderPool
RETURN u.address AS address,
       u.name AS name,
       u.pseudonym AS pseudonym,
       u.profile_image AS image,
       trades,
       market_ids`

// TraderMarketSets returns each pooled trader's distinct markets among the
// most-traded markets. Pool membership: top marketPool markets by trade
// count, then top traderPool traders by trade count within those markets.
func (s *NetworkStore) TraderMarketSets(ctx context.Context, marketPool, traderPool int) ([]domain.TraderMarkets, error) {
	rows, err := s.run.Read(ctx, "trader market sets", traderMarketSetsQuery, map[string]any{
		"marketPool": int64(marketPool),
		"traderPool": int64(traderPool),
	})
	if err != nil {
		return nil, err
	}

	sets := make([]domain.TraderMarkets, 0, len(rows))
	for _, r := range rows {
		sets = append(sets, domain.TraderMarkets{
			Trader: domain.NetworkTrader{
				Address:   r.str("address"),
				Name:      r.str("name"),
				Pseudonym: r.str("pseudonym"),
				Image:     r.str("image"),
				Trades:    r.integer("trades"),
			},
			MarketIDs: r.strings("market_ids"),
		})
	}
	return sets, nil
}

const traderBasketsQuery = `
MATCH (u:User)-[:PLACED_TRADE]->(t:Trade)-[:ON_MARKET]->(m:Market)
WHERE m.resolved = true
WITH u, count(DISTINCT t) AS trades, collect(DISTINCT m) AS markets
WHERE size(markets) > 1
WITH u, trades, markets
ORDER BY trades DESC, u.address
LIMIT $traderPool
UNWIND markets AS m
OPTIONAL MATCH (m)-[:PART_OF_EVENT]->(e:Event)
RETURN u.address AS trader,
       m.condition_id AS market_id,
       m.question AS question,
       m.slug AS slug,
       coalesce(e.category, 'Unknown') AS category`

// TraderBaskets returns the distinct resolved markets of each pooled
// multi-market trader, one row per (trader, market). Pool membership: top
// traderPool traders by trade count among those with more than one resolved
// market.
func (s *NetworkStore) TraderBaskets(ctx context.Context, traderPool int) ([]domain.TraderBasket, error) {
	rows, err := s.run.Read(ctx, "trader baskets", traderBasketsQuery, map[string]any{
		"traderPool": int64(traderPool),
	})
	if err != nil {
		return nil, err
	}

	// Rows arrive grouped per trader because Cypher emits UNWIND results in
	// input order; still index by address to be safe.
	byTrader := make(map[string]int)
	baskets := make([]domain.TraderBasket, 0)
	for _, r := range rows {
		trader := r.str("trader")
		idx, ok := byTrader[trader]
		if !ok {
			idx = len(baskets)
			byTrader[trader] = idx
			baskets = append(baskets, domain.TraderBasket{TraderAddress: trader})
		}
		baskets[idx].Markets = append(baskets[idx].Markets, domain.CorrelatedMarket{
			ID:       r.str("market_id"),
			Question: r.str("question"),
			Slug:     r.str("slug"),
			Category: r.str("category"),
		})
	}
	return baskets, nil
}

const categorySequencesQuery = `
MATCH (u:User)-[:PLACED_TRADE]->(:Trade)-[:ON_MARKET]->(:Market)-[:PART_OF_EVENT]->(:Event)
WITH u, count(*) AS trades
WHERE trades >= $minTrades
WITH u, trades
ORDER BY trades DESC, u.address
LIMIT $flowPool
MATCH (u)-[:PLACED_TRADE]->(t:Trade)-[:ON_MARKET]->(:Market)-[:PART_OF_EVENT]->(e:Event)
WITH u, e.category AS category, t.timestamp AS ts
ORDER BY u.address, ts
RETURN u.address AS address, collect(category) AS categories`

// CategorySequences returns each pooled user's trade categories in
// chronological order, repeats included. Pool membership: top flowPool users
// by trade count among those with at least minTrades categorized trades.
func (s *NetworkStore) CategorySequences(ctx context.Context, flowPool, minTrades int) ([]domain.CategorySequence, error) {
	rows, err := s.run.Read(ctx, "category sequences", categorySequencesQuery, map[string]any{
		"flowPool":  int64(flowPool),
		"minTrades": int64(minTrades),
	})
	if err != nil {
		return nil, err
	}

	sequences := make([]domain.CategorySequence, 0, len(rows))
	for _, r := range rows {
		sequences = append(sequences, domain.CategorySequence{
			Address:    r.str("address"),
			Categories: r.strings("categories"),
		})
	}
	return sequences, nil
}
