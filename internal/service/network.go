package service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/TimonStadelmann/polymarket-analyzer/internal/domain"
)

// TraderNetwork finds pairs of pooled traders whose market sets overlap in at
// least p.MinShared markets. Each unordered pair appears once with the lower
// address first. Ordered by shared markets descending, then address pair
// ascending, capped at p.Limit.
func (s *Analytics) TraderNetwork(ctx context.Context, p domain.NetworkParams) ([]domain.TraderLink, error) {
	sets, err := s.network.TraderMarketSets(ctx, s.cfg.MarketPool, s.cfg.TraderPool)
	if err != nil {
		return nil, err
	}

	links := pairTraders(sets, p.MinShared)
	s.logger.DebugContext(ctx, "trader network computed",
		slog.Int("pool_traders", len(sets)),
		slog.Int("links", len(links)),
	)

	sort.Slice(links, func(i, j int) bool {
		if links[i].SharedMarkets != links[j].SharedMarkets {
			return links[i].SharedMarkets > links[j].SharedMarkets
		}
		if links[i].Trader1.Address != links[j].Trader1.Address {
			return links[i].Trader1.Address < links[j].Trader1.Address
		}
		return links[i].Trader2.Address < links[j].Trader2.Address
	})

	if p.Limit > 0 && len(links) > p.Limit {
		links = links[:p.Limit]
	}
	return links, nil
}

// pairTraders computes the market-set intersection size for every unordered
// trader pair and keeps pairs meeting minShared. The pool sizes bound this to
// a small quadratic.
func pairTraders(sets []domain.TraderMarkets, minShared int) []domain.TraderLink {
	indexed := make([]map[string]struct{}, len(sets))
	for i, s := range sets {
		m := make(map[string]struct{}, len(s.MarketIDs))
		for _, id := range s.MarketIDs {
			m[id] = struct{}{}
		}
		indexed[i] = m
	}

	var links []domain.TraderLink
	for i := 0; i < len(sets); i++ {
		for j := i + 1; j < len(sets); j++ {
			a, b := sets[i], sets[j]
			if a.Trader.Address == b.Trader.Address {
				continue
			}

			shared := 0
			small, large := indexed[i], indexed[j]
			if len(large) < len(small) {
				small, large = large, small
			}
			for id := range small {
				if _, ok := large[id]; ok {
					shared++
				}
			}
			if shared < minShared {
				continue
			}

			t1, t2 := a.Trader, b.Trader
			if t2.Address < t1.Address {
				t1, t2 = t2, t1
			}
			links = append(links, domain.TraderLink{
				Trader1:       t1,
				Trader2:       t2,
				SharedMarkets: shared,
			})
		}
	}
	return links
}

// MarketCorrelation finds pairs of resolved markets connected by pooled
// traders who traded on both, counting distinct traders per pair. Each
// unordered pair appears once with the lower market ID first. Ordered by
// shared traders descending, then ID pair ascending, capped at p.Limit.
func (s *Analytics) MarketCorrelation(ctx context.Context, p domain.NetworkParams) ([]domain.MarketLink, error) {
	baskets, err := s.network.TraderBaskets(ctx, s.cfg.TraderPool)
	if err != nil {
		return nil, err
	}

	links := correlateMarkets(baskets, p.MinShared)
	s.logger.DebugContext(ctx, "market correlation computed",
		slog.Int("pool_baskets", len(baskets)),
		slog.Int("links", len(links)),
	)

	sort.Slice(links, func(i, j int) bool {
		if links[i].SharedTraders != links[j].SharedTraders {
			return links[i].SharedTraders > links[j].SharedTraders
		}
		if links[i].Market1.ID != links[j].Market1.ID {
			return links[i].Market1.ID < links[j].Market1.ID
		}
		return links[i].Market2.ID < links[j].Market2.ID
	})

	if p.Limit > 0 && len(links) > p.Limit {
		links = links[:p.Limit]
	}
	return links, nil
}

type marketPair struct {
	id1, id2 string
}

// correlateMarkets counts, per unordered market pair, how many baskets
// contain both markets. A basket's markets are distinct, so each trader
// contributes at most one to any pair.
func correlateMarkets(baskets []domain.TraderBasket, minShared int) []domain.MarketLink {
	counts := make(map[marketPair]int)
	meta := make(map[string]domain.CorrelatedMarket)

	for _, basket := range baskets {
		markets := dedupeMarkets(basket.Markets)
		for _, m := range markets {
			if _, ok := meta[m.ID]; !ok {
				meta[m.ID] = m
			}
		}
		for i := 0; i < len(markets); i++ {
			for j := i + 1; j < len(markets); j++ {
				id1, id2 := markets[i].ID, markets[j].ID
				if id2 < id1 {
					id1, id2 = id2, id1
				}
				counts[marketPair{id1, id2}]++
			}
		}
	}

	var links []domain.MarketLink
	for pair, n := range counts {
		if n < minShared {
			continue
		}
		links = append(links, domain.MarketLink{
			Market1:       meta[pair.id1],
			Market2:       meta[pair.id2],
			SharedTraders: n,
		})
	}
	return links
}

// dedupeMarkets drops repeated market IDs while preserving order. The store
// collects distinct markets already; this keeps the pair counts honest if a
// basket ever carries duplicates.
func dedupeMarkets(markets []domain.CorrelatedMarket) []domain.CorrelatedMarket {
	seen := make(map[string]struct{}, len(markets))
	out := markets[:0:0]
	for _, m := range markets {
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		out = append(out, m)
	}
	return out
}
