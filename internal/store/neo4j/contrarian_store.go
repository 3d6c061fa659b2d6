package neo4j

import (
	"context"
	"fmt"
	"time"

	"github.com/TimonStadelmann/polymarket-analyzer/internal/domain"
)

// ContrarianStore implements domain.ContrarianStore. A contrarian win is a
// BUY trade on a resolved market whose outcome matched winning_outcome, with
// an entry price in (0, maxEntryPrice).
type ContrarianStore struct {
	run runner
}

// NewContrarianStore creates a ContrarianStore backed by the shared client.
func NewContrarianStore(c *Client) *ContrarianStore {
	return &ContrarianStore{run: c}
}

const leaderboardQuery = `
MATCH (u:User)-[:PLACED_TRADE]->(t:Trade)-[:FOR_OUTCOME]->(o:Outcome)
MATCH (o)<-[:HAS_OUTCOME]-(m:Market)-[:PART_OF_EVENT]->(e:Event)
WHERE m.resolved = true
  AND m.winning_outcome = o.outcome_name
  AND t.side = 'BUY'
  AND t.price < $maxEntryPrice
  AND t.price > 0.0
  %s
WITH u, t, m, e, o,
     (1.0 - t.price) / t.price AS roi_multiplier,
     t.size_usdc / t.price AS potential_payout
WHERE roi_multiplier * 100 >= $minRoi
RETURN u.address AS trader_address,
       u.name AS trader_name,
       u.pseudonym AS trader_pseudonym,
       u.profile_image AS trader_image,
       m.question AS market_question,
       m.slug AS market_slug,
       e.category AS category,
       o.outcome_name AS outcome,
       t.price AS entry_price,
       t.size_usdc AS investment_usd,
       potential_payout AS payout_usd,
       roi_multiplier * 100 AS roi_percent,
       t.timestamp AS trade_time,
       t.transaction_hash AS tx_hash
ORDER BY roi_percent DESC, investment_usd DESC
LIMIT $limit`

// categoryClause is appended to the leaderboard WHERE block when a category
// filter is requested. The category value itself is always a bound parameter.
const categoryClause = `AND e.category = $category`

// Leaderboard returns winning contrarian trades ordered by ROI percent
// descending, investment descending, capped at p.Limit.
func (s *ContrarianStore) Leaderboard(ctx context.Context, p domain.LeaderboardParams) ([]domain.LeaderboardEntry, error) {
	clause := ""
	params := map[string]any{
		"maxEntryPrice": p.MaxEntryPrice,
		"minRoi":        p.MinROI,
		"limit":         int64(p.Limit),
	}
	if p.Category != "" && p.Category != "All" {
		clause = categoryClause
		params["category"] = p.Category
	}

	rows, err := s.run.Read(ctx, "leaderboard", fmt.Sprintf(leaderboardQuery, clause), params)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LeaderboardEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, domain.LeaderboardEntry{
			TraderAddress:   r.str("trader_address"),
			TraderName:      r.str("trader_name"),
			TraderPseudonym: r.str("trader_pseudonym"),
			TraderImage:     r.str("trader_image"),
			MarketQuestion:  r.str("market_question"),
			MarketSlug:      r.str("market_slug"),
			Category:        r.str("category"),
			Outcome:         r.str("outcome"),
			EntryPrice:      r.float("entry_price"),
			InvestmentUSD:   r.float("investment_usd"),
			PayoutUSD:       r.float("payout_usd"),
			ROIPercent:      r.float("roi_percent"),
			TradeTime:       r.epochString("trade_time"),
			TxHash:          r.str("tx_hash"),
		})
	}
	return entries, nil
}

const categoriesQuery = `
MATCH (e:Event)
RETURN DISTINCT e.category AS category
ORDER BY category`

// Categories returns every distinct event category in ascending order.
func (s *ContrarianStore) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.run.Read(ctx, "categories", categoriesQuery, nil)
	if err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(rows))
	for _, r := range rows {
		categories = append(categories, r.str("category"))
	}
	return categories, nil
}

const categoryTotalsQuery = `
MATCH (u:User)-[:PLACED_TRADE]->(t:Trade)-[:FOR_OUTCOME]->(o:Outcome)
MATCH (o)<-[:HAS_OUTCOME]-(m:Market)-[:PART_OF_EVENT]->(e:Event)
WHERE m.resolved = true
  AND t.side = 'BUY'
  AND t.price < $maxEntryPrice
  AND t.price > 0.0
WITH e.category AS category, t,
     (m.winning_outcome = o.outcome_name) AS is_winner
RETURN category,
       count(DISTINCT t) AS total_bets,
       sum(CASE WHEN is_winner THEN 1 ELSE 0 END) AS winning_bets,
       sum(CASE WHEN is_winner THEN t.size_usdc ELSE 0 END) AS winning_volume,
       sum(t.size_usdc) AS total_volume,
       avg(t.price) AS avg_entry_price`

// CategoryTotals returns per-category contrarian bet aggregates, winners and
// losers alike. The service derives the success rate and ordering.
func (s *ContrarianStore) CategoryTotals(ctx context.Context, maxEntryPrice float64) ([]domain.CategoryTotals, error) {
	rows, err := s.run.Read(ctx, "category totals", categoryTotalsQuery, map[string]any{
		"maxEntryPrice": maxEntryPrice,
	})
	if err != nil {
		return nil, err
	}

	totals := make([]domain.CategoryTotals, 0, len(rows))
	for _, r := range rows {
		totals = append(totals, domain.CategoryTotals{
			Category:            r.str("category"),
			TotalContrarianBets: r.integer("total_bets"),
			WinningBets:         r.integer("winning_bets"),
			WinningVolume:       r.float("winning_volume"),
			TotalVolume:         r.float("total_volume"),
			AvgEntryPrice:       r.float("avg_entry_price"),
		})
	}
	return totals, nil
}

const traderTotalsQuery = `
MATCH (u:User)-[:PLACED_TRADE]->(t:Trade)-[:FOR_OUTCOME]->(o:Outcome)
MATCH (o)<-[:HAS_OUTCOME]-(m:Market)
WHERE m.resolved = true
  AND m.winning_outcome = o.outcome_name
  AND t.side = 'BUY'
  AND t.price < $maxEntryPrice
  AND t.price > 0.0
WITH u,
     count(DISTINCT t) AS contrarian_wins,
     sum(t.size_usdc) AS total_investment,
     sum(t.size_usdc / t.price) AS total_payout,
     avg(t.price) AS avg_entry_price,
     min(t.price) AS best_entry_price
WHERE contrarian_wins >= $minWins
RETURN u.address AS trader_address,
       u.name AS trader_name,
       u.pseudonym AS trader_pseudonym,
       u.profile_image AS trader_image,
       contrarian_wins,
       total_investment,
       total_payout,
       avg_entry_price,
       best_entry_price`

// TraderTotals returns per-trader winning-trade aggregates for traders with
// at least minWins wins. Profit, ROI, ordering and the limit are applied by
// the service.
func (s *ContrarianStore) TraderTotals(ctx context.Context, minWins int, maxEntryPrice float64) ([]domain.TraderTotals, error) {
	rows, err := s.run.Read(ctx, "trader totals", traderTotalsQuery, map[string]any{
		"minWins":       int64(minWins),
		"maxEntryPrice": maxEntryPrice,
	})
	if err != nil {
		return nil, err
	}

	totals := make([]domain.TraderTotals, 0, len(rows))
	for _, r := range rows {
		totals = append(totals, domain.TraderTotals{
			Address:         r.str("trader_address"),
			Name:            r.str("trader_name"),
			Pseudonym:       r.str("trader_pseudonym"),
			Image:           r.str("trader_image"),
			ContrarianWins:  r.integer("contrarian_wins"),
			TotalInvestment: r.float("total_investment"),
			TotalPayout:     r.float("total_payout"),
			AvgEntryPrice:   r.float("avg_entry_price"),
			BestEntryPrice:  r.float("best_entry_price"),
		})
	}
	return totals, nil
}

const timelineQuery = `
MATCH (u:User)-[:PLACED_TRADE]->(t:Trade)-[:FOR_OUTCOME]->(o:Outcome)
MATCH (o)<-[:HAS_OUTCOME]-(m:Market)-[:PART_OF_EVENT]->(e:Event)
WHERE m.resolved = true
  AND m.winning_outcome = o.outcome_name
  AND t.side = 'BUY'
  AND t.price < $maxEntryPrice
  AND t.price > 0.0
RETURN t.timestamp AS timestamp,
       t.date AS date,
       e.category AS category,
       t.price AS entry_price,
       (1.0 - t.price) / t.price * 100 AS roi_percent,
       m.question AS market_question,
       o.outcome_name AS outcome,
       t.size_usdc AS investment,
       u.address AS trader_address,
       u.name AS trader_name
ORDER BY t.timestamp`

// Timeline returns every winning contrarian trade below maxEntryPrice in
// chronological order. There is no limit; this feeds a time-series plot.
func (s *ContrarianStore) Timeline(ctx context.Context, maxEntryPrice float64) ([]domain.TimelinePoint, error) {
	rows, err := s.run.Read(ctx, "timeline", timelineQuery, map[string]any{
		"maxEntryPrice": maxEntryPrice,
	})
	if err != nil {
		return nil, err
	}

	points := make([]domain.TimelinePoint, 0, len(rows))
	for _, r := range rows {
		ts := r.integer("timestamp")
		date := r.str("date")
		if date == "" {
			date = time.Unix(ts, 0).UTC().Format(time.RFC3339)
		}
		points = append(points, domain.TimelinePoint{
			Timestamp:      ts,
			Date:           date,
			Category:       r.str("category"),
			EntryPrice:     r.float("entry_price"),
			ROIPercent:     r.float("roi_percent"),
			MarketQuestion: r.str("market_question"),
			Outcome:        r.str("outcome"),
			Investment:     r.float("investment"),
			TraderAddress:  r.str("trader_address"),
			TraderName:     r.str("trader_name"),
		})
	}
	return points, nil
}
