package domain

// GraphTotals holds named whole-graph totals derived from the label counts
// plus two dedicated aggregates.
type GraphTotals struct {
	TotalEvents     int64   `json:"total_events"`
	TotalMarkets    int64   `json:"total_markets"`
	TotalUsers      int64   `json:"total_users"`
	TotalTrades     int64   `json:"total_trades"`
	TotalOutcomes   int64   `json:"total_outcomes"`
	ResolvedMarkets int64   `json:"resolved_markets"`
	TotalVolumeUSD  float64 `json:"total_volume_usd"`
}

// HealthStatus is the result of the liveness probe against the graph store.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// DatabaseStats is the full stats payload: node counts by label, relationship
// counts by type, named totals, and store health.
type DatabaseStats struct {
	Nodes         map[string]int64 `json:"nodes"`
	Relationships map[string]int64 `json:"relationships"`
	Stats         GraphTotals      `json:"stats"`
	Health        HealthStatus     `json:"health"`
}
