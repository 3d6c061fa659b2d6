package domain

// LeaderboardParams filters the contrarian leaderboard. Category is an exact
// Event.category match; empty (or "All") means no category filter.
type LeaderboardParams struct {
	Limit         int     `json:"limit"`
	Category      string  `json:"category,omitempty"`
	MinROI        float64 `json:"minRoi"`
	MaxEntryPrice float64 `json:"maxEntryPrice"`
}

// TopTradersParams filters the top contrarian traders ranking.
type TopTradersParams struct {
	Limit         int     `json:"limit"`
	MinWins       int     `json:"minWins"`
	MaxEntryPrice float64 `json:"maxEntryPrice"`
}

// NetworkParams filters the trader network and market correlation pair
// queries. MinShared is the minimum overlap (shared markets or shared
// traders) for a pair to be reported.
type NetworkParams struct {
	MinShared int `json:"minShared"`
	Limit     int `json:"limit"`
}

// TimelineParams filters the contrarian timeline.
type TimelineParams struct {
	MaxEntryPrice float64 `json:"maxEntryPrice"`
}
