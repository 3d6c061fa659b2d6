package domain

// LeaderboardEntry is one winning contrarian trade on the leaderboard. A row
// exists per trade, not per trader; the same trader can appear many times.
type LeaderboardEntry struct {
	TraderAddress   string  `json:"trader_address"`
	TraderName      string  `json:"trader_name"`
	TraderPseudonym string  `json:"trader_pseudonym"`
	TraderImage     string  `json:"trader_image"`
	MarketQuestion  string  `json:"market_question"`
	MarketSlug      string  `json:"market_slug"`
	Category        string  `json:"category"`
	Outcome         string  `json:"outcome"`
	EntryPrice      float64 `json:"entry_price"`
	InvestmentUSD   float64 `json:"investment_usd"`
	PayoutUSD       float64 `json:"payout_usd"`
	ROIPercent      float64 `json:"roi_percent"`
	TradeTime       string  `json:"trade_time"`
	TxHash          string  `json:"tx_hash"`
}

// CategoryTotals is the raw per-category aggregate returned by the store.
// SuccessRate is derived by the service layer, which owns the divide-by-zero
// guard.
type CategoryTotals struct {
	Category           string
	TotalContrarianBets int64
	WinningBets        int64
	WinningVolume      float64
	TotalVolume        float64
	AvgEntryPrice      float64
}

// CategoryStat is the per-category success-rate row served to callers.
type CategoryStat struct {
	Category            string  `json:"category"`
	TotalContrarianBets int64   `json:"total_contrarian_bets"`
	WinningBets         int64   `json:"winning_bets"`
	SuccessRate         float64 `json:"success_rate"`
	WinningVolume       float64 `json:"winning_volume"`
	TotalVolume         float64 `json:"total_volume"`
	AvgEntryPrice       float64 `json:"avg_entry_price"`
}

// TraderTotals is the raw per-trader aggregate over winning contrarian
// trades. Profit and ROI are derived by the service layer.
type TraderTotals struct {
	Address         string
	Name            string
	Pseudonym       string
	Image           string
	ContrarianWins  int64
	TotalInvestment float64
	TotalPayout     float64
	AvgEntryPrice   float64
	BestEntryPrice  float64
}

// TopTrader is one row of the top contrarian traders ranking.
type TopTrader struct {
	TraderAddress   string  `json:"trader_address"`
	TraderName      string  `json:"trader_name"`
	TraderPseudonym string  `json:"trader_pseudonym"`
	TraderImage     string  `json:"trader_image"`
	ContrarianWins  int64   `json:"contrarian_wins"`
	TotalInvestment float64 `json:"total_investment"`
	TotalPayout     float64 `json:"total_payout"`
	Profit          float64 `json:"profit"`
	ROIPercent      float64 `json:"roi_percent"`
	AvgEntryPrice   float64 `json:"avg_entry_price"`
	BestEntryPrice  float64 `json:"best_entry_price"`
}

// TimelinePoint is one winning contrarian trade in chronological order,
// shaped for time-series plotting.
type TimelinePoint struct {
	Timestamp      int64   `json:"timestamp"`
	Date           string  `json:"date"`
	Category       string  `json:"category"`
	EntryPrice     float64 `json:"entry_price"`
	ROIPercent     float64 `json:"roi_percent"`
	MarketQuestion string  `json:"market_question"`
	Outcome        string  `json:"outcome"`
	Investment     float64 `json:"investment"`
	TraderAddress  string  `json:"trader_address"`
	TraderName     string  `json:"trader_name"`
}
