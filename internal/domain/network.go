package domain

// NetworkTrader identifies one endpoint of a trader-network edge.
type NetworkTrader struct {
	Address   string `json:"address"`
	Name      string `json:"name"`
	Pseudonym string `json:"pseudonym"`
	Image     string `json:"image"`
	Trades    int64  `json:"trades"`
}

// TraderMarkets is a pooled trader together with the distinct markets they
// traded on. The market set feeds the pairwise overlap computation.
type TraderMarkets struct {
	Trader    NetworkTrader
	MarketIDs []string
}

// TraderLink is an edge between two traders who traded on the same markets.
// Trader1.Address < Trader2.Address, so each unordered pair appears once.
type TraderLink struct {
	Trader1       NetworkTrader `json:"trader1"`
	Trader2       NetworkTrader `json:"trader2"`
	SharedMarkets int           `json:"shared_markets"`
}

// CorrelatedMarket identifies one endpoint of a market-correlation edge.
type CorrelatedMarket struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Slug     string `json:"slug"`
	Category string `json:"category"`
}

// TraderBasket is a pooled trader's distinct resolved markets. Each basket
// contributes one shared trader to every market pair it contains.
type TraderBasket struct {
	TraderAddress string
	Markets       []CorrelatedMarket
}

// MarketLink is an edge between two resolved markets that share traders.
// Market1.ID < Market2.ID, so each unordered pair appears once.
type MarketLink struct {
	Market1       CorrelatedMarket `json:"market1"`
	Market2       CorrelatedMarket `json:"market2"`
	SharedTraders int              `json:"shared_traders"`
}

// CategorySequence is a pooled user's trade categories in chronological
// order, repeats included; the service reduces it to distinct-in-order.
type CategorySequence struct {
	Address    string
	Categories []string
}

// CategoryTransition counts how many users moved from one trade category to
// another in their distinct-in-order category sequence.
type CategoryTransition struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Value int    `json:"value"`
}
