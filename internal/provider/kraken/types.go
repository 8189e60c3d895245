package kraken

// TickerResponse is the /0/public/Ticker response. Result is keyed by
// Kraken's internal pair name (XBTUSD comes back as XXBTZUSD).
type TickerResponse struct {
	Error  []string               `json:"error"`
	Result map[string]TickerEntry `json:"result"`
}

// TickerEntry holds a = [price, whole lot volume, lot volume] and b likewise.
type TickerEntry struct {
	Ask []string `json:"a"`
	Bid []string `json:"b"`
}
