package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TimeLayout is the on-disk format of every timestamp (UTC, second precision).
const TimeLayout = "2006-01-02 15:04:05"

// DateLayout names daily files.
const DateLayout = "2006-01-02"

// Timestamp is a UTC instant serialized as TimeLayout.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to seconds and converts it to UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Second)}
}

// String returns the TimeLayout form.
func (t Timestamp) String() string {
	return t.UTC().Format(TimeLayout)
}

// MarshalJSON writes "2006-01-02 15:04:05".
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts TimeLayout and, for older files, RFC 3339.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	if v, err := time.ParseInLocation(TimeLayout, s, time.UTC); err == nil {
		t.Time = v
		return nil
	}
	v, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("cannot parse timestamp %q", s)
	}
	t.Time = v.UTC()
	return nil
}

// Quote is one venue's best bid/ask snapshot.
// BidQty/AskQty are nil when the venue does not expose depth.
type Quote struct {
	Exchange  string    `json:"exchange"`
	Timestamp Timestamp `json:"timestamp"`
	Bid       float64   `json:"bid"`
	Ask       float64   `json:"ask"`
	BidQty    *float64  `json:"bid_qty"`
	AskQty    *float64  `json:"ask_qty"`
}

// Qty returns a pointer to v, for building quotes with known depth.
func Qty(v float64) *float64 {
	return &v
}

// Pair is the traded instrument, e.g. BTC/USDT.
type Pair struct {
	Base  string
	Quote string
}

// DefaultPair is BTC/USDT.
var DefaultPair = Pair{Base: "BTC", Quote: "USDT"}

func (p Pair) String() string {
	return p.Base + "/" + p.Quote
}

// Join renders the pair with sep, e.g. "BTC-USDT".
func (p Pair) Join(sep string) string {
	return strings.ToUpper(p.Base) + sep + strings.ToUpper(p.Quote)
}

// Fiat returns the pair with a USD stablecoin quote mapped to USD, for venues
// that only list fiat books.
func (p Pair) Fiat() Pair {
	switch strings.ToUpper(p.Quote) {
	case "USDT", "USDC":
		return Pair{Base: p.Base, Quote: "USD"}
	}
	return p
}

// DailySummary is fully derived from one day's log and rewritten on every run.
type DailySummary struct {
	Date                 string    `json:"date"`
	LatestUpdate         Timestamp `json:"latest_update"`
	BestExchangeToBuy    string    `json:"best_exchange_to_buy"`
	BestExchangeToSell   string    `json:"best_exchange_to_sell"`
	ArbitrageOpportunity float64   `json:"arbitrage_opportunity"`
	ExchangeData         []Quote   `json:"exchange_data"`
}
