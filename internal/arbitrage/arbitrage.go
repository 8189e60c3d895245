package arbitrage

import (
	"errors"

	"btc-tracker/internal/model"

	"github.com/shopspring/decimal"
)

// TradeFee (0.1%) is taken once off the gross spread, not per leg.
var TradeFee = decimal.RequireFromString("0.001")

// ErrNoQuotes is returned when there is nothing to compare.
var ErrNoQuotes = errors.New("no quotes")

// Best is the cheapest place to buy and the richest place to sell.
type Best struct {
	BuyExchange  string
	Ask          float64 // lowest ask
	SellExchange string
	Bid          float64 // highest bid
}

// Spread is Bid - Ask. Negative means no arbitrage; it is never clamped.
func (b Best) Spread() float64 {
	return b.Bid - b.Ask
}

// Profitable reports a positive spread between two different venues.
func (b Best) Profitable() bool {
	return b.Bid > b.Ask && b.BuyExchange != b.SellExchange
}

// FindBest scans quotes in order. On equal prices the first quote wins.
func FindBest(quotes []model.Quote) (Best, error) {
	if len(quotes) == 0 {
		return Best{}, ErrNoQuotes
	}
	best := Best{
		BuyExchange:  quotes[0].Exchange,
		Ask:          quotes[0].Ask,
		SellExchange: quotes[0].Exchange,
		Bid:          quotes[0].Bid,
	}
	for _, q := range quotes[1:] {
		if q.Ask < best.Ask {
			best.Ask = q.Ask
			best.BuyExchange = q.Exchange
		}
		if q.Bid > best.Bid {
			best.Bid = q.Bid
			best.SellExchange = q.Exchange
		}
	}
	return best, nil
}

// NetProfitPercentage is the return of buying at ask and selling at bid after
// TradeFee, as a percentage of ask, rounded to 4 places.
func NetProfitPercentage(ask, bid float64) decimal.Decimal {
	a := decimal.NewFromFloat(ask)
	if a.IsZero() {
		return decimal.Zero
	}
	net := decimal.NewFromFloat(bid).Sub(a).Mul(decimal.NewFromInt(1).Sub(TradeFee))
	return net.Div(a).Mul(decimal.NewFromInt(100)).Round(4)
}
