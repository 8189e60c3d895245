package binance

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"btc-tracker/internal/model"
	"btc-tracker/internal/provider"
	"btc-tracker/internal/provider/transport"

	"github.com/go-resty/resty/v2"
)

const (
	Name           = "Binance"
	DefaultBaseURL = "https://api.binance.com"
)

// Client reads the best bid/ask from Binance spot.
type Client struct {
	BaseURL string
	Now     func() time.Time

	http *resty.Client
	pair model.Pair
}

func New(http *resty.Client, pair model.Pair) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		Now:     time.Now,
		http:    http,
		pair:    pair,
	}
}

func (c *Client) Name() string { return Name }

func (c *Client) FetchQuote(ctx context.Context) (model.Quote, bool) {
	q, err := c.fetch(ctx)
	if err != nil {
		return provider.Absent(Name, err)
	}
	return q, true
}

func (c *Client) fetch(ctx context.Context) (model.Quote, error) {
	// Binance expects e.g. BTCUSDT
	u := fmt.Sprintf("%s/api/v3/ticker/bookTicker?symbol=%s", c.BaseURL, url.QueryEscape(c.pair.Join("")))
	var t BookTicker
	if err := transport.GetJSON(ctx, c.http, u, &t); err != nil {
		return model.Quote{}, err
	}
	if t.Code != 0 {
		return model.Quote{}, fmt.Errorf("binance error %d: %s", t.Code, t.Msg)
	}

	bid, err := provider.ParseFloat("bidPrice", t.BidPrice)
	if err != nil {
		return model.Quote{}, err
	}
	ask, err := provider.ParseFloat("askPrice", t.AskPrice)
	if err != nil {
		return model.Quote{}, err
	}
	bidQty, err := provider.ParseFloat("bidQty", t.BidQty)
	if err != nil {
		return model.Quote{}, err
	}
	askQty, err := provider.ParseFloat("askQty", t.AskQty)
	if err != nil {
		return model.Quote{}, err
	}

	return model.Quote{
		Exchange:  Name,
		Timestamp: model.NewTimestamp(c.Now()),
		Bid:       bid,
		Ask:       ask,
		BidQty:    model.Qty(bidQty),
		AskQty:    model.Qty(askQty),
	}, nil
}
