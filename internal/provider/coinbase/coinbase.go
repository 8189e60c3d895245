package coinbase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"btc-tracker/internal/model"
	"btc-tracker/internal/provider"
	"btc-tracker/internal/provider/transport"

	"github.com/go-resty/resty/v2"
)

const (
	Name           = "Coinbase"
	DefaultBaseURL = "https://api.coinbase.com"

	// SpotSpread is applied on both sides of the spot price when the buy/sell
	// endpoints are unavailable. The result is an approximation, not a book read.
	SpotSpread = 0.005
)

// Client reads Coinbase retail buy/sell prices. The API exposes no depth,
// so quantities are always nil.
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
		pair:    pair.Fiat(),
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
	// sell price is what the venue pays us (bid), buy price is what we pay (ask)
	bid, err := c.price(ctx, "sell")
	if err != nil {
		return c.fallbackOnStatus(ctx, err)
	}
	ask, err := c.price(ctx, "buy")
	if err != nil {
		return c.fallbackOnStatus(ctx, err)
	}
	return model.Quote{
		Exchange:  Name,
		Timestamp: model.NewTimestamp(c.Now()),
		Bid:       bid,
		Ask:       ask,
	}, nil
}

// fallbackOnStatus switches to the spot endpoint only when the primary call
// got a non-success HTTP status; other failures are returned unchanged.
func (c *Client) fallbackOnStatus(ctx context.Context, primary error) (model.Quote, error) {
	var se *transport.StatusError
	if !errors.As(primary, &se) {
		return model.Quote{}, primary
	}
	spot, err := c.price(ctx, "spot")
	if err != nil {
		return model.Quote{}, fmt.Errorf("primary: %v; spot fallback: %w", primary, err)
	}
	slog.Info("coinbase spot fallback", "exchange", Name, "status", se.Status, "spot", spot, "approximation", true)
	return model.Quote{
		Exchange:  Name,
		Timestamp: model.NewTimestamp(c.Now()),
		Bid:       spot * (1 - SpotSpread),
		Ask:       spot * (1 + SpotSpread),
	}, nil
}

func (c *Client) price(ctx context.Context, side string) (float64, error) {
	u := fmt.Sprintf("%s/v2/prices/%s/%s", c.BaseURL, c.pair.Join("-"), side)
	var r PriceResponse
	if err := transport.GetJSON(ctx, c.http, u, &r); err != nil {
		return 0, err
	}
	if len(r.Errors) > 0 {
		return 0, fmt.Errorf("coinbase %s error %s: %s", side, r.Errors[0].ID, r.Errors[0].Message)
	}
	if r.Data == nil {
		return 0, fmt.Errorf("coinbase %s: missing data", side)
	}
	return provider.ParseFloat(side+".amount", r.Data.Amount)
}
