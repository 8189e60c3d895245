package okx

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"btc-tracker/internal/model"
	"btc-tracker/internal/provider"
	"btc-tracker/internal/provider/transport"

	"github.com/go-resty/resty/v2"
)

const (
	Name           = "OKX"
	DefaultBaseURL = "https://www.okx.com"
)

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
	instID := c.pair.Join("-")
	u := fmt.Sprintf("%s/api/v5/market/ticker?instId=%s", c.BaseURL, url.QueryEscape(instID))
	var r TickerResponse
	if err := transport.GetJSON(ctx, c.http, u, &r); err != nil {
		return model.Quote{}, err
	}
	if r.Code != "0" {
		return model.Quote{}, fmt.Errorf("okx error code %s: %s", r.Code, r.Msg)
	}
	if len(r.Data) == 0 {
		return model.Quote{}, fmt.Errorf("okx: no ticker for %s", instID)
	}
	t := r.Data[0]

	bid, err := provider.ParseFloat("bidPx", t.BidPx)
	if err != nil {
		return model.Quote{}, err
	}
	ask, err := provider.ParseFloat("askPx", t.AskPx)
	if err != nil {
		return model.Quote{}, err
	}

	return model.Quote{
		Exchange:  Name,
		Timestamp: model.NewTimestamp(c.Now()),
		Bid:       bid,
		Ask:       ask,
		BidQty:    model.Qty(sizeOrZero("bidSz", t.BidSz)),
		AskQty:    model.Qty(sizeOrZero("askSz", t.AskSz)),
	}, nil
}

// sizeOrZero substitutes 0 for an empty or unparseable size instead of
// failing the whole read. Lossy: a zero here means "unknown", not "no liquidity".
func sizeOrZero(field, s string) float64 {
	v, err := provider.ParseFloat(field, s)
	if err != nil {
		slog.Debug("okx size missing, using 0", "field", field, "value", s)
		return 0
	}
	return v
}
