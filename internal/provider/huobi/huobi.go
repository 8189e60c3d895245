package huobi

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"btc-tracker/internal/model"
	"btc-tracker/internal/provider"
	"btc-tracker/internal/provider/transport"

	"github.com/go-resty/resty/v2"
)

const (
	Name           = "Huobi"
	DefaultBaseURL = "https://api.huobi.pro"
)

// Client reads the top level of the Huobi (HTX) step0 order book.
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
	symbol := strings.ToLower(c.pair.Join(""))
	u := fmt.Sprintf("%s/market/depth?symbol=%s&type=step0", c.BaseURL, url.QueryEscape(symbol))
	var r DepthResponse
	if err := transport.GetJSON(ctx, c.http, u, &r); err != nil {
		return model.Quote{}, err
	}
	if r.Status != "ok" {
		return model.Quote{}, fmt.Errorf("huobi status %q: %s %s", r.Status, r.ErrCode, r.ErrMsg)
	}
	if r.Tick == nil || len(r.Tick.Bids) == 0 || len(r.Tick.Asks) == 0 {
		return model.Quote{}, fmt.Errorf("huobi: empty order book for %s", symbol)
	}
	bestBid, bestAsk := r.Tick.Bids[0], r.Tick.Asks[0]
	if len(bestBid) < 2 || len(bestAsk) < 2 {
		return model.Quote{}, fmt.Errorf("huobi: malformed level bid=%v ask=%v", bestBid, bestAsk)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{{"bid", bestBid[0]}, {"bidQty", bestBid[1]}, {"ask", bestAsk[0]}, {"askQty", bestAsk[1]}} {
		if _, err := provider.CheckNumber(f.name, f.v); err != nil {
			return model.Quote{}, err
		}
	}

	return model.Quote{
		Exchange:  Name,
		Timestamp: model.NewTimestamp(c.Now()),
		Bid:       bestBid[0],
		Ask:       bestAsk[0],
		BidQty:    model.Qty(bestBid[1]),
		AskQty:    model.Qty(bestAsk[1]),
	}, nil
}
