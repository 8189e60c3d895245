package kraken

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"btc-tracker/internal/model"
	"btc-tracker/internal/provider"
	"btc-tracker/internal/provider/transport"

	"github.com/go-resty/resty/v2"
)

const (
	Name           = "Kraken"
	DefaultBaseURL = "https://api.kraken.com"
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

// symbol maps BTC to Kraken's XBT, e.g. XBTUSD.
func (c *Client) symbol() string {
	base := strings.ToUpper(c.pair.Base)
	if base == "BTC" {
		base = "XBT"
	}
	return base + strings.ToUpper(c.pair.Quote)
}

func (c *Client) fetch(ctx context.Context) (model.Quote, error) {
	u := fmt.Sprintf("%s/0/public/Ticker?pair=%s", c.BaseURL, url.QueryEscape(c.symbol()))
	var r TickerResponse
	if err := transport.GetJSON(ctx, c.http, u, &r); err != nil {
		return model.Quote{}, err
	}
	if len(r.Error) > 0 {
		return model.Quote{}, fmt.Errorf("kraken error: %s", strings.Join(r.Error, "; "))
	}
	if len(r.Result) == 0 {
		return model.Quote{}, fmt.Errorf("kraken: empty result for %s", c.symbol())
	}

	// one pair requested, one key returned; sort for a stable pick anyway
	keys := make([]string, 0, len(r.Result))
	for k := range r.Result {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entry := r.Result[keys[0]]

	if len(entry.Bid) < 3 || len(entry.Ask) < 3 {
		return model.Quote{}, fmt.Errorf("kraken: short ticker levels a=%v b=%v", entry.Ask, entry.Bid)
	}
	bid, err := provider.ParseFloat("b[0]", entry.Bid[0])
	if err != nil {
		return model.Quote{}, err
	}
	ask, err := provider.ParseFloat("a[0]", entry.Ask[0])
	if err != nil {
		return model.Quote{}, err
	}
	bidQty, err := provider.ParseFloat("b[2]", entry.Bid[2])
	if err != nil {
		return model.Quote{}, err
	}
	askQty, err := provider.ParseFloat("a[2]", entry.Ask[2])
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
