package kucoin

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
	Name           = "KuCoin"
	DefaultBaseURL = "https://api.kucoin.com"

	codeOK = "200000"
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
	symbol := c.pair.Join("-")
	u := fmt.Sprintf("%s/api/v1/market/orderbook/level1?symbol=%s", c.BaseURL, url.QueryEscape(symbol))
	var r Level1Response
	if err := transport.GetJSON(ctx, c.http, u, &r); err != nil {
		return model.Quote{}, err
	}
	if r.Code != codeOK {
		return model.Quote{}, fmt.Errorf("kucoin error code %s: %s", r.Code, r.Msg)
	}
	if r.Data == nil {
		return model.Quote{}, fmt.Errorf("kucoin: no level1 data for %s", symbol)
	}

	bid, err := provider.ParseFloat("bestBid", r.Data.BestBid)
	if err != nil {
		return model.Quote{}, err
	}
	ask, err := provider.ParseFloat("bestAsk", r.Data.BestAsk)
	if err != nil {
		return model.Quote{}, err
	}
	bidQty, err := provider.ParseFloat("bestBidSize", r.Data.BestBidSize)
	if err != nil {
		return model.Quote{}, err
	}
	askQty, err := provider.ParseFloat("bestAskSize", r.Data.BestAskSize)
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
