package app

import (
	"fmt"
	"strings"

	"btc-tracker/internal/model"
	"btc-tracker/internal/provider"
	"btc-tracker/internal/provider/binance"
	"btc-tracker/internal/provider/coinbase"
	"btc-tracker/internal/provider/huobi"
	"btc-tracker/internal/provider/kraken"
	"btc-tracker/internal/provider/kucoin"
	"btc-tracker/internal/provider/okx"

	"github.com/go-resty/resty/v2"
)

// venue is one registry entry; order of venues is the query order.
type venue struct {
	name string
	new  func(*resty.Client, model.Pair) provider.QuoteProvider
}

var venues = []venue{
	{binance.Name, func(c *resty.Client, p model.Pair) provider.QuoteProvider { return binance.New(c, p) }},
	{coinbase.Name, func(c *resty.Client, p model.Pair) provider.QuoteProvider { return coinbase.New(c, p) }},
	{kraken.Name, func(c *resty.Client, p model.Pair) provider.QuoteProvider { return kraken.New(c, p) }},
	{huobi.Name, func(c *resty.Client, p model.Pair) provider.QuoteProvider { return huobi.New(c, p) }},
	{okx.Name, func(c *resty.Client, p model.Pair) provider.QuoteProvider { return okx.New(c, p) }},
	{kucoin.Name, func(c *resty.Client, p model.Pair) provider.QuoteProvider { return kucoin.New(c, p) }},
}

// VenueNames lists every known venue in query order.
func VenueNames() []string {
	names := make([]string, len(venues))
	for i, v := range venues {
		names[i] = v.name
	}
	return names
}

// NewProviders builds the enabled venues in registry order. enabled is a
// case-insensitive filter; empty means all. Unknown names are an error.
func NewProviders(client *resty.Client, pair model.Pair, enabled []string) ([]provider.QuoteProvider, error) {
	want := make(map[string]bool, len(enabled))
	for _, e := range enabled {
		want[strings.ToLower(e)] = true
	}
	for name := range want {
		if !known(name) {
			return nil, fmt.Errorf("unknown exchange %q (options: %s)", name, strings.Join(VenueNames(), ", "))
		}
	}

	var out []provider.QuoteProvider
	for _, v := range venues {
		if len(want) > 0 && !want[strings.ToLower(v.name)] {
			continue
		}
		out = append(out, v.new(client, pair))
	}
	return out, nil
}

func known(name string) bool {
	for _, v := range venues {
		if strings.ToLower(v.name) == name {
			return true
		}
	}
	return false
}
