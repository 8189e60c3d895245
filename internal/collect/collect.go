package collect

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"btc-tracker/internal/model"
	"btc-tracker/internal/provider"
)

// Round is the outcome of one pass over all venues.
type Round struct {
	Quotes    []model.Quote
	Succeeded []string
	Failed    []string
}

// Collector queries venues one after another, in registration order.
type Collector struct {
	Providers []provider.QuoteProvider
	Out       io.Writer // per-venue status lines
}

func New(providers []provider.QuoteProvider, out io.Writer) *Collector {
	if out == nil {
		out = io.Discard
	}
	return &Collector{Providers: providers, Out: out}
}

// Collect calls every provider once and keeps every quote it gets. No quotes
// at all is a valid result. A cancelled ctx stops before the next venue.
func (c *Collector) Collect(ctx context.Context) Round {
	var r Round
	for _, p := range c.Providers {
		if err := ctx.Err(); err != nil {
			slog.Warn("collect cancelled", "remaining_from", p.Name(), "error", err)
			break
		}
		q, ok := p.FetchQuote(ctx)
		if !ok {
			r.Failed = append(r.Failed, p.Name())
			fmt.Fprintf(c.Out, "✗ %s: no data\n", p.Name())
			continue
		}
		r.Quotes = append(r.Quotes, q)
		r.Succeeded = append(r.Succeeded, p.Name())
		fmt.Fprintf(c.Out, "✓ %s: bid %.2f ask %.2f\n", p.Name(), q.Bid, q.Ask)
	}
	slog.Info("collect done", "success", len(r.Succeeded), "failed", len(r.Failed))
	return r
}
