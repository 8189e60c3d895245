package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"btc-tracker/internal/arbitrage"
	"btc-tracker/internal/collect"
	"btc-tracker/internal/model"
	"btc-tracker/internal/retention"
	"btc-tracker/internal/store"
)

// Runner is one batch pass: sweep, collect, persist, report.
type Runner struct {
	Config    *Config
	Sweeper   *retention.Sweeper
	Collector *collect.Collector
	Store     *store.Store
	Console   io.Writer
	Now       func() time.Time
}

func NewRunner(cfg *Config, sw *retention.Sweeper, c *collect.Collector, st *store.Store, console io.Writer) *Runner {
	return &Runner{
		Config:    cfg,
		Sweeper:   sw,
		Collector: c,
		Store:     st,
		Console:   console,
		Now:       time.Now,
	}
}

// Run performs a single pass. Venue failures never fail the run; only a
// storage write error is returned.
func (r *Runner) Run(ctx context.Context) error {
	start := r.Now()
	fmt.Fprintf(r.Console, "Collection started: %s\n", start.Format(model.TimeLayout))

	res := r.Sweeper.Sweep(r.Config.MaxDays, r.Config.MaxFiles)
	if len(res.Deleted) > 0 || len(res.Failed) > 0 {
		slog.Info("retention sweep", "deleted", len(res.Deleted), "failed", len(res.Failed))
	}

	round := r.Collector.Collect(ctx)
	if err := collect.WriteRunReport(r.Config.DataDir, round); err != nil {
		slog.Warn("could not write run report", "error", err)
	}

	if len(round.Quotes) == 0 {
		fmt.Fprintln(r.Console, "No data collected from any exchange")
		return nil
	}

	var storeErr error
	if err := r.Store.Append(round.Quotes, start); err != nil {
		slog.Error("failed to save quotes", "error", err)
		storeErr = err
	} else {
		fmt.Fprintf(r.Console, "Saved %d quotes to %s\n", len(round.Quotes), r.Store.Layout.LogPath(start.Format(model.DateLayout)))
	}

	r.report(round.Quotes)
	return storeErr
}

// report prints the best venues of this run only; the daily summary covers
// the whole day.
func (r *Runner) report(quotes []model.Quote) {
	best, err := arbitrage.FindBest(quotes)
	if errors.Is(err, arbitrage.ErrNoQuotes) {
		return
	}
	quote := r.Config.PairQuote
	fmt.Fprintf(r.Console, "Best exchange to buy:  %s (%v %s)\n", best.BuyExchange, best.Ask, quote)
	fmt.Fprintf(r.Console, "Best exchange to sell: %s (%v %s)\n", best.SellExchange, best.Bid, quote)
	if best.Profitable() {
		fmt.Fprintf(r.Console, "Arbitrage: buy on %s, sell on %s for %.2f %s/%s profit (net %s%% after fees)\n",
			best.BuyExchange, best.SellExchange, best.Spread(), quote, r.Config.PairBase,
			arbitrage.NetProfitPercentage(best.Ask, best.Bid).String())
	}
}
