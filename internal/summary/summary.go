package summary

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"btc-tracker/internal/arbitrage"
	"btc-tracker/internal/model"
	"btc-tracker/internal/store"
)

// ErrEmptyLog means the day's log holds no quotes; no summary is written.
var ErrEmptyLog = errors.New("daily log is empty")

// LogLoader reads one day's log.
type LogLoader interface {
	LoadLog(date string) ([]model.Quote, error)
}

// Summarizer derives the daily summary from the whole day's log.
type Summarizer struct {
	Layout store.Layout
	Loader LogLoader
	Now    func() time.Time
}

func New(layout store.Layout, loader LogLoader) *Summarizer {
	return &Summarizer{Layout: layout, Loader: loader, Now: time.Now}
}

// Rebuild recomputes and overwrites summary_<date>.json. When the log is
// missing, corrupt or empty nothing is written and the error says why.
func (s *Summarizer) Rebuild(date string) (*model.DailySummary, error) {
	quotes, err := s.Loader.LoadLog(date)
	if err != nil {
		return nil, fmt.Errorf("summary %s: %w", date, err)
	}
	sum, err := Build(date, quotes, s.Now())
	if err != nil {
		return nil, fmt.Errorf("summary %s: %w", date, err)
	}

	path := s.Layout.SummaryPath(date)
	if err := store.WriteJSONAtomic(path, sum); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	slog.Info("summary saved", "path", path,
		"buy", sum.BestExchangeToBuy, "sell", sum.BestExchangeToSell,
		"arbitrage", sum.ArbitrageOpportunity)
	return sum, nil
}

// Build computes the summary for quotes in file order.
func Build(date string, quotes []model.Quote, now time.Time) (*model.DailySummary, error) {
	best, err := arbitrage.FindBest(quotes)
	if errors.Is(err, arbitrage.ErrNoQuotes) {
		return nil, ErrEmptyLog
	}
	if err != nil {
		return nil, err
	}
	return &model.DailySummary{
		Date:                 date,
		LatestUpdate:         model.NewTimestamp(now),
		BestExchangeToBuy:    best.BuyExchange,
		BestExchangeToSell:   best.SellExchange,
		ArbitrageOpportunity: best.Spread(),
		ExchangeData:         LatestPerExchange(quotes),
	}, nil
}

// LatestPerExchange keeps the last quote of each venue by position (not by
// timestamp) and orders the result by venue name.
func LatestPerExchange(quotes []model.Quote) []model.Quote {
	last := make(map[string]model.Quote)
	for _, q := range quotes {
		last[q.Exchange] = q
	}
	names := make([]string, 0, len(last))
	for name := range last {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]model.Quote, 0, len(names))
	for _, name := range names {
		out = append(out, last[name])
	}
	return out
}
