package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"btc-tracker/internal/collect"
	"btc-tracker/internal/model"
	"btc-tracker/internal/provider"
	"btc-tracker/internal/retention"
	"btc-tracker/internal/store"
	"btc-tracker/internal/summary"
)

type stubProvider struct {
	name string
	q    *model.Quote
}

func (s stubProvider) Name() string { return s.name }

func (s stubProvider) FetchQuote(ctx context.Context) (model.Quote, bool) {
	if s.q == nil {
		return model.Quote{}, false
	}
	return *s.q, true
}

var runAt = time.Date(2024, 3, 9, 14, 0, 0, 0, time.Local)

func newTestRunner(t *testing.T, ps ...provider.QuoteProvider) (*Runner, *bytes.Buffer) {
	t.Helper()
	cfg := &Config{
		DataDir:   filepath.Join(t.TempDir(), "data"),
		MaxDays:   7,
		MaxFiles:  30,
		PairBase:  "BTC",
		PairQuote: "USDT",
	}
	layout := store.NewLayout(cfg.DataDir, cfg.Pair())
	sum := summary.New(layout, store.New(layout, nil, nil))
	sum.Now = func() time.Time { return runAt }
	sw := retention.New(layout)
	sw.Now = func() time.Time { return runAt }

	var out bytes.Buffer
	r := NewRunner(cfg, sw, collect.New(ps, &out), store.New(layout, sum, nil), &out)
	r.Now = func() time.Time { return runAt }
	return r, &out
}

func quote(name string, bid, ask float64) *model.Quote {
	return &model.Quote{Exchange: name, Timestamp: model.NewTimestamp(runAt), Bid: bid, Ask: ask}
}

func TestRunPersistsAndReports(t *testing.T) {
	r, out := newTestRunner(t,
		stubProvider{"Binance", quote("Binance", 50000, 50010)},
		stubProvider{"Coinbase", nil},
		stubProvider{"Kraken", quote("Kraken", 50050, 50040)},
	)
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	log, err := r.Store.LoadLog("2024-03-09")
	if err != nil || len(log) != 2 {
		t.Fatalf("log = %+v, %v", log, err)
	}
	if _, err := os.Stat(r.Store.Layout.SummaryPath("2024-03-09")); err != nil {
		t.Errorf("summary missing: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"✗ Coinbase",
		"Best exchange to buy:  Binance (50010 USDT)",
		"Best exchange to sell: Kraken (50050 USDT)",
		"for 40.00 USDT/BTC profit",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("console missing %q:\n%s", want, text)
		}
	}
}

func TestRunNoArbitrageLineWhenSameVenue(t *testing.T) {
	r, out := newTestRunner(t,
		stubProvider{"Binance", quote("Binance", 50100, 50000)},
		stubProvider{"Kraken", quote("Kraken", 49000, 51000)},
	)
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "Arbitrage:") {
		t.Errorf("same-venue spread reported as arbitrage:\n%s", out)
	}
}

func TestRunAllVenuesFail(t *testing.T) {
	r, out := newTestRunner(t, stubProvider{"Binance", nil}, stubProvider{"Kraken", nil})
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No data collected from any exchange") {
		t.Errorf("console = %s", out)
	}
	if _, err := os.Stat(r.Store.Layout.LogPath("2024-03-09")); !os.IsNotExist(err) {
		t.Errorf("log written with no quotes: %v", err)
	}
	if _, err := os.Stat(r.Store.Layout.SummaryPath("2024-03-09")); !os.IsNotExist(err) {
		t.Errorf("summary written with no quotes: %v", err)
	}
}

func TestRunSweepsBeforeCollecting(t *testing.T) {
	r, _ := newTestRunner(t, stubProvider{"Binance", quote("Binance", 1, 2)})
	old := r.Store.Layout.LogPath("2024-02-01")
	if err := os.MkdirAll(filepath.Dir(old), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(old, []byte(`[]`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Errorf("old log not swept: %v", err)
	}
}
