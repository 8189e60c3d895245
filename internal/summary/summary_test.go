package summary

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"btc-tracker/internal/model"
	"btc-tracker/internal/store"
)

var now = time.Date(2024, 3, 9, 18, 0, 0, 0, time.UTC)

func q(exchange string, bid, ask float64, minute int) model.Quote {
	return model.Quote{
		Exchange:  exchange,
		Timestamp: model.NewTimestamp(time.Date(2024, 3, 9, 12, minute, 0, 0, time.UTC)),
		Bid:       bid,
		Ask:       ask,
	}
}

func newTestSummarizer(t *testing.T) (*Summarizer, *store.Store) {
	t.Helper()
	layout := store.NewLayout(t.TempDir(), model.DefaultPair)
	st := store.New(layout, nil, nil)
	s := New(layout, st)
	s.Now = func() time.Time { return now }
	return s, st
}

func TestBuildTwoVenues(t *testing.T) {
	sum, err := Build("2024-03-09", []model.Quote{
		q("Binance", 50000, 50010, 0),
		q("Kraken", 50050, 50040, 0),
	}, now)
	if err != nil {
		t.Fatal(err)
	}
	if sum.BestExchangeToBuy != "Binance" || sum.BestExchangeToSell != "Kraken" {
		t.Errorf("buy/sell = %s/%s", sum.BestExchangeToBuy, sum.BestExchangeToSell)
	}
	if sum.ArbitrageOpportunity != 40 {
		t.Errorf("arbitrage = %v", sum.ArbitrageOpportunity)
	}
}

func TestBuildWholeDayNegativeSpread(t *testing.T) {
	quotes := []model.Quote{
		q("A", 100, 103, 0),
		q("B", 101, 105, 1),
		q("A", 99, 102, 2),
	}
	sum, err := Build("2024-03-09", quotes, now)
	if err != nil {
		t.Fatal(err)
	}
	// max bid 101 (B) - min ask 102 (A)
	if sum.ArbitrageOpportunity != -1 {
		t.Errorf("arbitrage = %v, want -1", sum.ArbitrageOpportunity)
	}
	if sum.BestExchangeToBuy != "A" || sum.BestExchangeToSell != "B" {
		t.Errorf("buy/sell = %s/%s", sum.BestExchangeToBuy, sum.BestExchangeToSell)
	}
}

func TestLatestPerExchangeByPosition(t *testing.T) {
	quotes := []model.Quote{
		q("Kraken", 1, 2, 30),
		q("Binance", 3, 4, 10),
		q("Kraken", 5, 6, 5), // earlier timestamp, later position: wins
	}
	got := LatestPerExchange(quotes)
	if len(got) != 2 {
		t.Fatalf("len = %d", len(got))
	}
	if got[0].Exchange != "Binance" || got[1].Exchange != "Kraken" {
		t.Errorf("order = %s, %s", got[0].Exchange, got[1].Exchange)
	}
	if got[1].Bid != 5 {
		t.Errorf("Kraken entry = %+v, want last by position", got[1])
	}
}

func TestRebuildWritesSummary(t *testing.T) {
	s, st := newTestSummarizer(t)
	a := q("Binance", 50000, 50010, 0)
	if err := st.Append([]model.Quote{a}, time.Date(2024, 3, 9, 12, 0, 0, 0, time.Local)); err != nil {
		t.Fatal(err)
	}

	sum, err := s.Rebuild("2024-03-09")
	if err != nil {
		t.Fatal(err)
	}
	if sum.BestExchangeToBuy != a.Exchange {
		t.Errorf("buy = %s", sum.BestExchangeToBuy)
	}

	data, err := os.ReadFile(s.Layout.SummaryPath("2024-03-09"))
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"date", "latest_update", "best_exchange_to_buy", "best_exchange_to_sell", "arbitrage_opportunity", "exchange_data"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("summary missing key %q", key)
		}
	}
	if raw["latest_update"] != "2024-03-09 18:00:00" {
		t.Errorf("latest_update = %v", raw["latest_update"])
	}
}

func TestRebuildOverwrites(t *testing.T) {
	s, st := newTestSummarizer(t)
	day := time.Date(2024, 3, 9, 12, 0, 0, 0, time.Local)
	st.Append([]model.Quote{q("A", 1, 2, 0)}, day)
	if _, err := s.Rebuild("2024-03-09"); err != nil {
		t.Fatal(err)
	}
	st.Append([]model.Quote{q("B", 10, 1, 1)}, day)
	sum, err := s.Rebuild("2024-03-09")
	if err != nil {
		t.Fatal(err)
	}
	if sum.BestExchangeToBuy != "B" || len(sum.ExchangeData) != 2 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestRebuildWritesNothingOnBadLog(t *testing.T) {
	s, _ := newTestSummarizer(t)
	summaryPath := s.Layout.SummaryPath("2024-03-09")

	if _, err := s.Rebuild("2024-03-09"); !errors.Is(err, store.ErrLogMissing) {
		t.Errorf("missing: err = %v", err)
	}

	logPath := s.Layout.LogPath("2024-03-09")
	os.WriteFile(logPath, []byte(`not json`), 0644)
	if _, err := s.Rebuild("2024-03-09"); !errors.Is(err, store.ErrLogCorrupt) {
		t.Errorf("corrupt: err = %v", err)
	}

	os.WriteFile(logPath, []byte(`[]`), 0644)
	if _, err := s.Rebuild("2024-03-09"); !errors.Is(err, ErrEmptyLog) {
		t.Errorf("empty: err = %v", err)
	}

	if _, err := os.Stat(summaryPath); !os.IsNotExist(err) {
		t.Errorf("summary written for bad log: %v", err)
	}
	if entries, _ := filepath.Glob(filepath.Join(s.Layout.Dir, "*.tmp")); len(entries) != 0 {
		t.Errorf("temp files left: %v", entries)
	}
}
