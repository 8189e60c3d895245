package app

import (
	"fmt"
	"io"
	"os"

	"btc-tracker/internal/collect"
	"btc-tracker/internal/provider"
	"btc-tracker/internal/provider/transport"
	"btc-tracker/internal/retention"
	"btc-tracker/internal/saver"
	"btc-tracker/internal/store"
	"btc-tracker/internal/summary"

	"github.com/go-resty/resty/v2"
	"github.com/google/wire"
)

// ProviderSet is everything InitializeRunner needs.
var ProviderSet = wire.NewSet(
	ProvideConfig,
	ProvideLayout,
	ProvideHTTPClient,
	ProvideQuoteProviders,
	ProvideConsole,
	ProvideCollector,
	ProvideExporter,
	ProvideSummarizer,
	ProvideStore,
	ProvideSweeper,
	NewRunner,
)

// ProvideConfig loads and validates config from environment (for Wire).
func ProvideConfig() (*Config, error) {
	cfg := LoadConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func ProvideLayout(cfg *Config) store.Layout {
	return store.NewLayout(cfg.DataDir, cfg.Pair())
}

// ProvideHTTPClient creates the single resty client shared by all venues.
func ProvideHTTPClient(cfg *Config) *resty.Client {
	return transport.New(transport.Options{Timeout: cfg.HTTPTimeout, UserAgent: cfg.UserAgent})
}

func ProvideQuoteProviders(cfg *Config, client *resty.Client) ([]provider.QuoteProvider, error) {
	ps, err := NewProviders(client, cfg.Pair(), cfg.Exchanges)
	if err != nil {
		return nil, err
	}
	if len(ps) == 0 {
		return nil, fmt.Errorf("no exchanges enabled")
	}
	return ps, nil
}

// ProvideConsole is where human-readable run output goes.
func ProvideConsole() io.Writer {
	return os.Stdout
}

func ProvideCollector(ps []provider.QuoteProvider, out io.Writer) *collect.Collector {
	return collect.New(ps, out)
}

// ProvideExporter returns nil when EXPORT_FORMAT is empty (no export).
// Returns error if the format is not supported.
func ProvideExporter(cfg *Config) (saver.QuoteSaver, error) {
	if cfg.ExportFormat == "" {
		return nil, nil
	}
	s := saver.NewQuoteSaver(cfg.ExportFormat)
	if s == nil {
		return nil, fmt.Errorf("unsupported EXPORT_FORMAT %q (use: csv, parquet, json)", cfg.ExportFormat)
	}
	return s, nil
}

// ProvideSummarizer reads logs through a store without a summarizer of its own.
func ProvideSummarizer(layout store.Layout) *summary.Summarizer {
	return summary.New(layout, store.New(layout, nil, nil))
}

func ProvideStore(layout store.Layout, s *summary.Summarizer, exporter saver.QuoteSaver) *store.Store {
	return store.New(layout, s, exporter)
}

func ProvideSweeper(layout store.Layout) *retention.Sweeper {
	return retention.New(layout)
}
