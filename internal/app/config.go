package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"btc-tracker/internal/model"
	"btc-tracker/internal/provider/transport"
	"btc-tracker/internal/retention"

	"github.com/go-playground/validator/v10"
)

// Config holds application configuration from env
type Config struct {
	DataDir      string        `validate:"required"`
	LogLevel     string        `validate:"oneof=debug info warn warning error"`
	MaxDays      int           `validate:"gte=0"`
	MaxFiles     int           `validate:"gte=1"`
	PairBase     string        `validate:"required,alphanum"`
	PairQuote    string        `validate:"required,alphanum"`
	HTTPTimeout  time.Duration `validate:"min=1s,max=120s"`
	UserAgent    string        `validate:"required"`
	Exchanges    []string      `validate:"dive,required"` // empty = all
	ExportFormat string        `validate:"omitempty,oneof=csv json parquet"`
}

// LoadConfig reads config from environment
func LoadConfig() *Config {
	return &Config{
		DataDir:      getEnv("DATA_DIR", "data"),
		LogLevel:     strings.ToLower(getEnv("LOG_LEVEL", "info")),
		MaxDays:      getEnvInt("MAX_DAYS", retention.DefaultMaxDays),
		MaxFiles:     getEnvInt("MAX_FILES", retention.DefaultMaxFiles),
		PairBase:     strings.ToUpper(getEnv("PAIR_BASE", model.DefaultPair.Base)),
		PairQuote:    strings.ToUpper(getEnv("PAIR_QUOTE", model.DefaultPair.Quote)),
		HTTPTimeout:  time.Duration(getEnvInt("HTTP_TIMEOUT_SEC", int(transport.DefaultTimeout/time.Second))) * time.Second,
		UserAgent:    getEnv("USER_AGENT", transport.DefaultUserAgent),
		Exchanges:    splitList(os.Getenv("EXCHANGES")),
		ExportFormat: strings.ToLower(strings.TrimSpace(os.Getenv("EXPORT_FORMAT"))),
	}
}

// Validate checks ranges and enums.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Pair returns the configured trading pair.
func (c *Config) Pair() model.Pair {
	return model.Pair{Base: c.PairBase, Quote: c.PairQuote}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt falls back to def when the value is unset or not an integer.
func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	return out
}
