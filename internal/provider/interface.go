package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"btc-tracker/internal/model"
)

// QuoteProvider is one venue adapter. FetchQuote never returns an error:
// any failure is logged by the adapter and reported as ok == false.
type QuoteProvider interface {
	Name() string
	FetchQuote(ctx context.Context) (q model.Quote, ok bool)
}

// Absent logs why a venue produced no quote. Adapters call it from FetchQuote.
func Absent(name string, err error) (model.Quote, bool) {
	slog.Warn("exchange fetch failed", "exchange", name, "error", err)
	return model.Quote{}, false
}

// ErrInvalidNumber marks a field that parsed but is NaN, infinite or negative.
var ErrInvalidNumber = errors.New("not a finite non-negative number")

// ParseFloat parses a venue price or size field, naming the field on failure.
// NaN, infinities and negative values are rejected like unparseable text.
func ParseFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("field %s: %w", field, err)
	}
	return CheckNumber(field, v)
}

// CheckNumber applies ParseFloat's range rule to a value the venue sent as a
// JSON number.
func CheckNumber(field string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("field %s = %v: %w", field, v, ErrInvalidNumber)
	}
	return v, nil
}
