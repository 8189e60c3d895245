package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "btc-tracker/1.0"

	// maxErrBody caps how much of a failed response ends up in the error message.
	maxErrBody = 256
)

// Options configures the shared venue client.
type Options struct {
	Timeout   time.Duration
	UserAgent string
}

// New creates the resty client shared by all venue adapters.
// Every request is bounded by Timeout; there are no retries.
func New(opts Options) *resty.Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	return resty.New().
		SetTimeout(opts.Timeout).
		SetHeader("User-Agent", opts.UserAgent).
		SetHeader("Accept", "application/json")
}

// StatusError is returned for a non-2xx HTTP response.
type StatusError struct {
	URL    string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: status %d: %s", e.URL, e.Status, e.Body)
}

// GetJSON performs one GET and decodes the body into out.
func GetJSON(ctx context.Context, client *resty.Client, url string, out any) error {
	resp, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	if !resp.IsSuccess() {
		body := resp.String()
		if len(body) > maxErrBody {
			body = body[:maxErrBody]
		}
		return &StatusError{URL: url, Status: resp.StatusCode(), Body: body}
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("parse JSON from %s: %w", url, err)
	}
	return nil
}
