package weather

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/harulab/labbot/pkg/utils/safe"
)

type client struct {
	url        string
	httpClient *http.Client
}

// Option is a functional option for client configuration
type Option func(*client)

// WithHTTPClient replaces the HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// New creates a forecast feed client for the given URL.
func New(url string, opts ...Option) (Service, error) {
	if url == "" {
		return nil, goerr.New("weather feed URL is required")
	}

	c := &client{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *client) Fetch(ctx context.Context) (*Forecast, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build weather feed request", goerr.V("url", c.url))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "weather feed is unreachable", goerr.V("url", c.url))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("weather feed returned non-OK status",
			goerr.V("url", c.url),
			goerr.V("status", resp.StatusCode),
		)
	}

	var forecast Forecast
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return nil, goerr.Wrap(err, "failed to decode weather feed", goerr.V("url", c.url))
	}

	if err := forecast.Validate(); err != nil {
		return nil, goerr.Wrap(err, "weather feed schema mismatch", goerr.V("url", c.url))
	}

	return &forecast, nil
}
