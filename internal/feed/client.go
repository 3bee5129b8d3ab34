package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// DefaultURL is the Behold aggregation feed for @eclipse_robotics.
const DefaultURL = "https://feeds.behold.so/t2cK9m9tg80BDruckAjN"

var ErrUnexpectedStatus = errors.New("unexpected status")

// Fetcher retrieves the normalized post list.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Post, error)
}

// Client issues a single unauthenticated GET to the aggregation endpoint.
// There is no retry; the caller controls timeouts through ctx and httpClient.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a feed client for url. A nil httpClient uses a client
// over http.DefaultTransport.
func NewClient(url string, httpClient *http.Client) *Client {
	if url == "" {
		url = DefaultURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		url:        url,
		httpClient: httpClient,
	}
}

// URL returns the configured feed endpoint.
func (c *Client) URL() string {
	return c.url
}

// Fetch performs the request and decodes the body.
func (c *Client) Fetch(ctx context.Context) ([]Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	posts, err := Decode(body)
	if err != nil {
		return nil, err
	}

	slog.Debug("fetched feed", "url", c.url, "posts", len(posts), "bytes", len(body))
	return posts, nil
}
