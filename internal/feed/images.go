package feed

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

const (
	// MaxConcurrentProbes limits simultaneous image checks.
	MaxConcurrentProbes = 4

	defaultProbeTimeout = 5 * time.Second
)

// ImageChecker swaps unreachable tile images for FallbackImageURL before the
// tiles are rendered.
type ImageChecker struct {
	client  *http.Client
	timeout time.Duration
}

func NewImageChecker(client *http.Client) *ImageChecker {
	if client == nil {
		client = &http.Client{}
	}
	return &ImageChecker{
		client:  client,
		timeout: defaultProbeTimeout,
	}
}

// Resolve probes every tile image concurrently and returns the tiles with
// failed images replaced. The input slice is not modified.
func (ic *ImageChecker) Resolve(ctx context.Context, tiles []Tile) []Tile {
	out := make([]Tile, len(tiles))
	copy(out, tiles)

	sem := semaphore.NewWeighted(MaxConcurrentProbes)
	var wg sync.WaitGroup

	for i := range out {
		if out[i].ImageURL == FallbackImageURL {
			continue
		}

		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			if err := sem.Acquire(ctx, 1); err != nil {
				return
			}
			defer sem.Release(1)

			if !ic.reachable(ctx, out[i].ImageURL) {
				slog.Warn("tile image unavailable, using fallback", "post_id", out[i].ID, "url", out[i].ImageURL)
				out[i].ImageURL = FallbackImageURL
			}
		}(i)
	}

	wg.Wait()
	return out
}

func (ic *ImageChecker) reachable(ctx context.Context, url string) bool {
	ctx, cancel := context.WithTimeout(ctx, ic.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}

	resp, err := ic.client.Do(req)
	if err != nil {
		slog.Debug("image probe failed", "url", url, "error", err)
		return false
	}
	resp.Body.Close()

	// some CDNs refuse HEAD; the browser-side onerror handles those
	if resp.StatusCode == http.StatusMethodNotAllowed {
		return true
	}
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
