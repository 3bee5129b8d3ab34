package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/eclipse-robotics/vexu-site/internal/feed"
	feedview "github.com/eclipse-robotics/vexu-site/views/feed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func posts(n int) []feed.Post {
	out := make([]feed.Post, n)
	for i := range out {
		id := string(rune('a' + i))
		out[i] = feed.Post{ID: id, MediaURL: "https://cdn.example.com/" + id + ".jpg"}
	}
	return out
}

func TestHandleFeed(t *testing.T) {
	tests := []struct {
		name      string
		fetcher   StaticFetcher
		wantState feed.LoadState
		wantTiles int
	}{
		{"six posts", StaticFetcher{Posts: posts(6)}, feed.StateLoaded, 4},
		{"two posts", StaticFetcher{Posts: posts(2)}, feed.StateLoaded, 2},
		{"empty", StaticFetcher{}, feed.StateEmpty, 0},
		{"failure", StaticFetcher{Err: errors.New("connection refused")}, feed.StateFailed, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewFeedHandler(feed.NewLoader(tt.fetcher), PassThroughImages)
			c, rec := NewHTMXContext(http.MethodGet, "/feed")

			require.NoError(t, h.HandleFeed(c))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Feed-Load-ID"))
			body := rec.Body.String()
			assert.Contains(t, body, `data-feed-state="`+string(tt.wantState)+`"`)
			assert.Equal(t, tt.wantTiles, strings.Count(body, "feed-tile"))
			if tt.wantState.Unavailable() {
				assert.Contains(t, body, feedview.UnavailableText)
			}
			assert.NotContains(t, body, "hx-trigger")
		})
	}
}

func TestHandleLimited(t *testing.T) {
	h := NewFeedHandler(feed.NewLoader(StaticFetcher{Posts: posts(4)}), PassThroughImages)
	c, rec := NewHTMXContext(http.MethodGet, "/feed")

	require.NoError(t, h.HandleLimited(c, "192.0.2.1", errors.New("rate limit exceeded")))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `data-feed-state="failed"`)
	assert.Contains(t, body, feedview.UnavailableText)
	assert.Zero(t, strings.Count(body, "feed-tile"))
}
