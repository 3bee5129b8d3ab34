package service

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eclipse-robotics/vexu-site/internal/feed"
	"github.com/eclipse-robotics/vexu-site/internal/handlers"
	feedview "github.com/eclipse-robotics/vexu-site/views/feed"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePosts(n int) []feed.Post {
	out := make([]feed.Post, n)
	for i := range out {
		id := string(rune('a' + i))
		out[i] = feed.Post{ID: id, MediaURL: "https://cdn.example.com/" + id + ".jpg", MediaType: feed.MediaTypeImage}
	}
	return out
}

// TestPublicRoutes checks that every public route exists and is accessible
func TestPublicRoutes(t *testing.T) {
	e, _ := setupTestEcho(t, handlers.StaticFetcher{Posts: samplePosts(2)})

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"Home page", "/", http.StatusOK},
		{"Home panel", "/panel/home", http.StatusOK},
		{"Team panel", "/panel/team", http.StatusOK},
		{"Sponsorship panel", "/panel/sponsorship", http.StatusOK},
		{"Contact panel", "/panel/contact", http.StatusOK},
		{"Unknown panel", "/panel/shop", http.StatusNotFound},
		{"Feed", "/feed", http.StatusOK},
		{"Packet", "/Eclipse_Robotics_Sponsorship_Packet.pdf", http.StatusOK},
		{"OG image", "/og-image.png", http.StatusOK},
		{"Instagram QR", "/qr/instagram.png", http.StatusOK},
		{"Health check", "/health", http.StatusOK},
		{"Missing page", "/shop", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code,
				"Route GET %s should return %d, got %d", tt.path, tt.wantStatus, rec.Code)
		})
	}
}

// TestPanelSwitchLeavesFeedAlone checks that a panel fragment never carries
// the feed, so switching panels cannot trigger another load.
func TestPanelSwitchLeavesFeedAlone(t *testing.T) {
	e, _ := setupTestEcho(t, handlers.StaticFetcher{Posts: samplePosts(4)})

	for _, name := range []string{"team", "sponsorship", "contact", "home"} {
		req := httptest.NewRequest(http.MethodGet, "/panel/"+name, nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), `hx-get="/feed"`, name)
		assert.NotContains(t, rec.Body.String(), "<html", name)
	}
}

func TestHomeLoadsFeedOnce(t *testing.T) {
	e, _ := setupTestEcho(t, handlers.StaticFetcher{Posts: samplePosts(4)})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, 1, strings.Count(rec.Body.String(), `hx-get="/feed"`))
}

func TestFeedRoute(t *testing.T) {
	tests := []struct {
		name      string
		fetcher   handlers.StaticFetcher
		wantTiles int
		wantState feed.LoadState
	}{
		{"truncates to four", handlers.StaticFetcher{Posts: samplePosts(9)}, 4, feed.StateLoaded},
		{"keeps fewer", handlers.StaticFetcher{Posts: samplePosts(3)}, 3, feed.StateLoaded},
		{"empty", handlers.StaticFetcher{}, 0, feed.StateEmpty},
		{"failure", handlers.StaticFetcher{Err: errors.New("dial tcp: refused")}, 0, feed.StateFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := setupTestEcho(t, tt.fetcher)

			req := httptest.NewRequest(http.MethodGet, "/feed", nil)
			req.Header.Set("HX-Request", "true")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Equal(t, tt.wantTiles, strings.Count(body, "feed-tile"))
			assert.Contains(t, body, `data-feed-state="`+string(tt.wantState)+`"`)
		})
	}
}

func TestFeedRateLimitedSettlesAsFailed(t *testing.T) {
	svc := setupTestService(t, handlers.StaticFetcher{Posts: samplePosts(1)})
	svc.config.Feed.RateLimit = 2
	svc.config.Feed.RateBurst = 5
	e := echo.New()
	svc.RegisterRoutes(e)

	var last *httptest.ResponseRecorder
	for i := 0; i < 6; i++ {
		req := httptest.NewRequest(http.MethodGet, "/feed", nil)
		req.Header.Set("HX-Request", "true")
		last = httptest.NewRecorder()
		e.ServeHTTP(last, req)

		require.Equal(t, http.StatusOK, last.Code, "load %d", i+1)
		if i < 5 {
			assert.Contains(t, last.Body.String(), `data-feed-state="loaded"`, "load %d", i+1)
		}
	}

	body := last.Body.String()
	assert.Contains(t, body, `id="feed-grid"`)
	assert.Contains(t, body, `data-feed-state="failed"`)
	assert.Contains(t, body, feedview.UnavailableText)
	assert.NotContains(t, body, "feed-tile")
	assert.NotContains(t, body, `data-feed-state="loading"`)
}

func TestHealth(t *testing.T) {
	e, _ := setupTestEcho(t, handlers.StaticFetcher{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","environment":"test","feed":"http://feed.invalid"}`, rec.Body.String())
}
