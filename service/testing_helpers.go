package service

import (
	"testing"

	"github.com/eclipse-robotics/vexu-site/internal/content"
	"github.com/eclipse-robotics/vexu-site/internal/feed"
	"github.com/eclipse-robotics/vexu-site/internal/handlers"
	"github.com/labstack/echo/v4"
)

// setupTestService creates a service backed by fetcher instead of the live feed
func setupTestService(t *testing.T, fetcher feed.Fetcher) *Service {
	t.Helper()

	site := content.MustLoad()
	config := &Config{
		Environment: "test",
		Port:        "8080",
		BaseURL:     "https://example.org",
		PublicDir:   t.TempDir(),
	}
	config.Feed.URL = "http://feed.invalid"
	config.Feed.RateLimit = 100
	config.Feed.RateBurst = 100

	return &Service{
		config:       config,
		site:         site,
		pageHandler:  handlers.NewPageHandler(site, config.BaseURL),
		feedHandler:  handlers.NewFeedHandler(feed.NewLoader(fetcher), handlers.PassThroughImages),
		assetHandler: handlers.NewAssetHandler(site, config.PublicDir),
	}
}

// setupTestEcho creates an Echo instance with routes registered
func setupTestEcho(t *testing.T, fetcher feed.Fetcher) (*echo.Echo, *Service) {
	t.Helper()

	e := echo.New()
	svc := setupTestService(t, fetcher)
	svc.RegisterRoutes(e)

	return e, svc
}
