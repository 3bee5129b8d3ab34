package service

import (
	"net/http"

	"github.com/eclipse-robotics/vexu-site/internal/content"
	"github.com/eclipse-robotics/vexu-site/internal/feed"
	"github.com/eclipse-robotics/vexu-site/internal/handlers"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

type Service struct {
	config       *Config
	site         *content.Site
	pageHandler  *handlers.PageHandler
	feedHandler  *handlers.FeedHandler
	assetHandler *handlers.AssetHandler
}

func New(config *Config, site *content.Site) *Service {
	client := feed.NewClient(config.Feed.URL, nil)

	var images handlers.TileResolver
	if config.Feed.ProbeImages {
		images = feed.NewImageChecker(nil)
	}

	return &Service{
		config:       config,
		site:         site,
		pageHandler:  handlers.NewPageHandler(site, config.BaseURL),
		feedHandler:  handlers.NewFeedHandler(feed.NewLoader(client), images),
		assetHandler: handlers.NewAssetHandler(site, config.PublicDir),
	}
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	e.Static("/public", s.config.PublicDir)

	e.GET("/", s.pageHandler.HandleHome)
	e.GET("/panel/:name", s.pageHandler.HandlePanel)

	// Each page asks for the feed once on load; the limiter only guards
	// against clients hammering the upstream through us.
	feedLimiter := middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(s.config.Feed.RateLimit),
			Burst: s.config.Feed.RateBurst,
		}),
		DenyHandler: s.feedHandler.HandleLimited,
	})
	e.GET("/feed", s.feedHandler.HandleFeed, feedLimiter)

	e.GET(s.site.Packet.Path, s.assetHandler.HandlePacket)
	e.GET("/og-image.png", s.assetHandler.HandleOGImage)
	e.GET("/qr/instagram.png", s.assetHandler.HandleQRCode)

	e.GET("/health", s.handleHealth)
}

func (s *Service) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":      "healthy",
		"environment": s.config.Environment,
		"feed":        s.config.Feed.URL,
	})
}
