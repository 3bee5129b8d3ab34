package handlers

import (
	"context"
	"log/slog"

	"github.com/eclipse-robotics/vexu-site/internal/feed"
	feedview "github.com/eclipse-robotics/vexu-site/views/feed"
	"github.com/labstack/echo/v4"
)

// TileResolver swaps unreachable tile images for the fallback.
type TileResolver interface {
	Resolve(ctx context.Context, tiles []feed.Tile) []feed.Tile
}

type FeedHandler struct {
	loader *feed.Loader
	images TileResolver
}

func NewFeedHandler(loader *feed.Loader, images TileResolver) *FeedHandler {
	return &FeedHandler{
		loader: loader,
		images: images,
	}
}

// HandleFeed runs one load and renders the grid that replaces the skeleton.
// Failures render the unavailable placeholder with a 200 so htmx swaps it in.
func (h *FeedHandler) HandleFeed(c echo.Context) error {
	ctx := c.Request().Context()
	res := h.loader.Load(ctx)

	tiles := feed.Tiles(res.Posts)
	if h.images != nil && len(tiles) > 0 {
		tiles = h.images.Resolve(ctx, tiles)
	}

	c.Response().Header().Set("X-Feed-Load-ID", res.ID)
	c.Response().Header().Set("Cache-Control", "no-store")
	return Render(c, feedview.Grid(res.State, tiles))
}

// HandleLimited answers a rate-limited feed request. The skeleton still has to
// settle, so the client gets the failed grid rather than a 429 htmx would not
// swap.
func (h *FeedHandler) HandleLimited(c echo.Context, identifier string, err error) error {
	slog.Warn("feed request rate limited",
		"client", identifier,
		"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		"error", err)

	c.Response().Header().Set("Cache-Control", "no-store")
	return Render(c, feedview.Grid(feed.StateFailed, nil))
}
