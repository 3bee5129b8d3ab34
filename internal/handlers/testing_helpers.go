package handlers

import (
	"context"
	"net/http/httptest"

	"github.com/eclipse-robotics/vexu-site/internal/feed"
	"github.com/labstack/echo/v4"
)

// NewTestContext creates a new Echo context for testing
func NewTestContext(method, path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)
	return c, rec
}

// NewHTMXContext is NewTestContext for a request issued by htmx.
func NewHTMXContext(method, path string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := NewTestContext(method, path)
	c.Request().Header.Set("HX-Request", "true")
	return c, rec
}

// StaticFetcher returns fixed posts or a fixed error.
type StaticFetcher struct {
	Posts []feed.Post
	Err   error
}

func (f StaticFetcher) Fetch(context.Context) ([]feed.Post, error) {
	return f.Posts, f.Err
}

// passThrough leaves tiles as they are.
type passThrough struct{}

func (passThrough) Resolve(_ context.Context, tiles []feed.Tile) []feed.Tile {
	return tiles
}

// PassThroughImages is a TileResolver that does no network probing.
var PassThroughImages TileResolver = passThrough{}

