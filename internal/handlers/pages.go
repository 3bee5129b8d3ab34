package handlers

import (
	"net/http"

	"github.com/eclipse-robotics/vexu-site/internal/content"
	"github.com/eclipse-robotics/vexu-site/internal/shell"
	"github.com/eclipse-robotics/vexu-site/views/home"
	"github.com/eclipse-robotics/vexu-site/views/layout"
	"github.com/labstack/echo/v4"
)

type PageHandler struct {
	site    *content.Site
	baseURL string
}

func NewPageHandler(site *content.Site, baseURL string) *PageHandler {
	return &PageHandler{
		site:    site,
		baseURL: baseURL,
	}
}

// HandleHome renders the full page on the default panel.
func (h *PageHandler) HandleHome(c echo.Context) error {
	sh := shell.New(h.site.Contact.Email)
	defer sh.Close()

	meta := layout.NewPageMeta(h.baseURL, h.site)
	return Render(c, home.Index(meta, h.site, sh.State()))
}

// HandlePanel selects a panel. htmx requests get the fragment for #main;
// a direct visit gets the full page with that panel active.
func (h *PageHandler) HandlePanel(c echo.Context) error {
	p, err := shell.ParsePanel(c.Param("name"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Panel not found")
	}

	sh := shell.New(h.site.Contact.Email)
	defer sh.Close()
	sh.Select(p)

	if IsHTMX(c) {
		return Render(c, home.Fragment(h.site, sh.Active()))
	}

	meta := layout.NewPageMeta(h.baseURL, h.site)
	return Render(c, home.Index(meta, h.site, sh.State()))
}
