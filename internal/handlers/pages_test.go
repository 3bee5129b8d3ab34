package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/eclipse-robotics/vexu-site/internal/content"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHome(t *testing.T) {
	h := NewPageHandler(content.MustLoad(), "https://example.org")
	c, rec := NewTestContext(http.MethodGet, "/")

	require.NoError(t, h.HandleHome(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, `data-panel="home"`)
	assert.Contains(t, body, `hx-get="/feed"`)
}

func TestHandlePanelFragment(t *testing.T) {
	h := NewPageHandler(content.MustLoad(), "https://example.org")

	for _, name := range []string{"home", "team", "sponsorship", "contact"} {
		t.Run(name, func(t *testing.T) {
			c, rec := NewHTMXContext(http.MethodGet, "/panel/"+name)
			c.SetParamNames("name")
			c.SetParamValues(name)

			require.NoError(t, h.HandlePanel(c))

			body := rec.Body.String()
			assert.True(t, strings.HasPrefix(body, `<div data-panel="`+name+`"`))
			assert.NotContains(t, body, "<html")
			assert.Contains(t, body, `hx-swap-oob="true"`)
		})
	}
}

func TestHandlePanelDirectVisit(t *testing.T) {
	h := NewPageHandler(content.MustLoad(), "https://example.org")
	c, rec := NewTestContext(http.MethodGet, "/panel/contact")
	c.SetParamNames("name")
	c.SetParamValues("contact")

	require.NoError(t, h.HandlePanel(c))

	body := rec.Body.String()
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, `<main id="main"><div data-panel="contact"`)
	assert.Contains(t, body, `<div id="feed-slot" hidden>`)
	assert.Contains(t, body, `<link rel="canonical" href="https://example.org/">`)
	assert.Contains(t, body, `<meta property="og:url" content="https://example.org/">`)
	assert.NotContains(t, body, "https://example.org/panel/")
}

func TestHandlePanelUnknown(t *testing.T) {
	h := NewPageHandler(content.MustLoad(), "https://example.org")
	c, _ := NewHTMXContext(http.MethodGet, "/panel/shop")
	c.SetParamNames("name")
	c.SetParamValues("shop")

	err := h.HandlePanel(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.Code)
}
