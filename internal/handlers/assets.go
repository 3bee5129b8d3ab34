package handlers

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/eclipse-robotics/vexu-site/internal/content"
	"github.com/eclipse-robotics/vexu-site/internal/ogimage"
	"github.com/eclipse-robotics/vexu-site/internal/packet"
	"github.com/labstack/echo/v4"
)

type AssetHandler struct {
	site      *content.Site
	publicDir string
	ogImage   *ogimage.Cache
}

func NewAssetHandler(site *content.Site, publicDir string) *AssetHandler {
	return &AssetHandler{
		site:      site,
		publicDir: publicDir,
		ogImage: ogimage.NewCache(ogimage.Card{
			Title:    site.Team.Name,
			Subtitle: site.Team.Division,
			Tagline:  site.Hero.Lead,
			Footer:   site.Team.Footer,
		}),
	}
}

// HandlePacket serves the deployed packet if there is one, otherwise renders
// it from content. Either way the download keeps the fixed filename.
func (h *AssetHandler) HandlePacket(c echo.Context) error {
	name := h.site.Packet.Filename
	static := filepath.Join(h.publicDir, name)
	if _, err := os.Stat(static); err == nil {
		return c.Attachment(static, name)
	}

	data, err := packet.Bytes(h.site)
	if err != nil {
		slog.Error("failed to render sponsorship packet", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate packet")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Blob(http.StatusOK, "application/pdf", data)
}

// HandleOGImage serves the share card, drawn on first request.
func (h *AssetHandler) HandleOGImage(c echo.Context) error {
	static := filepath.Join(h.publicDir, "og-image.png")
	if _, err := os.Stat(static); err == nil {
		return c.File(static)
	}

	data, err := h.ogImage.PNG()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate OG image")
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	return c.Blob(http.StatusOK, "image/png", data)
}

// HandleQRCode serves a QR code for the team's Instagram profile.
func (h *AssetHandler) HandleQRCode(c echo.Context) error {
	target := h.site.Contact.InstagramURL
	if !strings.HasPrefix(target, "https://") {
		return echo.NewHTTPError(http.StatusNotFound, "No profile configured")
	}

	data, err := packet.QRCode(target, 256)
	if err != nil {
		slog.Error("failed to encode QR code", "error", err, "url", target)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate QR code")
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	return c.Blob(http.StatusOK, "image/png", data)
}
