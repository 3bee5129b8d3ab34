package handlers

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/eclipse-robotics/vexu-site/internal/content"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlePacketGenerated(t *testing.T) {
	h := NewAssetHandler(content.MustLoad(), t.TempDir())
	c, rec := NewTestContext(http.MethodGet, "/Eclipse_Robotics_Sponsorship_Packet.pdf")

	require.NoError(t, h.HandlePacket(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "Eclipse_Robotics_Sponsorship_Packet.pdf")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
}

func TestHandlePacketStatic(t *testing.T) {
	dir := t.TempDir()
	site := content.MustLoad()
	require.NoError(t, os.WriteFile(filepath.Join(dir, site.Packet.Filename), []byte("%PDF-static"), 0o644))

	h := NewAssetHandler(site, dir)
	c, rec := NewTestContext(http.MethodGet, "/Eclipse_Robotics_Sponsorship_Packet.pdf")

	require.NoError(t, h.HandlePacket(c))

	assert.Equal(t, "%PDF-static", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "attachment")
}

func TestHandleOGImage(t *testing.T) {
	h := NewAssetHandler(content.MustLoad(), t.TempDir())
	c, rec := NewTestContext(http.MethodGet, "/og-image.png")

	require.NoError(t, h.HandleOGImage(c))

	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}

func TestHandleQRCode(t *testing.T) {
	h := NewAssetHandler(content.MustLoad(), t.TempDir())
	c, rec := NewTestContext(http.MethodGet, "/qr/instagram.png")

	require.NoError(t, h.HandleQRCode(c))

	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}
