package home

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/eclipse-robotics/vexu-site/internal/content"
	"github.com/eclipse-robotics/vexu-site/internal/shell"
	"github.com/eclipse-robotics/vexu-site/views/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestPanelsCarryTheirName(t *testing.T) {
	site := content.MustLoad()
	for _, p := range shell.Panels() {
		t.Run(p.String(), func(t *testing.T) {
			out := render(t, Panel(site, p))
			assert.True(t, strings.HasPrefix(out, `<div data-panel="`+p.String()+`"`), out[:80])
		})
	}
}

func TestIndexDefaultsToHome(t *testing.T) {
	site := content.MustLoad()
	meta := layout.NewPageMeta("https://example.org", site)

	out := render(t, Index(meta, site, shell.State{Active: shell.PanelHome}))

	assert.Contains(t, out, `<main id="main"><div data-panel="home"`)
	assert.Contains(t, out, `<div id="feed-slot">`)
	assert.Contains(t, out, `hx-get="/feed"`)
	assert.Contains(t, out, `aria-current="page"`)
	assert.Contains(t, out, "https://example.org/og-image.png")
}

func TestIndexHidesFeedOffHome(t *testing.T) {
	site := content.MustLoad()
	meta := layout.NewPageMeta("https://example.org", site)

	out := render(t, Index(meta, site, shell.State{Active: shell.PanelTeam}))

	assert.Contains(t, out, `<div id="feed-slot" hidden>`)
	assert.Contains(t, out, `data-panel="team"`)
}

func TestFragmentSwapsNavOutOfBand(t *testing.T) {
	out := render(t, Fragment(content.MustLoad(), shell.PanelContact))

	assert.Contains(t, out, `data-panel="contact"`)
	assert.Contains(t, out, `hx-swap-oob="true"`)
	assert.NotContains(t, out, "<html")
	assert.Equal(t, 1, strings.Count(out, `aria-current="page"`))
}

func TestSponsorshipPacket(t *testing.T) {
	site := content.MustLoad()
	out := render(t, Sponsorship(site))

	assert.Contains(t, out, `href="/Eclipse_Robotics_Sponsorship_Packet.pdf"`)
	assert.Contains(t, out, `download="Eclipse_Robotics_Sponsorship_Packet.pdf"`)
	assert.Contains(t, out, "PAGE 01")
	assert.Contains(t, out, "PAGE 04")
	assert.Contains(t, out, "width: 40%")
	assert.Contains(t, out, "Seasonal Goal: $10,000")
}

func TestContactCopyButton(t *testing.T) {
	site := content.MustLoad()
	out := render(t, Contact(site))

	assert.Contains(t, out, `href="mailto:eclipseroboticsca@gmail.com"`)
	assert.Contains(t, out, `data-copy-text="eclipseroboticsca@gmail.com"`)
	assert.Contains(t, out, `data-copied="false"`)
	assert.Contains(t, out, `data-copy-ms="2000"`)
	assert.Contains(t, out, "Copy Email")
	assert.Contains(t, out, "Copied!")
	assert.Contains(t, out, "@eclipse_robotics")
}
