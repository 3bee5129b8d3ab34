package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/eclipse-robotics/vexu-site/internal/content"
	"github.com/eclipse-robotics/vexu-site/internal/feed"
	"github.com/eclipse-robotics/vexu-site/internal/shell"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	posts []feed.Post
	err   error
	calls int
}

func (f *stubFetcher) Fetch(context.Context) ([]feed.Post, error) {
	f.calls++
	return f.posts, f.err
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func TestPanelKeys(t *testing.T) {
	m := New(content.MustLoad(), feed.NewLoader(&stubFetcher{}))
	assert.Equal(t, shell.PanelHome, m.State().Active)

	m = press(t, m, "2")
	assert.Equal(t, shell.PanelTeam, m.State().Active)
	m = press(t, m, "4")
	assert.Equal(t, shell.PanelContact, m.State().Active)
	m = press(t, m, "tab")
	assert.Equal(t, shell.PanelHome, m.State().Active)
	m = press(t, m, "shift+tab")
	assert.Equal(t, shell.PanelContact, m.State().Active)
}

func TestFeedLoadsOnceAcrossPanels(t *testing.T) {
	fetcher := &stubFetcher{posts: []feed.Post{{ID: "1", MediaURL: "https://cdn.example.com/1.jpg"}}}
	m := New(content.MustLoad(), feed.NewLoader(fetcher))
	assert.Contains(t, m.View(), "▢")

	next, _ := m.Update(loadFeed(m.loader)())
	m = next.(Model)
	m = press(t, m, "2", "3", "1")

	assert.Equal(t, 1, fetcher.calls)
	assert.Contains(t, m.View(), "https://www.instagram.com/p/1")
}

func TestFeedFailureShowsPlaceholder(t *testing.T) {
	m := New(content.MustLoad(), feed.NewLoader(&stubFetcher{err: errors.New("offline")}))

	next, _ := m.Update(loadFeed(m.loader)())
	m = next.(Model)

	assert.Contains(t, m.View(), "Feed temporarily unavailable")
}

func TestCopyConfirmation(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var copied []string
	clip := shell.ClipboardFunc(func(s string) error {
		copied = append(copied, s)
		return nil
	})

	m := New(content.MustLoad(), feed.NewLoader(&stubFetcher{}), shell.WithClock(clock), shell.WithClipboard(clip))
	m = press(t, m, "4", "c")

	require.Equal(t, []string{"eclipseroboticsca@gmail.com"}, copied)
	assert.Contains(t, m.View(), "Copied!")

	clock.Advance(shell.CopyConfirmation)

	select {
	case <-m.changes:
	case <-time.After(time.Second):
		t.Fatal("confirmation did not revert")
	}
	assert.False(t, m.State().Copied)
	assert.NotContains(t, m.View(), "Copied!")
}

func TestQuit(t *testing.T) {
	m := New(content.MustLoad(), feed.NewLoader(&stubFetcher{}))
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
