// Package tui is a terminal preview of the site's four panels.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/eclipse-robotics/vexu-site/internal/content"
	"github.com/eclipse-robotics/vexu-site/internal/feed"
	"github.com/eclipse-robotics/vexu-site/internal/shell"
)

// HostClipboard writes to the system clipboard.
var HostClipboard shell.Clipboard = shell.ClipboardFunc(clipboard.WriteAll)

type feedMsg feed.Result

type shellMsg shell.State

type Model struct {
	site    *content.Site
	loader  *feed.Loader
	shell   *shell.Shell
	changes chan shell.State
	feed    feed.Result
	width   int
}

// New builds the preview. The shell options are passed through, so tests
// can swap the clock and clipboard.
func New(site *content.Site, loader *feed.Loader, opts ...shell.Option) Model {
	changes := make(chan shell.State, 4)
	opts = append(opts, shell.OnChange(func(st shell.State) {
		select {
		case changes <- st:
		default:
		}
	}))

	return Model{
		site:    site,
		loader:  loader,
		shell:   shell.New(site.Contact.Email, opts...),
		changes: changes,
		feed:    feed.Result{State: feed.StateLoading},
	}
}

// Run starts the preview in the alternate screen and blocks until quit.
func Run(site *content.Site, loader *feed.Loader) error {
	m := New(site, loader, shell.WithClipboard(HostClipboard))
	defer m.shell.Close()

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Init issues the single feed load for this session.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadFeed(m.loader), waitForChange(m.changes))
}

func loadFeed(loader *feed.Loader) tea.Cmd {
	return func() tea.Msg {
		return feedMsg(loader.Load(context.Background()))
	}
}

func waitForChange(ch <-chan shell.State) tea.Cmd {
	return func() tea.Msg {
		return shellMsg(<-ch)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case feedMsg:
		m.feed = feed.Result(msg)

	case shellMsg:
		return m, waitForChange(m.changes)

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "1", "2", "3", "4":
			m.shell.Select(shell.Panels()[key[0]-'1'])
		case "tab", "right", "l":
			m.shell.Select(step(m.shell.Active(), 1))
		case "shift+tab", "left", "h":
			m.shell.Select(step(m.shell.Active(), -1))
		case "c":
			m.shell.CopyEmail()
		}
	}
	return m, nil
}

// step moves through the panels in nav order, wrapping at both ends.
func step(p shell.Panel, delta int) shell.Panel {
	panels := shell.Panels()
	for i, q := range panels {
		if q == p {
			return panels[(i+delta+len(panels))%len(panels)]
		}
	}
	return shell.DefaultPanel
}

// State exposes the shell snapshot.
func (m Model) State() shell.State {
	return m.shell.State()
}

func (m Model) View() string {
	st := m.shell.State()

	var b strings.Builder
	b.WriteString(m.nav(st.Active))
	b.WriteString("\n\n")

	switch st.Active {
	case shell.PanelTeam:
		b.WriteString(m.team())
	case shell.PanelSponsorship:
		b.WriteString(m.sponsorship())
	case shell.PanelContact:
		b.WriteString(m.contact(st.Copied))
	default:
		b.WriteString(m.home())
		b.WriteString("\n\n")
		b.WriteString(m.feedView())
	}

	b.WriteString(helpStyle.Render("1-4/tab switch panel • c copy email • q quit"))
	return b.String()
}

func (m Model) nav(active shell.Panel) string {
	tabs := make([]string, 0, len(shell.Panels())+1)
	tabs = append(tabs, brandStyle.Render("ECLIPSE VEX U")+"  ")
	for i, p := range shell.Panels() {
		label := fmt.Sprintf("%d %s", i+1, strings.ToUpper(p.String()))
		if p == active {
			tabs = append(tabs, activeTab.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func heading(h content.Heading) string {
	title := titleStyle.Render(strings.ToUpper(h.Title) + " " + highlightStyle.Render(strings.ToUpper(h.Highlight)))
	return title + "\n" + leadStyle.Render(h.Lead) + "\n\n"
}

func cards(cs []content.Card) string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, cardStyle.Width(34).Render(titleStyle.Render(strings.ToUpper(c.Title))+"\n"+c.Text))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

func (m Model) home() string {
	s := m.site
	var b strings.Builder
	b.WriteString(leadStyle.Render(s.Team.Tagline) + "\n")
	b.WriteString(titleStyle.Render(strings.ToUpper(s.Hero.Headline)+" "+highlightStyle.Render(strings.ToUpper(s.Hero.Highlight))) + "\n")
	b.WriteString(s.Hero.Lead + "\n\n")

	stats := make([]string, 0, len(s.Performance.Stats))
	for _, st := range s.Performance.Stats {
		stats = append(stats, cardStyle.Render(statStyle.Render(st.Value)+"\n"+st.Label))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, stats...) + "\n")
	b.WriteString(cards(s.Performance.Features))
	return b.String()
}

func (m Model) feedView() string {
	var b strings.Builder
	b.WriteString(feedStyle.Render("LIVE FEED @"+strings.TrimPrefix(m.site.Contact.InstagramHandle, "@")) + "\n")

	switch {
	case m.feed.State == feed.StateLoading:
		b.WriteString(leadStyle.Render(strings.Repeat("▢ ", feed.MaxPosts)))
	case m.feed.State.Unavailable():
		b.WriteString(leadStyle.Render("Feed temporarily unavailable"))
	default:
		for _, t := range feed.Tiles(m.feed.Posts) {
			line := t.Link
			if t.IsVideo {
				line = "▶ " + line
			}
			if t.Likes != "" {
				line += "  ♥ " + t.Likes
			}
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

func (m Model) team() string {
	return heading(m.site.TeamPanel.Heading) + cards(m.site.TeamPanel.Disciplines)
}

func (m Model) sponsorship() string {
	sp := m.site.Sponsorship
	var b strings.Builder
	b.WriteString(heading(sp.Heading))
	b.WriteString(statStyle.Render(sp.Goal) + "\n")
	b.WriteString(fmt.Sprintf("Packet: %s\n\n", m.site.Packet.Filename))
	for _, line := range sp.Budget {
		bar := strings.Repeat("█", line.Share/4) + strings.Repeat("░", 25-line.Share/4)
		b.WriteString(fmt.Sprintf("%-26s %s %3d%%\n", line.Label, statStyle.Render(bar), line.Share))
	}
	b.WriteString("\n" + cards(sp.Channels))
	return b.String()
}

func (m Model) contact(copied bool) string {
	c := m.site.Contact
	var b strings.Builder
	b.WriteString(heading(m.site.ContactPage))
	b.WriteString(highlightStyle.Render(c.Email) + "\n")
	b.WriteString(c.Person + "\n" + c.Phone + "\n")
	b.WriteString(feedStyle.Render("@"+strings.TrimPrefix(c.InstagramHandle, "@")) + "\n\n")
	if copied {
		b.WriteString(copiedStyle.Render("✓ Copied!"))
	} else {
		b.WriteString(leadStyle.Render("press c to copy email"))
	}
	return b.String()
}
