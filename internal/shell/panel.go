package shell

import (
	"errors"
	"fmt"
	"strings"
)

// Panel is one of the mutually exclusive top-level views.
type Panel string

const (
	PanelHome        Panel = "home"
	PanelTeam        Panel = "team"
	PanelSponsorship Panel = "sponsorship"
	PanelContact     Panel = "contact"
)

// DefaultPanel is shown on a fresh page load.
const DefaultPanel = PanelHome

var ErrUnknownPanel = errors.New("unknown panel")

var panels = []Panel{PanelHome, PanelTeam, PanelSponsorship, PanelContact}

// Panels returns every panel in navigation order.
func Panels() []Panel {
	out := make([]Panel, len(panels))
	copy(out, panels)
	return out
}

// ParsePanel resolves a navigation target name.
func ParsePanel(name string) (Panel, error) {
	p := Panel(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range panels {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPanel, name)
}

func (p Panel) String() string {
	return string(p)
}

// Label is the footer wording for a panel.
func (p Panel) Label() string {
	switch p {
	case PanelTeam:
		return "The Team"
	case PanelSponsorship:
		return "Sponsorship"
	case PanelContact:
		return "Contact"
	default:
		return "Home"
	}
}
