// Package content holds the static copy of the site. Everything here is
// literal data; nothing is derived at runtime.
package content

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var siteYAML []byte

type Site struct {
	Team        Team        `yaml:"team"`
	Contact     Contact     `yaml:"contact"`
	Packet      Packet      `yaml:"packet"`
	Hero        Hero        `yaml:"hero"`
	Performance Performance `yaml:"performance"`
	TeamPanel   TeamPanel   `yaml:"team_panel"`
	Sponsorship Sponsorship `yaml:"sponsorship"`
	ContactPage Heading     `yaml:"contact_panel"`
}

type Team struct {
	Name     string `yaml:"name"`
	Division string `yaml:"division"`
	Tagline  string `yaml:"tagline"`
	Footer   string `yaml:"footer"`
}

type Contact struct {
	Email           string `yaml:"email"`
	Person          string `yaml:"person"`
	Phone           string `yaml:"phone"`
	InstagramHandle string `yaml:"instagram_handle"`
	InstagramURL    string `yaml:"instagram_url"`
}

// Mailto returns the mailto: link for the team email.
func (c Contact) Mailto() string {
	return "mailto:" + c.Email
}

type Packet struct {
	Path     string `yaml:"path"`
	Filename string `yaml:"filename"`
}

type Hero struct {
	Headline  string `yaml:"headline"`
	Highlight string `yaml:"highlight"`
	Lead      string `yaml:"lead"`
}

// Heading is a two-tone panel title with a lead paragraph.
type Heading struct {
	Title     string `yaml:"title"`
	Highlight string `yaml:"highlight"`
	Lead      string `yaml:"lead"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type Card struct {
	Icon   string `yaml:"icon"`
	Accent string `yaml:"accent"`
	Title  string `yaml:"title"`
	Text   string `yaml:"text"`
}

type Performance struct {
	Title    string `yaml:"title"`
	Lead     string `yaml:"lead"`
	Stats    []Stat `yaml:"stats"`
	Features []Card `yaml:"features"`
}

type TeamPanel struct {
	Heading     `yaml:",inline"`
	Disciplines []Card `yaml:"disciplines"`
}

type PacketPage struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

type BudgetLine struct {
	Label string `yaml:"label"`
	Share int    `yaml:"share"`
	Icon  string `yaml:"icon"`
}

type InKind struct {
	Lead  string   `yaml:"lead"`
	Items []string `yaml:"items"`
}

type Sponsorship struct {
	Heading  `yaml:",inline"`
	Goal     string       `yaml:"goal"`
	Pages    []PacketPage `yaml:"pages"`
	Budget   []BudgetLine `yaml:"budget"`
	Channels []Card       `yaml:"channels"`
	InKind   InKind       `yaml:"in_kind"`
	Support  []string     `yaml:"support"`
}

var (
	once    sync.Once
	site    *Site
	loadErr error
)

// Parse decodes a site document.
func Parse(data []byte) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode site content: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load returns the embedded site content, decoded once.
func Load() (*Site, error) {
	once.Do(func() {
		site, loadErr = Parse(siteYAML)
	})
	return site, loadErr
}

// MustLoad is Load for callers that cannot run without content.
func MustLoad() *Site {
	s, err := Load()
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Site) validate() error {
	if s.Contact.Email == "" {
		return fmt.Errorf("site content: contact email is required")
	}
	if s.Packet.Path == "" || s.Packet.Filename == "" {
		return fmt.Errorf("site content: packet path and filename are required")
	}
	total := 0
	for _, line := range s.Sponsorship.Budget {
		total += line.Share
	}
	if len(s.Sponsorship.Budget) > 0 && total != 100 {
		return fmt.Errorf("site content: budget shares add up to %d, want 100", total)
	}
	return nil
}
