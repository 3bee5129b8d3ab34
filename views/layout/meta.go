package layout

import (
	"encoding/json"
	"strings"

	"github.com/eclipse-robotics/vexu-site/internal/content"
)

// PageMeta contains all metadata for a page (SEO, Open Graph, Twitter, Schema.org)
type PageMeta struct {
	// Basic HTML meta
	Title        string
	Description  string
	Keywords     []string
	CanonicalURL string

	// Open Graph
	OGType        string // "website"
	OGTitle       string
	OGDescription string
	OGImageURL    string // MUST be absolute URL
	OGURL         string // MUST be absolute URL
	OGSiteName    string

	// Twitter Cards
	TwitterCard     string // "summary_large_image"
	TwitterImageURL string // MUST be absolute URL

	// Internal state
	SiteURL      string // e.g., "https://eclipserobotics.org"
	InstagramURL string
}

// NewPageMeta creates a PageMeta with site-wide defaults
func NewPageMeta(siteURL string, site *content.Site) PageMeta {
	siteName := site.Team.Name + " " + site.Team.Division
	description := site.Hero.Lead
	ogImage := BuildAbsoluteURL(siteURL, "/og-image.png")

	// Always canonicalize to the root; panels are not addressable
	canonicalURL := BuildAbsoluteURL(siteURL, "/")

	return PageMeta{
		Title:        siteName,
		Description:  description,
		Keywords:     []string{"VEX U", "robotics", "collegiate robotics", "STEM", "sponsorship", "California"},
		CanonicalURL: canonicalURL,

		OGType:        "website",
		OGTitle:       siteName,
		OGDescription: description,
		OGImageURL:    ogImage,
		OGURL:         canonicalURL,
		OGSiteName:    siteName,

		TwitterCard:     "summary_large_image",
		TwitterImageURL: ogImage,

		SiteURL:      siteURL,
		InstagramURL: site.Contact.InstagramURL,
	}
}

// KeywordsString returns keywords as a comma-separated string
func (pm PageMeta) KeywordsString() string {
	return strings.Join(pm.Keywords, ", ")
}

// BuildAbsoluteURL constructs an absolute URL from a path
func BuildAbsoluteURL(siteURL, path string) string {
	if path == "" {
		return siteURL
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	siteURL = strings.TrimRight(siteURL, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return siteURL + path
}

// OrganizationSchemaJSON returns the site-wide SportsTeam JSON-LD
func (pm PageMeta) OrganizationSchemaJSON() string {
	schema := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "SportsTeam",
		"name":     pm.OGSiteName,
		"url":      pm.SiteURL,
		"sport":    "Robotics",
		"logo":     pm.OGImageURL,
	}
	if pm.InstagramURL != "" {
		schema["sameAs"] = []string{pm.InstagramURL}
	}

	bytes, err := json.Marshal(schema)
	if err != nil {
		return "{}"
	}
	return string(bytes)
}
