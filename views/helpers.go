package views

import (
	"encoding/json"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/eringen/dkssite/catalog"
)

// BuildURL joins path segments onto a base URL. The result always ends in a
// slash, matching the site's canonical page URLs.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// FilterURL returns the listing URL that selects f. The All filter uses
// its own parameter so a category literally named "All" stays reachable.
func FilterURL(f catalog.Filter) string {
	if f.IsAll() {
		return "/stories/?all=1"
	}
	return "/stories/?category=" + url.QueryEscape(f.Name())
}

// PageURL returns the listing URL for page n of f.
func PageURL(f catalog.Filter, n int) string {
	return FilterURL(f) + "&page=" + strconv.Itoa(n)
}

// ShareLinks are the social share targets for a story.
type ShareLinks struct {
	Facebook string
	LinkedIn string
	WhatsApp string
}

// NewShareLinks builds share URLs for the page at pageURL.
func NewShareLinks(pageURL, title string) ShareLinks {
	u := encodeComponent(pageURL)
	return ShareLinks{
		Facebook: "https://www.facebook.com/sharer/sharer.php?u=" + u,
		LinkedIn: "https://www.linkedin.com/sharing/share-offsite/?url=" + u,
		WhatsApp: "https://wa.me/?text=" + encodeComponent(title) + "%20" + u,
	}
}

// encodeComponent escapes s like JavaScript's encodeURIComponent.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// FormatDate renders a YYYY-MM-DD date as "January 2, 2006".
// Unparseable input is returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}

// ShortDate renders a YYYY-MM-DD date as "1/2/2006".
func ShortDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("1/2/2006")
}

// OrganizationJsonLD produces a Schema.org NGO JSON-LD block using cfg values.
func OrganizationJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "NGO",
		"name":     cfg.Name,
		"url":      BuildURL(cfg.URL),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if cfg.ContactEmail != "" {
		data["email"] = cfg.ContactEmail
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// ArticleJsonLD produces a Schema.org Article JSON-LD block for a story.
func ArticleJsonLD(cfg SiteConfig, post catalog.Post) string {
	postURL := BuildURL(cfg.URL, "stories", post.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "Article",
		"headline":      post.Title,
		"description":   post.Excerpt,
		"datePublished": post.Date,
		"url":           postURL,
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if post.Category != "" {
		data["articleSection"] = post.Category
	}
	if post.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  post.Author,
		}
	}
	if post.Image != "" {
		data["image"] = post.Image
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
