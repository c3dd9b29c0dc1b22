package dkssite

import (
	"time"

	"github.com/eringen/dkssite/contact"
	"github.com/eringen/dkssite/content"
	"github.com/eringen/dkssite/views"
)

// SiteConfig holds all configuration for the site.
type SiteConfig struct {
	Name        string // Site name (default "DKS Liberia")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Organization name for JSON-LD

	ContactEmail   string
	ContactPhone   string
	ContactAddress string

	Addr         string // Listen address (default ":3000")
	ContentDir   string // Fixture directory (default "data")
	WatchContent bool   // Reload content when files under ContentDir change
	PageSize     int    // Stories per listing page (default 6)

	SessionSecret string // Required: session cookie secret
	CookieSecure  bool   // Set true for HTTPS

	ContactDelay      time.Duration // Simulated backend latency (default 500ms, negative disables)
	ContactRateLimit  int           // Contact submissions per IP per window (default 5)
	ContactRateWindow time.Duration // default 1min

	LogLevel string // debug, info, warn, error or off (default info)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "DKS Liberia"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Description == "" {
		c.Description = "Empowering young entrepreneurs to build businesses that transform their communities."
	}
	if c.ContactEmail == "" {
		c.ContactEmail = "info@dksliberia.org"
	}
	if c.ContactPhone == "" {
		c.ContactPhone = "+231 123 456 789"
	}
	if c.ContactAddress == "" {
		c.ContactAddress = "Monrovia, Liberia"
	}
	if c.Author == "" {
		c.Author = c.Name
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "data"
	}
	if c.PageSize <= 0 {
		c.PageSize = 6
	}
	if c.ContactDelay == 0 {
		c.ContactDelay = contact.DefaultDelay
	}
	if c.ContactRateLimit <= 0 {
		c.ContactRateLimit = 5
	}
	if c.ContactRateWindow <= 0 {
		c.ContactRateWindow = time.Minute
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c SiteConfig) view() views.SiteConfig {
	return views.SiteConfig{
		Name:           c.Name,
		URL:            c.URL,
		Description:    c.Description,
		Author:         c.Author,
		ContactEmail:   c.ContactEmail,
		ContactPhone:   c.ContactPhone,
		ContactAddress: c.ContactAddress,
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir serves /public from dir instead of the embedded assets.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithSource uses src instead of loading Config.ContentDir.
func WithSource(src *content.Source) Option {
	return func(a *App) {
		a.Content = src
	}
}
