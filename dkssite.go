// Package dkssite serves the foundation's public website with Echo and templ.
// It renders the home, about, programs, impact, stories and contact pages,
// plus RSS, sitemap and a small JSON API.
//
// Page markup lives in the views package; callers may replace any page
// through ViewFuncs, and dkssite handles routing, middleware and content.
package dkssite

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/eringen/dkssite/contact"
	"github.com/eringen/dkssite/content"
	"github.com/eringen/dkssite/views"
)

// ViewFuncs holds the templ components the handlers call when rendering
// pages. Zero fields fall back to the views package.
type ViewFuncs struct {
	Home           func(views.HomePage) templ.Component
	About          func(views.AboutPage) templ.Component
	Programs       func(views.ProgramsPage) templ.Component
	Impact         func(views.ImpactPage) templ.Component
	Contact        func(views.ContactPage) templ.Component
	Stories        func(views.StoriesPage) templ.Component
	StoriesSection func(views.StoriesPage) templ.Component
	Story          func(views.StoryPage) templ.Component
	NotFound       func(views.Chrome) templ.Component
	ServerError    func(views.Chrome) templ.Component
}

func (v *ViewFuncs) setDefaults() {
	if v.Home == nil {
		v.Home = views.Home
	}
	if v.About == nil {
		v.About = views.About
	}
	if v.Programs == nil {
		v.Programs = views.Programs
	}
	if v.Impact == nil {
		v.Impact = views.Impact
	}
	if v.Contact == nil {
		v.Contact = views.Contact
	}
	if v.Stories == nil {
		v.Stories = views.Stories
	}
	if v.StoriesSection == nil {
		v.StoriesSection = views.StoriesSection
	}
	if v.Story == nil {
		v.Story = views.Story
	}
	if v.NotFound == nil {
		v.NotFound = views.NotFound
	}
	if v.ServerError == nil {
		v.ServerError = views.ServerError
	}
}

// App is the site application. It wires together content, handlers,
// middleware and views.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Content *content.Source
	Contact *contact.Service
	Views   ViewFuncs

	contactLimiter *RateLimiter
	customRoutes   []func(*App)
	staticDir      string
	stopWatch      func()
	ready          bool
}

// New creates an App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()
	views.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  views,
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Setup loads content and registers middleware and routes. Start calls it;
// tests call it directly and drive a.Echo with httptest.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if a.Config.SessionSecret == "" {
		return errors.New("dkssite: SessionSecret is required")
	}

	a.Echo.Logger.SetLevel(parseLogLevel(a.Config.LogLevel))

	if a.Content == nil {
		src, err := content.NewSource(a.Config.ContentDir)
		if err != nil {
			return fmt.Errorf("dkssite: load content: %w", err)
		}
		a.Content = src
	}
	if a.Config.WatchContent && a.Content.Dir() != "" {
		stop, err := a.Content.Watch(context.Background(), a.Echo.Logger)
		if err != nil {
			return fmt.Errorf("dkssite: watch content: %w", err)
		}
		a.stopWatch = stop
	}

	if a.Contact == nil {
		a.Contact = contact.NewService(a.Config.ContactDelay, a.Echo.Logger)
	}
	a.contactLimiter = NewRateLimiter(a.Config.ContactRateLimit, a.Config.ContactRateWindow)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	a.ready = true
	return nil
}

// Start sets the app up and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	a.Echo.Logger.Infof("serving %s on %s (%d stories)", a.Config.Name, a.Config.Addr, a.Content.Site().Catalog.Len())
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully and releases background resources.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if cerr := a.Close(); err == nil {
		err = cerr
	}
	return err
}

func (a *App) setupRoutes() {
	e := a.Echo

	a.registerStatic()
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	e.GET("/about/", a.handleAbout)
	e.GET("/programs/", a.handlePrograms)
	e.GET("/impact/", a.handleImpact)
	e.GET("/stories/", a.handleStories)
	e.GET("/stories/:slug/", a.handleStory)
	e.GET("/contact/", a.handleContact)
	e.POST("/contact/", a.handleContactForm)

	e.GET("/api/posts", a.handlePostsAPI)
	e.Match(otherMethods(http.MethodGet), "/api/posts", methodNotAllowed(http.MethodGet))
	e.POST("/api/contact", a.handleContactAPI)
	e.Match(otherMethods(http.MethodPost), "/api/contact", methodNotAllowed(http.MethodPost))
}

// Close releases background resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.stopWatch != nil {
		a.stopWatch()
		a.stopWatch = nil
	}
	if a.contactLimiter != nil {
		a.contactLimiter.Stop()
	}
	return nil
}

func parseLogLevel(s string) log.Lvl {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
