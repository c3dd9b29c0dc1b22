package dkssite

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/dkssite/views"
)

const (
	featuredPrograms = 3
	featuredStories  = 3
	recentStories    = 5
	relatedStories   = 3
)

// chrome builds the layout data shared by every page. Title is the page's
// own title; the site name is appended.
func (a *App) chrome(c echo.Context, active, title, description string) views.Chrome {
	site := a.Config.view()
	meta := views.PageMeta{
		Title:       site.Name,
		Description: description,
		URL:         views.BuildURL(a.Config.URL, c.Request().URL.Path),
		OGType:      "website",
	}
	if title != "" {
		meta.Title = title + " - " + site.Name
	}
	if meta.Description == "" {
		meta.Description = site.Description
	}
	return views.Chrome{
		Site:   site,
		Meta:   meta,
		Active: active,
		CSRF:   CsrfToken(c),
		JsonLD: views.OrganizationJsonLD(site),
		Year:   time.Now().Year(),
	}
}

func (a *App) handleHome(c echo.Context) error {
	site := a.Content.Site()
	programs := site.Programs
	if len(programs) > featuredPrograms {
		programs = programs[:featuredPrograms]
	}
	return Render(c, a.Views.Home(views.HomePage{
		Chrome:   a.chrome(c, "/", "", ""),
		Programs: programs,
		Overall:  site.Impact.Overall,
		Stories:  site.Catalog.Recent(featuredStories),
		Partners: site.Partners,
	}))
}

func (a *App) handleAbout(c echo.Context) error {
	site := a.Content.Site()
	return Render(c, a.Views.About(views.AboutPage{
		Chrome:   a.chrome(c, "/about/", "About Us", "Learn about our mission, vision and the team behind our work."),
		Team:     site.Team,
		Partners: site.Partners,
		Overall:  site.Impact.Overall,
	}))
}

func (a *App) handlePrograms(c echo.Context) error {
	site := a.Content.Site()
	return Render(c, a.Views.Programs(views.ProgramsPage{
		Chrome:       a.chrome(c, "/programs/", "Our Programs", "Entrepreneurship training, incubation and career readiness programs."),
		Programs:     site.Programs,
		Testimonials: site.Testimonials,
	}))
}

func (a *App) handleImpact(c echo.Context) error {
	site := a.Content.Site()
	return Render(c, a.Views.Impact(views.ImpactPage{
		Chrome: a.chrome(c, "/impact/", "Our Impact", "The numbers behind the entrepreneurs, businesses and jobs we have helped create."),
		Impact: site.Impact,
	}))
}

func (a *App) handleStory(c echo.Context) error {
	site := a.Content.Site()
	post, ok := site.Catalog.FindBySlug(c.Param("slug"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	ch := a.chrome(c, "/stories/", post.Title, post.Excerpt)
	ch.Meta.OGType = "article"
	ch.Meta.Image = post.Image
	ch.JsonLD = views.ArticleJsonLD(ch.Site, post)
	return Render(c, a.Views.Story(views.StoryPage{
		Chrome:  ch,
		Post:    post,
		Related: site.Catalog.Related(post, relatedStories),
		Share:   views.NewShareLinks(ch.Meta.URL, post.Title),
	}))
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.Content.Site().Catalog.Posts())
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, a.Content.Site().Catalog.Posts())
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nAllow: /\n\nSitemap: " + strings.TrimRight(a.Config.URL, "/") + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		a.Echo.DefaultHTTPErrorHandler(err, c)
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.chrome(c, "", "Page Not Found", "")))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError(a.chrome(c, "", "Server Error", "")))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
