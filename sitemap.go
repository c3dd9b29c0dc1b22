package dkssite

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/dkssite/catalog"
	"github.com/eringen/dkssite/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
}

// sitemapPages are the static pages, with how often they change.
var sitemapPages = []struct {
	path string
	freq string
}{
	{"", "weekly"},
	{"about", "monthly"},
	{"programs", "monthly"},
	{"impact", "monthly"},
	{"stories", "weekly"},
	{"contact", "yearly"},
}

func (a *App) renderSitemap(c echo.Context, posts []catalog.Post) error {
	base := a.Config.URL
	urls := make([]sitemapURL, 0, len(sitemapPages)+len(posts))
	for _, p := range sitemapPages {
		loc := views.BuildURL(base)
		if p.path != "" {
			loc = views.BuildURL(base, p.path)
		}
		urls = append(urls, sitemapURL{Loc: loc, ChangeFreq: p.freq})
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:     views.BuildURL(base, "stories", p.Slug),
			LastMod: p.Date,
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
