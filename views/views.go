// Package views renders the site's pages as templ components.
//
// Pages are html/template files embedded from templates/. Each page file
// defines "main" and is parsed together with the shared layout and partials.
package views

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"
)

//go:embed templates/*.html
var templateFS embed.FS

// NavItem is one entry of the main navigation.
type NavItem struct {
	Path  string
	Label string
}

// Nav is the main navigation, in display order.
var Nav = []NavItem{
	{"/", "Home"},
	{"/about/", "About"},
	{"/programs/", "Programs"},
	{"/impact/", "Impact"},
	{"/stories/", "Stories"},
	{"/contact/", "Contact"},
}

var funcs = template.FuncMap{
	"formatDate": FormatDate,
	"shortDate":  ShortDate,
	"filterURL":  FilterURL,
	"pageURL":    PageURL,
	"comma":      func(n int) string { return humanize.Comma(int64(n)) },
	"nav":        func() []NavItem { return Nav },
	// Story content is trusted fixture HTML and is rendered verbatim.
	"trusted": func(s string) template.HTML { return template.HTML(s) },
	"jsonLD":  func(s string) template.JS { return template.JS(s) },
	"add":     func(a, b int) int { return a + b },
	"sub":     func(a, b int) int { return a - b },
	"header": func(title, subtitle string) map[string]string {
		return map[string]string{"Title": title, "Subtitle": subtitle}
	},
	"stat": func(label string, value int) stat { return stat{Label: label, Value: value} },
}

type stat struct {
	Label string
	Value int
}

var pages = map[string]*template.Template{}

func init() {
	for _, name := range []string{"home", "about", "programs", "impact", "contact", "stories", "story", "notfound", "error"} {
		pages[name] = template.Must(template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/partials.html",
			"templates/"+name+".html",
		))
	}
}

func page(name string, data any) templ.Component {
	return fragment(name, "layout", data)
}

func fragment(name, block string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t, ok := pages[name]
		if !ok {
			return fmt.Errorf("views: unknown page %q", name)
		}
		return t.ExecuteTemplate(w, block, data)
	})
}

// Home renders the landing page.
func Home(p HomePage) templ.Component { return page("home", p) }

// About renders the organization, team and partners page.
func About(p AboutPage) templ.Component { return page("about", p) }

// Programs renders the program list with testimonials.
func Programs(p ProgramsPage) templ.Component { return page("programs", p) }

// Impact renders the overall figures and the yearly chart.
func Impact(p ImpactPage) templ.Component { return page("impact", p) }

// Contact renders the contact details and form.
func Contact(p ContactPage) templ.Component { return page("contact", p) }

// Stories renders the full story listing page.
func Stories(p StoriesPage) templ.Component { return page("stories", p) }

// Story renders a single story with related stories and share links.
func Story(p StoryPage) templ.Component { return page("story", p) }

// NotFound renders the 404 page.
func NotFound(c Chrome) templ.Component { return page("notfound", c) }

// ServerError renders the 500 page.
func ServerError(c Chrome) templ.Component { return page("error", c) }

// StoriesSection renders only the listing grid and pagination, for HTMX swaps.
func StoriesSection(p StoriesPage) templ.Component {
	return fragment("stories", "stories_section", p)
}
