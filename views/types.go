package views

import (
	"github.com/eringen/dkssite/catalog"
	"github.com/eringen/dkssite/contact"
	"github.com/eringen/dkssite/content"
)

// SiteConfig holds site-wide settings shown by every template.
type SiteConfig struct {
	Name        string // SITE_NAME
	URL         string // SITE_URL
	Description string // SITE_DESCRIPTION
	Author      string // SITE_AUTHOR

	ContactEmail   string
	ContactPhone   string
	ContactAddress string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string // og:image, optional
}

// Chrome is the data shared by the layout: head, navigation and footer.
type Chrome struct {
	Site   SiteConfig
	Meta   PageMeta
	Active string // path of the active nav item
	CSRF   string
	JsonLD string
	Year   int
}

type HomePage struct {
	Chrome
	Programs []content.Program
	Overall  content.Overall
	Stories  []catalog.Post
	Partners []content.Partner
}

type AboutPage struct {
	Chrome
	Team     []content.TeamMember
	Partners []content.Partner
	Overall  content.Overall
}

type ProgramsPage struct {
	Chrome
	Programs     []content.Program
	Testimonials []content.Testimonial
}

type ImpactPage struct {
	Chrome
	Impact content.Impact
}

// ImpactRow is one year on the impact chart, with bar widths in percent.
type ImpactRow struct {
	Year             string
	Entrepreneurs    int
	Businesses       int
	Jobs             int
	EntrepreneursPct int
	BusinessesPct    int
	JobsPct          int
}

// Rows returns the yearly figures in ascending year order.
func (p ImpactPage) Rows() []ImpactRow {
	years := p.Impact.Years()
	max := p.Impact.Max()
	ent := p.Impact.Series(content.MetricEntrepreneurs)
	bus := p.Impact.Series(content.MetricBusinesses)
	jobs := p.Impact.Series(content.MetricJobs)
	rows := make([]ImpactRow, len(years))
	for i, y := range years {
		rows[i] = ImpactRow{
			Year:             y,
			Entrepreneurs:    ent[i],
			Businesses:       bus[i],
			Jobs:             jobs[i],
			EntrepreneursPct: ent[i] * 100 / max,
			BusinessesPct:    bus[i] * 100 / max,
			JobsPct:          jobs[i] * 100 / max,
		}
	}
	return rows
}

type ContactPage struct {
	Chrome
	Form    contact.Submission
	Error   string
	Success string
}

type StoriesPage struct {
	Chrome
	Page       catalog.Page
	Categories []catalog.Filter
	Recent     []catalog.Post
}

type StoryPage struct {
	Chrome
	Post    catalog.Post
	Related []catalog.Post
	Share   ShareLinks
}
