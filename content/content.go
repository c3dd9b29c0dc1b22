// Package content loads the site's read-only fixtures: stories, programs,
// impact figures, partners, team and testimonials.
package content

import (
	"sort"
	"strconv"

	"github.com/eringen/dkssite/catalog"
)

// Site is an immutable snapshot of every fixture collection.
type Site struct {
	Catalog      *catalog.Catalog
	Programs     []Program
	Impact       Impact
	Partners     []Partner
	Team         []TeamMember
	Testimonials []Testimonial
}

// Program is one training program.
type Program struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Duration    string `json:"duration"`
	Format      string `json:"format"`
	Impact      string `json:"impact"`
}

// Partner is shown in the partners strip.
type Partner struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
	URL  string `json:"url,omitempty"`
}

// TeamMember is shown on the about page.
type TeamMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Bio   string `json:"bio"`
	Image string `json:"image"`
}

// Testimonial is a graduate quote on the programs page.
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
}

// Impact holds the headline numbers and per-year figures.
type Impact struct {
	Overall          Overall              `json:"overall"`
	YearlyData       map[string]YearStats `json:"yearlyData"`
	SuccessSnapshots []Snapshot           `json:"successSnapshots"`
}

// Overall is the set of all-time counters.
type Overall struct {
	EntrepreneursTrained int `json:"entrepreneursTrained"`
	BusinessesLaunched   int `json:"businessesLaunched"`
	JobsCreated          int `json:"jobsCreated"`
	CommunitiesServed    int `json:"communitiesServed"`
	EnterprisesTrained   int `json:"enterprisesTrained"`
	IdeasLaunched        int `json:"ideasLaunched"`
	CohortsRan           int `json:"cohortsRan"`
	BusinessShowcasing   int `json:"businessShowcasing"`
	CareerReadiness      int `json:"careerReadiness"`
}

// YearStats is one year of figures.
type YearStats struct {
	EntrepreneursTrained int `json:"entrepreneursTrained"`
	BusinessesLaunched   int `json:"businessesLaunched"`
	JobsCreated          int `json:"jobsCreated"`
}

// Snapshot is a short success story on the impact page.
type Snapshot struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Metric selects a yearly series.
type Metric int

const (
	MetricEntrepreneurs Metric = iota
	MetricBusinesses
	MetricJobs
)

// Years returns the yearly keys in ascending order. Numeric keys sort
// numerically, anything else after them in string order.
func (im Impact) Years() []string {
	years := make([]string, 0, len(im.YearlyData))
	for y := range im.YearlyData {
		years = append(years, y)
	}
	sort.Slice(years, func(i, j int) bool {
		a, errA := strconv.Atoi(years[i])
		b, errB := strconv.Atoi(years[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		}
		return years[i] < years[j]
	})
	return years
}

// Series returns the values of m in Years order.
func (im Impact) Series(m Metric) []int {
	years := im.Years()
	out := make([]int, len(years))
	for i, y := range years {
		s := im.YearlyData[y]
		switch m {
		case MetricEntrepreneurs:
			out[i] = s.EntrepreneursTrained
		case MetricBusinesses:
			out[i] = s.BusinessesLaunched
		case MetricJobs:
			out[i] = s.JobsCreated
		}
	}
	return out
}

// Max returns the largest yearly value across all metrics, at least 1.
func (im Impact) Max() int {
	max := 1
	for _, s := range im.YearlyData {
		for _, v := range []int{s.EntrepreneursTrained, s.BusinessesLaunched, s.JobsCreated} {
			if v > max {
				max = v
			}
		}
	}
	return max
}
