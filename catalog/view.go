package catalog

// DefaultPageSize is used when a View is created with a non-positive page size.
const DefaultPageSize = 6

// State is the browsing state owned by a View.
type State struct {
	Filter Filter
	Page   int
}

// Page is one computed listing page.
type Page struct {
	Filter     Filter
	Filtered   []Post // every post matching Filter
	Items      []Post // the posts on this page
	Number     int    // 1-based
	TotalPages int    // at least 1
	TotalItems int
	PageSize   int
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a next page exists.
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// Empty reports whether the filter matched nothing.
func (p Page) Empty() bool { return p.TotalItems == 0 }

// Numbers returns 1..TotalPages for pagination links.
func (p Page) Numbers() []int {
	out := make([]int, p.TotalPages)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// View is the story listing controller: a selected filter and a current
// page over a Catalog. Every read recomputes from the catalog.
// A View is not safe for concurrent use.
type View struct {
	catalog  *Catalog
	pageSize int
	state    State
}

// NewView returns a View showing page 1 of All.
func NewView(c *Catalog, pageSize int) *View {
	if c == nil {
		c = Empty()
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &View{
		catalog:  c,
		pageSize: pageSize,
		state:    State{Filter: All, Page: 1},
	}
}

// PageSize returns the configured page size.
func (v *View) PageSize() int {
	return v.pageSize
}

// State returns the current filter and page.
func (v *View) State() State {
	return v.state
}

// Restore replaces the state, clamping the page to the filtered set.
func (v *View) Restore(s State) {
	v.state.Filter = s.Filter
	v.state.Page = v.clamp(s.Page, len(v.catalog.Filter(s.Filter)))
}

// SelectCategory changes the filter and returns to page 1.
// A category with no posts yields an empty page.
func (v *View) SelectCategory(f Filter) {
	v.state.Filter = f
	v.state.Page = 1
}

// GoToPage moves to page n, clamped into [1, total pages].
func (v *View) GoToPage(n int) {
	v.state.Page = v.clamp(n, len(v.catalog.Filter(v.state.Filter)))
}

// NextPage advances one page, stopping at the last.
func (v *View) NextPage() {
	v.GoToPage(v.state.Page + 1)
}

// PrevPage goes back one page, stopping at the first.
func (v *View) PrevPage() {
	v.GoToPage(v.state.Page - 1)
}

// Current computes the page for the current state.
func (v *View) Current() Page {
	filtered := v.catalog.Filter(v.state.Filter)
	total := totalPages(len(filtered), v.pageSize)
	n := v.clamp(v.state.Page, len(filtered))

	start := (n - 1) * v.pageSize
	end := start + v.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	var items []Post
	if start < end {
		items = filtered[start:end:end]
	}
	return Page{
		Filter:     v.state.Filter,
		Filtered:   filtered,
		Items:      items,
		Number:     n,
		TotalPages: total,
		TotalItems: len(filtered),
		PageSize:   v.pageSize,
	}
}

func (v *View) clamp(n, count int) int {
	total := totalPages(count, v.pageSize)
	if n < 1 {
		return 1
	}
	if n > total {
		return total
	}
	return n
}

func totalPages(count, size int) int {
	if count == 0 {
		return 1
	}
	return (count + size - 1) / size
}
