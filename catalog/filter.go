package catalog

// AllLabel is how the All filter is shown to readers.
const AllLabel = "All"

// Filter selects either every post or the posts of one category.
// The zero value is a filter on the empty category name; use All for
// the unfiltered view.
type Filter struct {
	all  bool
	name string
}

// All matches every post. It never equals Category("All").
var All = Filter{all: true}

// Category matches posts whose category is exactly name.
func Category(name string) Filter {
	return Filter{name: name}
}

// IsAll reports whether f is the All filter.
func (f Filter) IsAll() bool {
	return f.all
}

// Name returns the category name, or "" for All.
func (f Filter) Name() string {
	return f.name
}

// Label returns the display text of the filter.
func (f Filter) Label() string {
	if f.all {
		return AllLabel
	}
	return f.name
}

// Equal reports whether f and g select the same posts.
func (f Filter) Equal(g Filter) bool {
	return f == g
}
