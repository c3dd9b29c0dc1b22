// Package catalog holds the immutable story collection and the per-session
// view state used to browse it by category and page.
package catalog

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrDuplicateSlug is returned by New when two posts share a slug.
	ErrDuplicateSlug = errors.New("catalog: duplicate slug")
	// ErrEmptySlug is returned by New when a post has no slug.
	ErrEmptySlug = errors.New("catalog: empty slug")
)

// Post is one story. Content is trusted HTML and is rendered verbatim.
type Post struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Image    string `json:"image"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Author   string `json:"author"`
}

// Link returns the site-relative URL of the story page.
func (p Post) Link() string {
	return "/stories/" + p.Slug + "/"
}

// Catalog is an ordered, read-only collection of posts.
type Catalog struct {
	posts  []Post
	bySlug map[string]int
}

// New copies posts into a Catalog, preserving their order.
func New(posts []Post) (*Catalog, error) {
	c := &Catalog{
		posts:  slices.Clone(posts),
		bySlug: make(map[string]int, len(posts)),
	}
	for i, p := range c.posts {
		if p.Slug == "" {
			return nil, fmt.Errorf("%w (post %d, %q)", ErrEmptySlug, i, p.Title)
		}
		if _, ok := c.bySlug[p.Slug]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSlug, p.Slug)
		}
		c.bySlug[p.Slug] = i
	}
	return c, nil
}

// Empty returns a catalog with no posts.
func Empty() *Catalog {
	return &Catalog{bySlug: map[string]int{}}
}

// Len returns the number of posts.
func (c *Catalog) Len() int {
	return len(c.posts)
}

// Posts returns every post in catalog order.
func (c *Catalog) Posts() []Post {
	return slices.Clone(c.posts)
}

// Names returns the distinct categories in first-occurrence order.
func (c *Catalog) Names() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, p := range c.posts {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		names = append(names, p.Category)
	}
	return names
}

// Categories returns All followed by every distinct category.
func (c *Catalog) Categories() []Filter {
	names := c.Names()
	out := make([]Filter, 0, len(names)+1)
	out = append(out, All)
	for _, n := range names {
		out = append(out, Category(n))
	}
	return out
}

// Filter returns the posts matching f in catalog order.
func (c *Catalog) Filter(f Filter) []Post {
	if f.IsAll() {
		return c.Posts()
	}
	var out []Post
	for _, p := range c.posts {
		if p.Category == f.name {
			out = append(out, p)
		}
	}
	return out
}

// ByCategory is Filter(Category(name)).
func (c *Catalog) ByCategory(name string) []Post {
	return c.Filter(Category(name))
}

// FindBySlug looks up a post. The boolean is false when no post has the slug.
func (c *Catalog) FindBySlug(slug string) (Post, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Post{}, false
	}
	return c.posts[i], true
}

// Related returns up to limit other posts in the same category as p.
func (c *Catalog) Related(p Post, limit int) []Post {
	if limit <= 0 {
		return nil
	}
	var out []Post
	for _, q := range c.posts {
		if q.Slug == p.Slug || q.Category != p.Category {
			continue
		}
		out = append(out, q)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Recent returns the first n posts in catalog order.
func (c *Catalog) Recent(n int) []Post {
	if n <= 0 {
		return nil
	}
	if n > len(c.posts) {
		n = len(c.posts)
	}
	return slices.Clone(c.posts[:n])
}
