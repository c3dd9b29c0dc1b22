package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/eringen/dkssite/catalog"
)

// Fixture file names inside the content directory.
const (
	PostsFile        = "posts.json"
	ProgramsFile     = "programs.json"
	ImpactFile       = "impact.json"
	PartnersFile     = "partners.json"
	TeamFile         = "team.json"
	TestimonialsFile = "testimonials.json"
	StoriesDir       = "stories"
)

// Load reads every fixture from fsys. posts.json is required; the other
// files are optional and load as empty collections when absent.
func Load(fsys fs.FS) (*Site, error) {
	var posts []catalog.Post
	if err := readJSON(fsys, PostsFile, &posts, true); err != nil {
		return nil, err
	}
	stories, err := loadStories(fsys)
	if err != nil {
		return nil, err
	}
	posts = append(posts, stories...)

	cat, err := catalog.New(posts)
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}

	site := &Site{Catalog: cat}
	if err := readJSON(fsys, ProgramsFile, &site.Programs, false); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, ImpactFile, &site.Impact, false); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, PartnersFile, &site.Partners, false); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, TeamFile, &site.Team, false); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, TestimonialsFile, &site.Testimonials, false); err != nil {
		return nil, err
	}
	return site, nil
}

func readJSON(fsys fs.FS, name string, v any, required bool) error {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("content: read %s: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("content: parse %s: %w", name, err)
	}
	return nil
}
