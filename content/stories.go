package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"

	"github.com/eringen/dkssite/catalog"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
	),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	// Story bodies are trusted the same way posts.json content is.
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

type frontMatter struct {
	Slug     string `yaml:"slug"`
	Title    string `yaml:"title"`
	Excerpt  string `yaml:"excerpt"`
	Image    string `yaml:"image"`
	Date     string `yaml:"date"`
	Category string `yaml:"category"`
	Author   string `yaml:"author"`
}

// loadStories reads stories/*.md in file name order.
func loadStories(fsys fs.FS) ([]catalog.Post, error) {
	names, err := fs.Glob(fsys, path.Join(StoriesDir, "*.md"))
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	posts := make([]catalog.Post, 0, len(names))
	for _, name := range names {
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("content: read %s: %w", name, err)
		}
		p, err := ParseStory(strings.TrimSuffix(path.Base(name), ".md"), src)
		if err != nil {
			return nil, fmt.Errorf("content: %s: %w", name, err)
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// ParseStory turns a Markdown document with YAML front matter into a Post.
// defaultSlug is used when the front matter has no slug.
func ParseStory(defaultSlug string, src []byte) (catalog.Post, error) {
	head, body, err := splitFrontMatter(src)
	if err != nil {
		return catalog.Post{}, err
	}
	var fm frontMatter
	if err := yaml.Unmarshal(head, &fm); err != nil {
		return catalog.Post{}, fmt.Errorf("front matter: %w", err)
	}
	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return catalog.Post{}, fmt.Errorf("markdown: %w", err)
	}
	slug := strings.TrimSpace(fm.Slug)
	if slug == "" {
		slug = defaultSlug
	}
	return catalog.Post{
		Slug:     slug,
		Title:    fm.Title,
		Excerpt:  fm.Excerpt,
		Content:  buf.String(),
		Image:    fm.Image,
		Date:     fm.Date,
		Category: fm.Category,
		Author:   fm.Author,
	}, nil
}

var errNoFrontMatter = errors.New("missing front matter")

func splitFrontMatter(src []byte) (head, body []byte, err error) {
	src = bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(src, []byte("---\n")) {
		return nil, nil, errNoFrontMatter
	}
	rest := src[len("---\n"):]
	if bytes.HasPrefix(rest, []byte("---")) {
		rest = append([]byte("\n"), rest...)
	}
	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return nil, nil, errors.New("unterminated front matter")
	}
	head = rest[:end]
	body = rest[end+len("\n---"):]
	// drop the remainder of the closing delimiter line
	if i := bytes.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		body = nil
	}
	return head, body, nil
}
