package content

import (
	"os"
	"sync"
	"time"
)

// Logger is the subset of echo.Logger used by this package.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Source holds the current Site snapshot for a content directory.
// Reload swaps the snapshot; readers never see a partially loaded Site.
type Source struct {
	mu     sync.RWMutex
	dir    string
	site   *Site
	loaded time.Time
}

// NewSource loads dir and returns a Source serving it.
func NewSource(dir string) (*Source, error) {
	s := &Source{dir: dir}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// StaticSource wraps an already loaded Site. Reload is a no-op for it.
func StaticSource(site *Site) *Source {
	return &Source{site: site, loaded: time.Now()}
}

// Dir returns the content directory, or "" for a static source.
func (s *Source) Dir() string {
	return s.dir
}

// Site returns the current snapshot.
func (s *Source) Site() *Site {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.site
}

// LoadedAt returns when the current snapshot was loaded.
func (s *Source) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Reload reads the directory again. On error the previous snapshot is kept.
func (s *Source) Reload() error {
	if s.dir == "" {
		return nil
	}
	site, err := Load(os.DirFS(s.dir))
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.site = site
	s.loaded = time.Now()
	s.mu.Unlock()
	return nil
}
