package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce groups the burst of events an editor produces on save.
const debounce = 200 * time.Millisecond

// Watch reloads the Source whenever a file in its directory (or the
// stories subdirectory) changes. The returned stop func closes the watcher
// and waits for the reload goroutine to exit.
func (s *Source) Watch(ctx context.Context, logger Logger) (stop func(), err error) {
	if s.dir == "" {
		return nil, errors.New("content: cannot watch a static source")
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(s.dir); err != nil {
		w.Close()
		return nil, err
	}
	stories := filepath.Join(s.dir, StoriesDir)
	if fi, err := os.Stat(stories); err == nil && fi.IsDir() {
		if err := w.Add(stories); err != nil {
			w.Close()
			return nil, err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		var timer *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
					!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					timer.Reset(debounce)
				}
				fire = timer.C
			case <-fire:
				fire = nil
				if err := s.Reload(); err != nil {
					logger.Errorf("content reload failed, keeping previous snapshot: %v", err)
					continue
				}
				logger.Infof("content reloaded from %s (%d stories)", s.dir, s.Site().Catalog.Len())
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Errorf("content watcher: %v", err)
			}
		}
	}()

	return func() {
		cancel()
		<-done
		w.Close()
	}, nil
}
