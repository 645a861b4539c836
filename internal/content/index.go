package content

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/wakunguma/site/internal/metrics"
)

// reloadDelay coalesces the burst of events an editor produces on save.
const reloadDelay = 200 * time.Millisecond

// Index holds the current set of published posts for a content directory.
type Index struct {
	dir string

	mu    sync.RWMutex
	posts []Post
}

// NewIndex loads dir and returns an Index over it.
func NewIndex(dir string) (*Index, error) {
	idx := &Index{dir: dir}
	if err := idx.Reload(); err != nil {
		return nil, err
	}
	return idx, nil
}

// Posts returns the published posts, newest first. Callers must not modify
// the returned slice.
func (i *Index) Posts() []Post {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.posts
}

// Reload re-reads the content directory. On error the previous posts are kept.
func (i *Index) Reload() error {
	posts, err := Load(i.dir)
	if err != nil {
		metrics.ContentReloadsTotal.WithLabelValues("error").Inc()
		return err
	}
	i.mu.Lock()
	i.posts = posts
	i.mu.Unlock()

	metrics.ContentReloadsTotal.WithLabelValues("ok").Inc()
	metrics.PostsTotal.Set(float64(len(posts)))
	return nil
}

// Watch reloads the index whenever files in the content directory change.
// It blocks until ctx is cancelled.
func (i *Index) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	if err := w.Add(i.dir); err != nil {
		return fmt.Errorf("watch %s: %w", i.dir, err)
	}

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !isPostFile(ev.Name) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(reloadDelay)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("content: watch %s: %v", i.dir, err)
		case <-pending:
			pending = nil
			if err := i.Reload(); err != nil {
				log.Printf("content: reload %s: %v", i.dir, err)
			}
		}
	}
}
