// Package watcher triggers a callback when a watched markdown file
// changes. It powers `docforge convert --watch`, where every change
// produces a fresh remote document rather than mutating an existing one.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/docforge-cli/internal/logger"
)

// DefaultDebounce coalesces the event bursts editors emit on save.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches a single file for changes.
type Watcher struct {
	// Debounce is the quiet period required before the callback fires.
	Debounce time.Duration

	path string
	fsw  *fsnotify.Watcher
}

// New creates a watcher for path. The parent directory is watched
// rather than the file itself: editors commonly replace files via
// rename, which would otherwise drop the watch.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close() //nolint:errcheck
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		Debounce: DefaultDebounce,
		path:     abs,
		fsw:      fsw,
	}, nil
}

// Watch blocks, invoking onChange after each debounced change to the
// watched file. A failing callback is logged and watching continues.
// Watch returns when the context is cancelled or the watcher is closed.
func (w *Watcher) Watch(ctx context.Context, onChange func(context.Context) error) error {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.Debounce)
				fire = timer.C
			} else {
				timer.Reset(w.Debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case <-fire:
			timer = nil
			fire = nil
			if err := onChange(ctx); err != nil {
				logger.Warn("change handler failed: %v", err)
			}
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
