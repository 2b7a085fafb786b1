// File: watch.go
// Title: Time Zone Change Watching
// Description: Change counters that drive recomputation of the current zone,
//              including an fsnotify watcher on the localtime symlink.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package zone

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	chronoerr "github.com/msto63/chrono/core/error"
	"github.com/msto63/chrono/core/log"
)

// Counter is a ChangeCounter bumped by hand.
type Counter struct {
	gen atomic.Uint64
}

// Generation implements ChangeCounter.
func (c *Counter) Generation() uint64 { return c.gen.Load() }

// Notify signals a zone configuration change.
func (c *Counter) Notify() { c.gen.Add(1) }

// Watcher bumps its generation whenever the watched localtime file is
// created, written, removed or replaced.
type Watcher struct {
	Counter

	path    string
	logger  *log.Logger
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewWatcher creates a watcher for path, usually DefaultLocaltimePath.
func NewWatcher(path string, logger *log.Logger) *Watcher {
	if logger == nil {
		logger = log.GetDefault().WithName("zone")
	}
	return &Watcher{path: path, logger: logger}
}

// Start begins watching. The parent directory is watched so that replacing
// the symlink is seen. Watching stops when ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return chronoerr.Wrap(err, "failed to create zone watcher").
			WithCode(chronoerr.CodeInternal).
			WithOperation("zone.Watcher.Start")
	}
	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return chronoerr.Wrap(err, "failed to watch zone directory").
			WithCode(chronoerr.CodeNotFound).
			WithOperation("zone.Watcher.Start").
			WithDetail("directory", dir)
	}

	w.watcher = watcher
	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	go w.watchLoop(ctx, w.stopCh, w.doneCh)

	w.logger.Debug("Watching time zone changes", log.String("path", w.path))
	return nil
}

func (w *Watcher) watchLoop(ctx context.Context, stopCh, doneCh chan struct{}) {
	watcher := w.watcher
	defer func() {
		watcher.Close()
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(doneCh)
	}()

	name := filepath.Clean(w.path)
	for {
		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				w.Notify()
				w.logger.Info("Time zone configuration changed",
					log.String("path", event.Name),
					log.String("op", event.Op.String()))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.ErrorWithErr("Zone watcher error", err)
		}
	}
}

// Stop ends watching and waits for the loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	stopCh, doneCh := w.stopCh, w.doneCh
	w.running = false
	w.mu.Unlock()

	close(stopCh)
	<-doneCh
}

// IsRunning reports whether the watcher is active.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}
