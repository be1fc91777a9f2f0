// Package watch re-runs the rewrite pass when watched source files change.
package watch

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/teranos/askit/errors"
	"github.com/teranos/askit/logger"
)

// Callback runs one rewrite pass. Its error is logged, not fatal; the watcher
// keeps running.
type Callback func() error

// Watcher monitors directories for Go source changes and triggers a debounced
// rewrite pass.
type Watcher struct {
	watcher        *fsnotify.Watcher
	callback       Callback
	subdir         string
	mu             sync.Mutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
	ownWrites      int // pending writes by the pass itself, to prevent rewrite loops
	ownWritesMu    sync.Mutex
}

// New creates a watcher over the given directories. subdir names the
// generated-output directory; events under it are ignored to prevent rewrite
// loops, since each pass writes sidecars there.
func New(dirs []string, subdir string, callback Callback) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating fsnotify watcher")
	}

	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, errors.Wrapf(err, "watching directory %s", dir)
		}
	}

	return &Watcher{
		watcher:        fsw,
		callback:       callback,
		subdir:         subdir,
		debouncePeriod: 500 * time.Millisecond,
	}, nil
}

// MarkOwnWrite marks the next write event as coming from the pass itself.
// Call once per file written back, before the write.
func (w *Watcher) MarkOwnWrite() {
	w.ownWritesMu.Lock()
	defer w.ownWritesMu.Unlock()
	w.ownWrites++
}

// checkOwnWrite consumes one pending own-write mark.
func (w *Watcher) checkOwnWrite() bool {
	w.ownWritesMu.Lock()
	defer w.ownWritesMu.Unlock()
	if w.ownWrites > 0 {
		w.ownWrites--
		return true
	}
	return false
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	go w.watchLoop()
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write != fsnotify.Write && event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !w.isSourceEvent(event.Name) {
				continue
			}
			if w.checkOwnWrite() {
				logger.Logger.Debugw("ignoring own write", "file", event.Name)
				continue
			}

			logger.Logger.Infow("source change detected",
				"file", event.Name,
				"op", event.Op.String())
			w.schedulePass()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Logger.Warnw("watcher error", "error", err)
		}
	}
}

// isSourceEvent reports whether the event names a Go source file outside the
// generated-output directory.
func (w *Watcher) isSourceEvent(path string) bool {
	if filepath.Ext(path) != ".go" {
		return false
	}
	dir := filepath.Base(filepath.Dir(path))
	if dir == w.subdir {
		return false
	}
	return !strings.HasPrefix(filepath.Base(path), ".")
}

// schedulePass debounces rapid file changes before running the callback.
func (w *Watcher) schedulePass() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		if err := w.callback(); err != nil {
			logger.Logger.Errorw("rewrite pass failed", "error", err)
		}
	})
}

// Stop stops watching.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}
