package store

import (
	"context"
	"crypto/sha256"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"

	"baseproject/internal/config"
	"baseproject/pkg/logging"
)

// DefaultDebounce is how long the watcher waits for further writes before
// reloading.
const DefaultDebounce = 250 * time.Millisecond

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithOnChange registers a callback run after an external edit was reloaded.
func WithOnChange(fn func()) WatcherOption {
	return func(w *Watcher) {
		w.onChange = fn
	}
}

// WithWatcherReporter sets the receiver of ExternalChange events.
func WithWatcherReporter(r config.Reporter) WatcherOption {
	return func(w *Watcher) {
		w.reporter = r
	}
}

// Watcher reloads a Store when its document is changed by another process.
//
// The parent directory is watched rather than the file because saves replace
// the file by rename. Writes whose content matches the store's own last
// read or save are ignored.
type Watcher struct {
	mu sync.Mutex

	store    *Store
	debounce time.Duration
	onChange func()
	reporter config.Reporter

	watcher *fsnotify.Watcher
	timer   *time.Timer
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// NewWatcher returns a stopped Watcher for s.
func NewWatcher(s *Store, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		store:    s,
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.reporter = config.ReporterOrLog(w.reporter, "Watcher")
	return w
}

// Start begins watching. An in-memory store has nothing to watch and Start
// returns nil without doing anything.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}
	if !w.store.Persistent() {
		logging.Debug("Watcher", "Store is in memory, not watching")
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dir := filepath.Dir(w.store.Path())
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return &config.IOError{Op: "watch", Path: dir, Err: err}
	}

	w.watcher = fw
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.running = true
	go w.processEvents(ctx, fw, w.stopCh, w.doneCh)

	logging.Info("Watcher", "Watching %s for external changes", w.store.Path())
	return nil
}

// Stop ends watching and cancels a pending reload.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopCh)
	doneCh := w.doneCh
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	fw := w.watcher
	w.mu.Unlock()

	<-doneCh
	_ = fw.Close()
	logging.Debug("Watcher", "Stopped watching %s", w.store.Path())
}

func (w *Watcher) processEvents(ctx context.Context, fw *fsnotify.Watcher, stopCh, doneCh chan struct{}) {
	defer close(doneCh)
	target := filepath.Clean(w.store.Path())
	for {
		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			logging.Error("Watcher", err, "Filesystem watcher error")
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.check)
}

// check reloads the store when the file differs from what the store last saw.
func (w *Watcher) check() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.timer = nil
	w.mu.Unlock()

	path := w.store.Path()
	data, err := afero.ReadFile(w.store.fs, path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logging.Warn("Watcher", "Could not read %s: %v", path, err)
		}
		return
	}
	if w.store.ownsContent(sha256.Sum256(data)) {
		return
	}

	if err := w.store.Reload(); err != nil {
		logging.WarnErr("Watcher", err, "Ignoring external change to %s", path)
		return
	}
	w.reporter.Report(config.NewEvent(config.ReasonExternalChange, "", path, nil))
	if w.onChange != nil {
		w.onChange()
	}
}
