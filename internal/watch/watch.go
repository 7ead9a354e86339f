// Package watch re-runs work when source files change.
//
// Events are debounced over the whole tree: a burst of saves produces a single
// callback with every changed path.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Options configures a Watcher.
type Options struct {
	Debounce   time.Duration          // quiet period before the callback runs (default 200ms)
	Extensions []string               // file suffixes of interest; empty means all
	IgnoreDirs []string               // directory base names never watched
	Match      func(path string) bool // optional content filter, called after the suffix check; not used for removals
}

// DefaultIgnoreDirs are skipped unless Options.IgnoreDirs is set.
var DefaultIgnoreDirs = []string{"node_modules", ".git", "dist", "build", ".cache"}

// Watcher watches directory trees and reports changed files.
type Watcher struct {
	fs       *fsnotify.Watcher
	opts     Options
	onChange func(paths []string)
	logger   zerolog.Logger

	mu      sync.Mutex
	pending map[string]bool
	timer   *time.Timer
	stopped bool
	done    chan struct{}
}

// New creates a watcher calling onChange with the sorted changed paths.
func New(opts Options, onChange func(paths []string), logger zerolog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Errorf("create file watcher: %w", err)
	}
	if opts.Debounce <= 0 {
		opts.Debounce = 200 * time.Millisecond
	}
	if opts.IgnoreDirs == nil {
		opts.IgnoreDirs = DefaultIgnoreDirs
	}

	return &Watcher{
		fs:       fsw,
		opts:     opts,
		onChange: onChange,
		logger:   logger,
		pending:  make(map[string]bool),
		done:     make(chan struct{}),
	}, nil
}

// Start watches every directory below roots and processes events in the background.
// Missing roots are skipped.
func (w *Watcher) Start(roots ...string) error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return errors.New("watcher already stopped")
	}
	w.mu.Unlock()

	for _, root := range roots {
		if _, err := os.Stat(root); err != nil {
			w.logger.Debug().Str("root", root).Msg("watch root missing, skipped")
			continue
		}
		if err := w.addTree(root); err != nil {
			return err
		}
	}

	go w.loop()
	return nil
}

// Run starts the watcher and blocks until ctx is done.
func (w *Watcher) Run(ctx context.Context, roots ...string) error {
	if err := w.Start(roots...); err != nil {
		return err
	}
	<-ctx.Done()
	return w.Stop()
}

// Stop ends watching. Pending changes are dropped. Safe to call more than once.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.pending = make(map[string]bool)

	return w.fs.Close()
}

func (w *Watcher) addTree(root string) error {
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if path != root && w.ignoredDir(path) {
			return filepath.SkipDir
		}
		if err := w.fs.Add(path); err != nil {
			w.logger.Warn().Err(err).Str("path", path).Msg("failed to watch directory")
		}
		return nil
	})
	if err != nil {
		return errors.Errorf("watch %s: %w", root, err)
	}
	w.logger.Debug().Str("root", root).Msg("watching")
	return nil
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Error().Err(err).Msg("file watcher error")
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	path := event.Name

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if !w.ignoredDir(path) {
				_ = w.addTree(path)
			}
			return
		}
	}

	switch {
	case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
		// Content is gone, so only the suffix can be checked. A path without
		// one may have been a directory.
		if filepath.Ext(path) != "" && !w.wantedExt(path) {
			return
		}
	case event.Has(fsnotify.Write) || event.Has(fsnotify.Create):
		if !w.interesting(path) {
			return
		}
	default:
		return
	}

	w.logger.Trace().Str("op", event.Op.String()).Str("path", path).Msg("file event")
	w.schedule(path)
}

func (w *Watcher) interesting(path string) bool {
	if !w.wantedExt(path) {
		return false
	}
	return w.opts.Match == nil || w.opts.Match(path)
}

func (w *Watcher) wantedExt(path string) bool {
	return len(w.opts.Extensions) == 0 || slices.Contains(w.opts.Extensions, filepath.Ext(path))
}

func (w *Watcher) ignoredDir(path string) bool {
	return slices.Contains(w.opts.IgnoreDirs, filepath.Base(path))
}

// schedule restarts the debounce timer with path added to the pending set
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	w.pending[path] = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.opts.Debounce, w.flush)
}

func (w *Watcher) flush() {
	w.mu.Lock()
	if w.stopped || len(w.pending) == 0 {
		w.mu.Unlock()
		return
	}
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]bool)
	w.mu.Unlock()

	sort.Strings(paths)
	w.onChange(paths)
}
