// Package watch rebuilds a site when its source tree changes.
//
// Events are debounced, and rebuilds never overlap: a change seen while a
// build runs queues exactly one more build, started after the running one
// returns.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ErrWatch wraps failures to set up the file system watcher.
var ErrWatch = errors.New("watching source tree")

// DefaultDebounce is how long the tree must be quiet before a rebuild.
const DefaultDebounce = 300 * time.Millisecond

// BuildFunc runs one build. Its error is logged; watching continues.
type BuildFunc func(ctx context.Context) error

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(w *Watcher) {
		if log != nil {
			w.log = log
		}
	}
}

// WithIgnore skips events under the given paths, typically the output
// directory when it sits inside the source tree.
func WithIgnore(paths ...string) Option {
	return func(w *Watcher) {
		for _, p := range paths {
			if abs, err := filepath.Abs(p); err == nil {
				w.ignore = append(w.ignore, abs)
			}
		}
	}
}

// WithDebounce sets the quiet period before a rebuild.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// Watcher watches a source directory and calls a BuildFunc on changes.
type Watcher struct {
	dir      string
	build    BuildFunc
	log      *zap.Logger
	ignore   []string
	debounce time.Duration
}

// New creates a Watcher for dir.
func New(dir string, build BuildFunc, opts ...Option) *Watcher {
	w := &Watcher{
		dir:      dir,
		build:    build,
		log:      zap.NewNop(),
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches until ctx is done. It does not build up front; callers run
// the first build themselves. The returned error is non-nil only when the
// watcher cannot be started.
func (w *Watcher) Run(ctx context.Context) error {
	dir, err := filepath.Abs(w.dir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWatch, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWatch, err)
	}
	defer func() { _ = fw.Close() }()

	if err := w.addRecursive(fw, dir); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	requests := make(chan struct{}, 1)
	d := newDebouncer(w.debounce, func() { request(requests) })

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.rebuildLoop(ctx, requests)
	}()
	defer func() {
		d.stop()
		cancel()
		<-done
	}()

	w.log.Info("watching for changes", zap.String("dir", dir))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handle(fw, ev, d.trigger)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watcher error", zap.Error(err))
		}
	}
}

// rebuildLoop runs one build per request until ctx is done. requests holds
// at most one queued request, so changes during a build collapse into a
// single follow-up build.
func (w *Watcher) rebuildLoop(ctx context.Context, requests <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-requests:
			w.log.Info("change detected, rebuilding")
			if err := w.build(ctx); err != nil {
				if ctx.Err() != nil {
					return
				}
				w.log.Warn("rebuild failed, previous output kept", zap.Error(err))
			}
		}
	}
}

// request queues a rebuild unless one is already queued.
func request(requests chan<- struct{}) {
	select {
	case requests <- struct{}{}:
	default:
	}
}

func (w *Watcher) handle(fw *fsnotify.Watcher, ev fsnotify.Event, trigger func()) {
	if w.ignored(ev.Name) {
		return
	}
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.addRecursive(fw, ev.Name); err != nil {
				w.log.Warn("watching new directory", zap.String("dir", ev.Name), zap.Error(err))
			}
		}
	}
	w.log.Debug("file change", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
	trigger()
}

// addRecursive registers dir and every directory below it, skipping hidden
// and ignored ones.
func (w *Watcher) addRecursive(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return fmt.Errorf("%w: %v", ErrWatch, err)
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && w.ignored(path) {
			return filepath.SkipDir
		}
		if err := fw.Add(path); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWatch, path, err)
		}
		return nil
	})
}
