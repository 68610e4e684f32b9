package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"capsection/pkg/logging"

	"github.com/fsnotify/fsnotify"
)

// Static serves a fixed configuration.
type Static struct {
	cfg CapsectionConfig
}

// NewStatic wraps cfg.
func NewStatic(cfg CapsectionConfig) *Static {
	return &Static{cfg: cfg}
}

// Config returns the wrapped configuration.
func (s *Static) Config() CapsectionConfig {
	return s.cfg
}

// Watcher reloads a configuration file whenever it changes on disk and
// publishes the result atomically. A reload that fails keeps the previous
// configuration.
type Watcher struct {
	path     string
	current  atomic.Pointer[CapsectionConfig]
	debounce time.Duration
	load     func(string) (CapsectionConfig, error)
	onChange func(CapsectionConfig)
	reloads  atomic.Int64
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long the watcher waits after the last event before
// reloading.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) { w.debounce = d }
}

// WithOnChange registers a callback run after every successful reload.
func WithOnChange(fn func(CapsectionConfig)) WatcherOption {
	return func(w *Watcher) { w.onChange = fn }
}

// NewWatcher loads path once and returns a watcher seeded with the result.
func NewWatcher(path string, opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path %s: %w", path, err)
	}
	w := &Watcher{
		path:     abs,
		debounce: 200 * time.Millisecond,
		load:     LoadConfigFromPath,
	}
	for _, opt := range opts {
		opt(w)
	}

	cfg, err := w.load(abs)
	if err != nil {
		return nil, err
	}
	w.current.Store(&cfg)
	return w, nil
}

// Config returns the most recently loaded configuration.
func (w *Watcher) Config() CapsectionConfig {
	return *w.current.Load()
}

// Reloads reports how many successful reloads happened since start.
func (w *Watcher) Reloads() int64 {
	return w.reloads.Load()
}

// Run watches the file until ctx is cancelled. The parent directory is
// watched rather than the file so editors that replace the file on save are
// handled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	logging.Info("Watcher", "Watching %s for changes", w.path)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Debug("Watcher", "Stopped watching %s", w.path)
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logging.Warn("Watcher", "File watcher error: %v", err)

		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := w.load(w.path)
	if err != nil {
		logging.Error("Watcher", err, "Keeping previous configuration, reload of %s failed", w.path)
		return
	}
	w.current.Store(&cfg)
	w.reloads.Add(1)
	logging.Info("Watcher", "Reloaded configuration from %s", w.path)
	if w.onChange != nil {
		w.onChange(cfg)
	}
}
