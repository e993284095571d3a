package config

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the configuration file whenever it changes on disk,
// debouncing bursts of filesystem events into a single reload.
type Watcher struct {
	watcher    *fsnotify.Watcher
	path       string
	getenv     func(string) string
	overrides  Overrides
	stderr     io.Writer
	mu         sync.RWMutex
	current    *Config
	lastChange time.Time
	onReload   func(*Config)
}

// NewWatcher creates a Watcher over the config file at path. The initial
// load happens synchronously so Current() is usable immediately.
func NewWatcher(path string, getenv func(string) string, overrides Overrides, stderr io.Writer) (*Watcher, error) {
	cfg, err := Load(path, getenv, overrides)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}

	w := &Watcher{
		watcher:   fsWatcher,
		path:      path,
		getenv:    getenv,
		overrides: overrides,
		stderr:    stderr,
		current:   cfg,
	}
	return w, nil
}

// Current returns the most recently loaded configuration.
func (w *Watcher) Current() *Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// OnReload registers a callback invoked with the new config after a
// successful reload. Only one callback is kept.
func (w *Watcher) OnReload(fn func(*Config)) {
	w.onReload = fn
}

// Start begins watching the config file's directory for changes.
func (w *Watcher) Start(ctx context.Context) error {
	if w.path == "" {
		return nil
	}
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch config dir %s: %w", dir, err)
	}
	go w.eventLoop(ctx)
	return nil
}

func (w *Watcher) eventLoop(ctx context.Context) {
	const debounce = 100 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			w.mu.Lock()
			if time.Since(w.lastChange) < debounce {
				w.mu.Unlock()
				continue
			}
			w.lastChange = time.Now()
			w.mu.Unlock()

			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(w.stderr, "config watch error: %v\n", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path, w.getenv, w.overrides)
	if err != nil {
		fmt.Fprintf(w.stderr, "config reload failed, keeping previous config: %v\n", err)
		return
	}

	w.mu.Lock()
	w.current = cfg
	w.mu.Unlock()

	if w.onReload != nil {
		w.onReload(cfg)
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
