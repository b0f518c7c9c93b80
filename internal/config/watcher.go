package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler receives the re-loaded settings after the config file changes.
type Handler func(Settings)

// ErrorHandler receives reload failures. The previous settings stay in
// effect when a reload fails.
type ErrorHandler func(error)

// Watcher re-loads one settings file when it changes on disk. The file's
// directory is watched rather than the file itself, so editors that
// replace the file on save (rename over) keep working, and the file may
// not exist yet when watching starts.
type Watcher struct {
	mu       sync.Mutex
	path     string
	fsw      *fsnotify.Watcher
	onChange Handler
	onError  ErrorHandler
	debounce time.Duration
	pending  *time.Timer
	done     chan struct{}
	closed   bool
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long to wait after the last write before
// re-loading. Editors often emit several events per save.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithErrorHandler sets the reload failure callback.
func WithErrorHandler(fn ErrorHandler) WatcherOption {
	return func(w *Watcher) { w.onError = fn }
}

// NewWatcher watches the settings file at path and calls onChange with the
// re-loaded settings after each change.
func NewWatcher(path string, onChange Handler, opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		fsw:      fsw,
		onChange: onChange,
		debounce: 100 * time.Millisecond,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	go w.loop()
	return w, nil
}

// Close stops watching. Pending reloads are cancelled.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}
	close(w.done)
	w.mu.Unlock()

	return w.fsw.Close()
}

// loop dispatches fsnotify events for the watched file.
func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.reportError(err)
		}
	}
}

// scheduleReload resets the debounce timer.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(w.debounce, w.reload)
}

// reload re-reads the file and pushes the new settings.
func (w *Watcher) reload() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.pending = nil
	path := w.path
	onChange := w.onChange
	w.mu.Unlock()

	s, err := Load(path)
	if err != nil {
		w.reportError(err)
		return
	}
	if onChange != nil {
		onChange(s)
	}
}

func (w *Watcher) reportError(err error) {
	w.mu.Lock()
	onError := w.onError
	w.mu.Unlock()
	if onError != nil {
		onError(err)
	}
}
