// Package watch monitors a directory for design request files and triggers
// a handler when one is created or modified.
package watch

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	apperrors "github.com/canopyforge/canopyforge/pkg/errors"

	"github.com/canopyforge/canopyforge/internal/infrastructure/monitoring/logging"
	"github.com/canopyforge/canopyforge/internal/infrastructure/monitoring/prometheus"
)

// Handler is invoked with the path of a changed design file after the
// debounce window has elapsed. The returned error only labels the event
// counter; the watcher keeps running either way.
type Handler func(path string) error

// Watcher debounces filesystem events on YAML files in a single directory.
// Editors tend to emit several write events per save; events for the same
// path within the debounce window collapse into one handler call.
type Watcher struct {
	dir      string
	debounce time.Duration
	handler  Handler
	logger   logging.Logger
	events   prometheus.CounterVec

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewWatcher creates a Watcher for dir. A non-positive debounce disables
// coalescing and fires the handler on every event. events counts handled
// files by result and may be nil.
func NewWatcher(dir string, debounce time.Duration, handler Handler, logger logging.Logger, events prometheus.CounterVec) (*Watcher, error) {
	if dir == "" {
		return nil, apperrors.InvalidParameter("watch directory must not be empty")
	}
	if handler == nil {
		return nil, apperrors.InvalidParameter("watch handler must not be nil")
	}
	return &Watcher{
		dir:      dir,
		debounce: debounce,
		handler:  handler,
		logger:   logger.Named("watch"),
		events:   events,
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Run watches the directory until ctx is cancelled. It blocks.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "creating filesystem watcher")
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeFileReadFailed, "watching directory")
	}
	w.logger.Info("watching for design files",
		logging.String("dir", w.dir),
		logging.Duration("debounce", w.debounce))

	for {
		select {
		case <-ctx.Done():
			w.drainTimers()
			return ctx.Err()
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.onEvent(event)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", logging.Err(err))
		}
	}
}

func (w *Watcher) onEvent(event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return
	}
	if !isDesignFile(event.Name) {
		return
	}
	w.logger.Debug("file event", logging.String("path", event.Name), logging.String("op", event.Op.String()))

	if w.debounce <= 0 {
		w.fire(event.Name)
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if timer, ok := w.timers[event.Name]; ok {
		timer.Reset(w.debounce)
		return
	}
	path := event.Name
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()
		w.fire(path)
	})
}

func (w *Watcher) fire(path string) {
	result := "success"
	if err := w.handler(path); err != nil {
		result = "error"
	}
	if w.events != nil {
		w.events.WithLabelValues(result).Inc()
	}
}

func (w *Watcher) drainTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, timer := range w.timers {
		timer.Stop()
		delete(w.timers, path)
	}
}

func isDesignFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
