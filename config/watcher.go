package config

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/dartpoet/errors"
	"github.com/teranos/dartpoet/logger"
)

// ChangeCallback is called with the changed paths once the debounce period
// has passed without further events.
type ChangeCallback func(changed []string) error

// Watcher follows input files (config, model files, Go sources) and runs
// callbacks when they change. Directories are watched instead of the files
// themselves so that editors replacing a file by rename are noticed.
type Watcher struct {
	watcher   *fsnotify.Watcher
	files     map[string]bool // watched files
	dirs      map[string]bool // directories whose every file is watched
	debounce  time.Duration
	logger    *zap.SugaredLogger
	mu        sync.RWMutex
	callbacks []ChangeCallback
}

// NewWatcher watches paths. A directory path watches every file inside it.
func NewWatcher(debounce time.Duration, paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	w := &Watcher{
		watcher:  fw,
		files:    map[string]bool{},
		dirs:     map[string]bool{},
		debounce: debounce,
		logger:   logger.ComponentLogger("config.watch"),
	}

	added := map[string]bool{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to resolve %s", p)
		}
		dir := filepath.Dir(abs)
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			w.dirs[abs] = true
			dir = abs
		} else {
			w.files[abs] = true
		}
		if added[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", dir)
		}
		added[dir] = true
	}
	return w, nil
}

// OnChange registers a callback
func (w *Watcher) OnChange(callback ChangeCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Run dispatches debounced change batches until ctx is done, then releases
// the underlying watcher. Callbacks run on the calling goroutine.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending = map[string]bool{}
	)
	stop := func() {
		if timer != nil {
			timer.Stop()
		}
	}
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debugw("Change detected", logger.FieldFile, event.Name, logger.FieldEvent, event.Op.String())
			pending[event.Name] = true
			stop()
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			sort.Strings(changed)
			pending = map[string]bool{}
			w.notify(changed)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnw("Watcher error", logger.FieldError, err)
		}
	}
}

func (w *Watcher) notify(changed []string) {
	w.mu.RLock()
	callbacks := make([]ChangeCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	w.logger.Infow("Inputs changed", logger.FieldCount, len(changed))
	for _, callback := range callbacks {
		// a failing callback does not stop the rest
		if err := callback(changed); err != nil {
			w.logger.Warnw("Change callback failed", logger.FieldError, err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	if isEditorTemp(event.Name) {
		return false
	}
	name := filepath.Clean(event.Name)
	return w.files[name] || w.dirs[filepath.Dir(name)]
}

// isEditorTemp reports swap and backup files written by editors.
func isEditorTemp(path string) bool {
	base := filepath.Base(path)
	switch {
	case strings.HasPrefix(base, ".#"),
		strings.HasSuffix(base, "~"),
		strings.HasSuffix(base, ".swp"),
		strings.HasSuffix(base, ".swx"),
		strings.HasSuffix(base, ".tmp"),
		base == "4913":
		return true
	}
	return false
}
