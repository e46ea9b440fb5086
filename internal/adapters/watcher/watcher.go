// Package watcher implements file system watching for the live check view.
package watcher

import (
	"context"
	"iter"
	"path/filepath"
	"unique"

	"github.com/fsnotify/fsnotify"
	"github.com/reqwell/reqcheck/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher watches a fixed set of manifest files using fsnotify. It watches
// the parent directories rather than the files themselves, so editors that
// replace files on save keep triggering events.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	watched   map[unique.Handle[string]]struct{}
	events    chan ports.WatchEvent
}

// NewWatcher creates a new file system watcher.
func NewWatcher(log ports.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		logger:    log,
		watched:   make(map[unique.Handle[string]]struct{}),
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start begins watching the given files.
func (w *Watcher) Start(ctx context.Context, paths []string) error {
	dirs := make(map[string]struct{})
	for _, path := range paths {
		clean := filepath.Clean(path)
		w.watched[unique.Make(clean)] = struct{}{}
		dirs[filepath.Dir(clean)] = struct{}{}
	}

	for dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			return err
		}
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of file system events.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent := w.convertEvent(event)
			if watchEvent == nil {
				continue
			}

			select {
			case w.events <- *watchEvent:
			case <-ctx.Done():
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error: " + err.Error())
		}
	}
}

// convertEvent maps an fsnotify event onto the watched file set, dropping
// events for unrelated files in the same directories.
func (w *Watcher) convertEvent(event fsnotify.Event) *ports.WatchEvent {
	path := filepath.Clean(event.Name)
	if _, ok := w.watched[unique.Make(path)]; !ok {
		return nil
	}

	var op ports.WatchOp
	switch {
	case event.Op&fsnotify.Write == fsnotify.Write:
		op = ports.OpWrite
	case event.Op&fsnotify.Create == fsnotify.Create:
		op = ports.OpCreate
	case event.Op&fsnotify.Remove == fsnotify.Remove:
		op = ports.OpRemove
	case event.Op&fsnotify.Rename == fsnotify.Rename:
		op = ports.OpRename
	default:
		return nil
	}

	return &ports.WatchEvent{Path: path, Operation: op}
}
