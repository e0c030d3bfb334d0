package server

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a single file for changes and invokes a callback after a
// debounce interval. Editors replace files on save, so the file's directory
// is watched and events are filtered by name.
type Watcher struct {
	path     string
	onChange func()
	debounce time.Duration
	done     chan struct{}
	once     sync.Once
}

// NewWatcher creates a Watcher for the given file. The onChange callback is
// invoked after changes have been debounced for the specified duration.
func NewWatcher(path string, debounce time.Duration, onChange func()) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		onChange: onChange,
		debounce: debounce,
		done:     make(chan struct{}),
	}
}

// Start begins watching. It blocks until Stop is called or the underlying
// watcher fails to initialise.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	var timer *time.Timer
	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, w.onChange)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Printf("watcher error: %v", err)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return nil
		}
	}
}

// Stop signals the watcher to stop monitoring.
func (w *Watcher) Stop() {
	w.once.Do(func() {
		close(w.done)
	})
}
