package cliconfig

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last change to a watched
// file before its change handler runs.
const DefaultDebounce = 100 * time.Millisecond

// FileWatcher reports changes to a single file. The parent directory is
// watched so that files replaced by editors are still noticed.
type FileWatcher struct {
	path    string
	delay   time.Duration
	watcher *fsnotify.Watcher

	mu       sync.Mutex
	debounce *time.Timer
}

// NewFileWatcher starts watching path. Changes are only reported once Run
// is called.
func NewFileWatcher(path string, delay time.Duration) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &FileWatcher{path: abs, delay: delay, watcher: watcher}, nil
}

// Run calls onChange after the file was written or re-created, at most
// once per debounce period, until ctx is done. Watch errors go to onError
// when it is not nil.
func (w *FileWatcher) Run(ctx context.Context, onChange func(), onError func(error)) {
	defer w.stopDebounce()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.schedule(ctx, onChange)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}

// Close stops watching.
func (w *FileWatcher) Close() error {
	return w.watcher.Close()
}

func (w *FileWatcher) schedule(ctx context.Context, onChange func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.delay, func() {
		if ctx.Err() == nil {
			onChange()
		}
	})
}

func (w *FileWatcher) stopDebounce() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
}
