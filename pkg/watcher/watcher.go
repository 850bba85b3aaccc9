// Package watcher triggers a callback when any of a set of files changes.
package watcher

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches files for changes and triggers a debounced callback
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	logger   *log.Logger
	debounce time.Duration

	mu    sync.Mutex
	files map[string]bool
	timer *time.Timer
}

// NewFileWatcher creates a new file watcher. Bursts of events closer than
// debounce collapse into a single callback.
func NewFileWatcher(debounce time.Duration, logger *log.Logger) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &FileWatcher{
		watcher:  watcher,
		logger:   logger,
		debounce: debounce,
		files:    make(map[string]bool),
	}, nil
}

// Watch adds files to the watched set
func (fw *FileWatcher) Watch(files []string) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		if fw.files[absPath] {
			continue
		}
		if err := fw.watcher.Add(absPath); err != nil {
			return fmt.Errorf("failed to watch %s: %w", absPath, err)
		}
		fw.files[absPath] = true
	}
	return nil
}

// Files returns the watched absolute paths
func (fw *FileWatcher) Files() []string {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	files := make([]string, 0, len(fw.files))
	for f := range fw.files {
		files = append(files, f)
	}
	return files
}

// Run delivers changes to onChange until ctx is cancelled or the watcher is
// closed. onChange receives the path that changed last within the debounce
// window and never runs concurrently with itself.
func (fw *FileWatcher) Run(ctx context.Context, onChange func(path string)) error {
	ctx, cancel := context.WithCancel(ctx)
	changes := make(chan string, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case path := <-changes:
				onChange(path)
			}
		}
	}()
	defer wg.Wait()
	// runs before the wait so the consumer exits on every return path
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			fw.stopTimer()
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				fw.stopTimer()
				return nil
			}
			// Replaced files drop their watch; add them back
			if event.Op&fsnotify.Remove == fsnotify.Remove || event.Op&fsnotify.Rename == fsnotify.Rename {
				fw.rewatch(event.Name)
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				fw.handleFileChange(event.Name, changes)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			if fw.logger != nil {
				fw.logger.Printf("watcher error: %v", err)
			}
		}
	}
}

// handleFileChange (re)starts the debounce timer for a watched file
func (fw *FileWatcher) handleFileChange(path string, changes chan<- string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if !fw.files[path] {
		return
	}
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.debounce, func() {
		select {
		case changes <- path:
		default:
			// a run is already pending
		}
	})
}

func (fw *FileWatcher) rewatch(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if !fw.files[path] {
		return
	}
	go func() {
		// the replacement usually appears right after the removal
		for i := 0; i < 10; i++ {
			time.Sleep(fw.debounce / 10)
			if err := fw.watcher.Add(path); err == nil {
				return
			}
		}
	}()
}

func (fw *FileWatcher) stopTimer() {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	fw.stopTimer()
	return fw.watcher.Close()
}

// RemoveAll removes all watched files
func (fw *FileWatcher) RemoveAll() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for file := range fw.files {
		if err := fw.watcher.Remove(file); err != nil {
			return err
		}
	}
	fw.files = make(map[string]bool)
	return nil
}
