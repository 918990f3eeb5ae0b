package config

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDelay coalesces the burst of events an editor produces on save.
const DefaultWatchDelay = 300 * time.Millisecond

// Watcher calls onChange once the config file has settled after a change.
type Watcher struct {
	path      string
	fsw       *fsnotify.Watcher
	debounced func(func())
	onChange  func()
	closed    atomic.Bool
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// Watch starts watching path. The parent directory is watched because
// atomic saves replace the file rather than write to it.
func Watch(path string, delay time.Duration, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch '%s': %w", dir, err)
	}

	w := &Watcher{
		path:      filepath.Clean(path),
		fsw:       fsw,
		debounced: debounce.New(delay),
		onChange:  onChange,
	}
	w.wg.Add(1)
	go w.loop()
	log.Printf("Config watcher: watching %s", w.path)
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.debounced(w.fire)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("Config watcher: %v", err)
		}
	}
}

func (w *Watcher) fire() {
	if w.closed.Load() {
		return
	}
	log.Printf("Config watcher: %s changed", w.path)
	w.onChange()
}

// Close stops the watcher. A change still pending in the debounce window
// is dropped.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.closed.Store(true)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}
