package core

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

var watchLog = GetLogger("watch")

// Watcher turns filesystem changes under the watched directories into
// reload callbacks.
type Watcher struct {
	fs       *fsnotify.Watcher
	onChange func()
	done     chan struct{}
}

// StartWatcher watches the given directories recursively. Directories that
// do not exist are skipped. Returns nil when watching is unavailable.
var StartWatcher = func(dirs []string, onChange func()) *Watcher {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		watchLog.Errorf("watch disabled: %v", err)
		return nil
	}

	w := &Watcher{
		fs:       fsw,
		onChange: onChange,
		done:     make(chan struct{}),
	}

	for _, dir := range dirs {
		filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil || !info.IsDir() {
				return nil
			}
			if err := fsw.Add(path); err != nil {
				watchLog.Debugf("cannot watch %s: %v", path, err)
			}
			return nil
		})
	}

	go w.loop()
	return w
}

func (w *Watcher) loop() {
	var last time.Time

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			// Editors fire bursts of events per save; one reload is enough.
			if time.Since(last) < 100*time.Millisecond {
				continue
			}
			last = time.Now()
			watchLog.Debugf("change detected: %s", event.Name)
			w.onChange()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			watchLog.Errorf("watch error: %v", err)
		}
	}
}

// Close stops the watch loop and releases the underlying watcher.
func (w *Watcher) Close() {
	close(w.done)
	w.fs.Close()
}
