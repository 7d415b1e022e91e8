package catalog

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher triggers a callback whenever the catalog file is rewritten, so
// the serve path can hot-swap the in-memory catalog.
type Watcher struct {
	path     string
	onChange func(string) // called with the path that changed
	fw       *fsnotify.Watcher
	done     chan struct{}
}

// Watch starts watching the catalog file at path. fsnotify watches the
// containing directory because editors and atomic writers replace the file
// rather than writing it in place.
func Watch(path string, onChange func(string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{path: abs, onChange: onChange, fw: fw, done: make(chan struct{})}
	go w.loop()
	return w, nil
}

// Stop terminates the watcher.
func (w *Watcher) Stop() {
	close(w.done)
	w.fw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename) {
				if w.onChange != nil {
					w.onChange(w.path)
				}
			}
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// watch errors are not fatal to the server; keep going
		case <-w.done:
			return
		}
	}
}
