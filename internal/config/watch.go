package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch calls onChange whenever file is written or created. The parent
// directory is watched so editors that replace the file are seen too: a
// rename into place arrives as Create on the target. Watch blocks until
// ctx is done.
func Watch(ctx context.Context, file string, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close() //nolint:errcheck

	dir := filepath.Dir(file)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	want := filepath.Clean(file)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if changes(ev, want) {
				onChange()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", file, err)
		}
	}
}

// changes reports whether ev leaves new content at file. Rename and Remove
// name the path the file just left, so they never reload.
func changes(ev fsnotify.Event, file string) bool {
	if filepath.Clean(ev.Name) != file {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}
