package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce collapses the burst of events editors emit per save.
const watchDebounce = 100 * time.Millisecond

// watchConfig calls onChange after configPath has been written, created or
// replaced, and blocks until ctx is cancelled. The parent directory is
// watched so that editors saving through a rename are still seen.
func watchConfig(ctx context.Context, configPath string, onChange func()) error {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return fmt.Errorf("error resolving config path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("error watching %s: %w", filepath.Dir(absPath), err)
	}
	debugPrint("Watching %s for changes", absPath)

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !isConfigEvent(event, absPath) {
				continue
			}
			debugPrint("Config event: %s", event)
			timer.Reset(watchDebounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			warnf("watcher error: %v", err)

		case <-timer.C:
			onChange()
		}
	}
}

// isConfigEvent reports whether event changes the file at path.
func isConfigEvent(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
