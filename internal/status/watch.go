package status

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay coalesces the burst of events a single save produces
// (truncate + write, or write temp + rename) into one reload.
const reloadDelay = 50 * time.Millisecond

// WatchRules reloads the rule pack at path whenever it changes on disk and
// hands the outcome to onReload. A failed reload passes a nil Classifier and
// the error; callers keep their previous tables. An emptied pack reloads the
// default tables. It runs until ctx is cancelled.
//
// The parent directory is watched rather than the file, so saves that rename
// a temporary file over path keep being picked up.
func WatchRules(ctx context.Context, path string, logger *slog.Logger, onReload func(*Classifier, error)) error {
	if logger == nil {
		logger = slog.Default()
	}

	target := filepath.Clean(path)
	if _, err := os.Stat(target); err != nil {
		return fmt.Errorf("watch rule pack: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch rule pack: %w", err)
	}

	logger.Info("watching classifier rules", slog.String("path", target))

	debounce := time.NewTimer(reloadDelay)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !touchesContent(event) {
				continue
			}
			debounce.Reset(reloadDelay)

		case <-debounce.C:
			classifier, err := readRules(target)
			if err != nil {
				logger.Error("rule reload failed, keeping previous rules", slog.String("path", target), slog.Any("error", err))
				onReload(nil, err)
				continue
			}
			logger.Info("classifier rules reloaded", slog.String("path", target))
			onReload(classifier, nil)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("rule watcher error", slog.Any("error", err))
		}
	}
}

func touchesContent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}

// readRules parses the pack as it is on disk. Unlike LoadRules, a missing
// file is an error here: the pack vanished mid-save or was moved away.
func readRules(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule pack: %w", err)
	}
	return ParseRules(data)
}
