package prompts

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// reloadDelay batches the bursts of events editors produce for one save.
const reloadDelay = 300 * time.Millisecond

// Watch reloads the catalog override at path whenever the file changes and
// hands every successfully loaded catalog to apply. A file that fails to load
// is logged and the previous catalog stays in effect. Watch blocks until ctx
// is done.
func Watch(ctx context.Context, path string, log *slog.Logger, apply func(*Catalog)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors replace files by rename, which drops a
	// watch on the file itself.
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	log.Info("watching role catalog", "path", target)

	fs := afero.NewOsFs()
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(reloadDelay)
			fire = timer.C

		case <-fire:
			fire = nil
			c, err := Load(fs, target)
			if err != nil {
				log.Warn("catalog reload failed, keeping previous catalog", "path", target, "error", err)
				continue
			}
			apply(c)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("catalog watch error", "error", err)

		case <-ctx.Done():
			return nil
		}
	}
}
