package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce is how long to wait for more changes before re-running.
// Editors often emit several events per save.
const watchDebounce = 200 * time.Millisecond

// watchAndRun runs fn once, then re-runs it whenever the source file
// changes, until the context is cancelled or an interrupt arrives. The
// parent directory is watched rather than the file itself, since many
// editors replace files on save.
func watchAndRun(ctx context.Context, logger *slog.Logger, source string, fn func() error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := fn(); err != nil {
		return err
	}

	absSource, err := filepath.Abs(source)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(absSource)); err != nil {
		return err
	}
	logger.Info("Watching for changes", "source", absSource)

	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Watch stopped")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absSource {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watch error", "error", err)
		case <-pending:
			logger.Info("Source changed, re-profiling", "source", absSource)
			if err := fn(); err != nil {
				// A broken intermediate save should not kill the watch.
				logger.Error("Profiling failed", "error", err)
			}
		}
	}
}
