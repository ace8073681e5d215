package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch does an initial Run, then reruns whenever audio files appear in dir.
// Events are debounced so a file that is still being written is picked up once.
func (uc *implUseCase) Watch(ctx context.Context, dir string) error {
	if _, err := uc.Run(ctx, dir); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("add watch path: %w", err)
	}
	uc.l.Infof(ctx, "importer.Watch: monitoring %s", dir)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			uc.l.Infof(ctx, "importer.Watch: stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
				continue
			}
			name := filepath.Base(event.Name)
			if strings.HasPrefix(name, ".") || !uc.isAudio(name) {
				continue
			}
			uc.l.Debugf(ctx, "importer.Watch: %s %s", event.Op, name)
			pending = true
			timer.Reset(uc.cfg.WatchDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			uc.l.Errorf(ctx, "importer.Watch: %v", err)

		case <-timer.C:
			if !pending {
				continue
			}
			pending = false
			if _, err := uc.Run(ctx, dir); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				uc.l.Errorf(ctx, "importer.Watch Run: %v", err)
			}
		}
	}
}
