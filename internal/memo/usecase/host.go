package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"voice-memos/internal/memo"
	"voice-memos/pkg/things"
)

// Open plays the named recordings one after another with the configured player.
func (uc *implUseCase) Open(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return memo.ErrNoNames
	}
	if uc.cfg.PlayerMacOnly && uc.goos != "darwin" {
		return memo.ErrUnsupportedPlatform
	}
	if uc.cfg.StorageDir == "" {
		return memo.ErrStorageNotSet
	}

	// Check every file before launching anything.
	for _, name := range names {
		if !plainFileName(name) {
			return fmt.Errorf("%w: %q", memo.ErrInvalidName, name)
		}
		path := filepath.Join(uc.cfg.StorageDir, name)
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%w: %s", memo.ErrAudioFileMissing, path)
		}
	}

	args := append(append([]string{}, uc.cfg.PlayerArgs...), names...)
	if err := uc.exec.Start(uc.cfg.StorageDir, uc.cfg.PlayerPath, args...); err != nil {
		uc.l.Errorf(ctx, "uc.Open Start: %v", err)
		return err
	}

	uc.l.Infof(ctx, "uc.Open: playing %d file(s)", len(names))
	return nil
}

// AddToThings sends the named memos to the Things inbox as to-dos.
// The memos stay in the store.
func (uc *implUseCase) AddToThings(ctx context.Context, names []string) error {
	if _, err := os.Stat(uc.cfg.ThingsAppPath); err != nil {
		return memo.ErrThingsNotInstalled
	}

	rows, err := uc.selectMemos(ctx, names)
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddToThings selectMemos: %v", err)
		return err
	}

	items := make([]things.Item, len(rows))
	for i, r := range rows {
		items[i] = things.NewTodoItem(things.Todo{Title: r.Content})
	}

	u, err := things.BuildURL(items, true)
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddToThings BuildURL: %v", err)
		return err
	}

	if err := uc.exec.Start("", uc.cfg.ThingsOpener, u); err != nil {
		uc.l.Errorf(ctx, "uc.AddToThings Start: %v", err)
		return err
	}

	uc.l.Infof(ctx, "uc.AddToThings: sent %d to-do(s)", len(items))
	return nil
}

// Copy puts the named memos' contents on the clipboard as plain text.
func (uc *implUseCase) Copy(ctx context.Context, names []string) error {
	rows, err := uc.selectMemos(ctx, names)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Copy selectMemos: %v", err)
		return err
	}

	if err := uc.clipboard.WriteAll(joinContents(rows)); err != nil {
		uc.l.Errorf(ctx, "uc.Copy WriteAll: %v", err)
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// plainFileName rejects names that leave the storage directory or that the
// player would read as an option.
func plainFileName(name string) bool {
	return name != "" && name != "." && name != ".." &&
		filepath.Base(name) == name && !strings.HasPrefix(name, "-")
}
