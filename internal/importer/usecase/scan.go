package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"voice-memos/internal/importer"
	"voice-memos/pkg/audiometa"
)

// Scan returns the paths of audio files in dir whose basename is not a memo yet.
func (uc *implUseCase) Scan(ctx context.Context, dir string) ([]string, error) {
	if dir == "" {
		return nil, importer.ErrNoDirectory
	}
	st, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("%w: %s", importer.ErrNotDirectory, dir)
	}

	known, err := uc.repo.ListNames(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "importer.Scan ListNames: %v", err)
		return nil, err
	}
	seen := make(map[string]bool, len(known))
	for _, n := range known {
		seen[n] = true
	}

	// ReadDir sorts by filename.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") || !uc.isAudio(name) || seen[name] {
			continue
		}

		info, err := e.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if info.Size() == 0 {
			uc.l.Warnf(ctx, "importer.Scan: skipping empty file %s", name)
			continue
		}

		path := filepath.Join(dir, name)
		if strings.EqualFold(filepath.Ext(name), ".wav") && !uc.playableWAV(ctx, path) {
			continue
		}

		files = append(files, path)
	}

	uc.l.Infof(ctx, "importer.Scan: %d new file(s) in %s (%d already imported)", len(files), dir, len(seen))
	return files, nil
}

// playableWAV logs the recording length and rejects silent files.
// Files the decoder cannot read are left for the transcription API to judge.
func (uc *implUseCase) playableWAV(ctx context.Context, path string) bool {
	info, err := audiometa.ProbeWAV(path)
	if err != nil {
		uc.l.Warnf(ctx, "importer.Scan: cannot read WAV header of %s: %v", filepath.Base(path), err)
		return true
	}
	if info.Duration <= 0 {
		uc.l.Warnf(ctx, "importer.Scan: skipping zero-length recording %s", filepath.Base(path))
		return false
	}
	uc.l.Debugf(ctx, "importer.Scan: %s is %s (%d Hz, %d ch)", filepath.Base(path), info.Duration, info.SampleRate, info.Channels)
	return true
}

func (uc *implUseCase) isAudio(name string) bool {
	return uc.extensions[strings.ToLower(filepath.Ext(name))]
}
