package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"voice-memos/internal/importer"
	repo "voice-memos/internal/memo/repository"
)

// Transcribe sends files, in order, to a bounded worker group and stores each
// transcript as an unlabelled memo. A failed file is logged and skipped.
func (uc *implUseCase) Transcribe(ctx context.Context, files []string) (importer.TranscribeOutput, error) {
	var ok, failed atomic.Int64

	g := new(errgroup.Group)
	g.SetLimit(uc.cfg.TranscribeConcurrency)

	for _, path := range files {
		if ctx.Err() != nil {
			break
		}
		// Go blocks while the group is full, so submission stays FIFO.
		g.Go(func() error {
			if uc.transcribeOne(ctx, path) {
				ok.Add(1)
			} else {
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	out := importer.TranscribeOutput{Transcribed: int(ok.Load()), Failed: int(failed.Load())}
	uc.l.Infof(ctx, "importer.Transcribe: %d transcribed, %d failed", out.Transcribed, out.Failed)
	return out, ctx.Err()
}

func (uc *implUseCase) transcribeOne(ctx context.Context, path string) bool {
	name := filepath.Base(path)

	// Another run may have imported the file since the scan; skip the API call.
	existing, err := uc.repo.GetOneMemo(ctx, name)
	if err != nil {
		uc.l.Errorf(ctx, "importer.Transcribe %s GetOneMemo: %v", name, err)
		return false
	}
	if existing.Name != "" {
		uc.l.Warnf(ctx, "importer.Transcribe %s: already imported", name)
		return false
	}

	text, err := uc.transcriber.Transcribe(ctx, path)
	if err != nil {
		uc.l.Warnf(ctx, "importer.Transcribe %s: %v", name, err)
		return false
	}

	_, err = uc.repo.CreateMemo(ctx, repo.CreateMemoOptions{
		Name:    name,
		Content: toParagraphs(text),
	})
	if errors.Is(err, repo.ErrAlreadyExists) {
		uc.l.Warnf(ctx, "importer.Transcribe %s: already imported", name)
		return false
	}
	if err != nil {
		uc.l.Errorf(ctx, "importer.Transcribe %s CreateMemo: %v", name, err)
		return false
	}

	uc.l.Infof(ctx, "importer.Transcribe: imported %s", name)
	return true
}
