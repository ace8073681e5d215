package usecase

import (
	"context"

	"github.com/google/uuid"

	"voice-memos/internal/importer"
	"voice-memos/pkg/log"
)

// Run imports new recordings from dir and labels everything still unlabelled.
func (uc *implUseCase) Run(ctx context.Context, dir string) (importer.Report, error) {
	ctx = log.WithRunID(ctx, uuid.NewString())

	files, err := uc.Scan(ctx, dir)
	if err != nil {
		return importer.Report{}, err
	}
	report := importer.Report{Scanned: len(files)}

	tr, err := uc.Transcribe(ctx, files)
	report.Transcribed, report.TranscribeFailed = tr.Transcribed, tr.Failed
	if err != nil {
		return report, err
	}

	lb, err := uc.Label(ctx)
	report.Labelled, report.LabelFailed = lb.Labelled, lb.Failed
	if err != nil {
		return report, err
	}

	uc.l.Infof(ctx, "importer.Run: %s", report)
	return report, nil
}
