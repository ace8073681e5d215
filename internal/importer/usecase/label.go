package usecase

import (
	"context"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"voice-memos/internal/importer"
	"voice-memos/internal/memo"
	repo "voice-memos/internal/memo/repository"
	"voice-memos/pkg/llmprovider"
)

// Label asks the chat model for a category for every unlabelled memo.
// Answers that are not a single lowercase word are discarded.
func (uc *implUseCase) Label(ctx context.Context) (importer.LabelOutput, error) {
	rows, err := uc.repo.ListMemos(ctx, repo.ListMemosOptions{Unlabelled: true})
	if err != nil {
		uc.l.Errorf(ctx, "importer.Label ListMemos: %v", err)
		return importer.LabelOutput{}, err
	}

	// Without a model only blank transcripts can be labelled.
	if uc.chat == nil {
		blank := rows[:0]
		for _, m := range rows {
			if strings.TrimSpace(m.Content) == "" {
				blank = append(blank, m)
			}
		}
		if skipped := len(rows) - len(blank); skipped > 0 {
			uc.l.Warnf(ctx, "importer.Label: no chat model configured, %d memo(s) left unlabelled", skipped)
		}
		rows = blank
	}

	var ok, failed atomic.Int64

	g := new(errgroup.Group)
	g.SetLimit(uc.cfg.LabelConcurrency)

	for _, m := range rows {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if uc.labelOne(ctx, m) {
				ok.Add(1)
			} else {
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	out := importer.LabelOutput{Labelled: int(ok.Load()), Failed: int(failed.Load())}
	uc.l.Infof(ctx, "importer.Label: %d labelled, %d failed", out.Labelled, out.Failed)
	return out, ctx.Err()
}

func (uc *implUseCase) labelOne(ctx context.Context, m memo.Memo) bool {
	label := memo.UnknownLabel

	if strings.TrimSpace(m.Content) != "" {
		resp, err := uc.chat.GenerateContent(ctx, llmprovider.UserPrompt(buildLabelPrompt(uc.cfg.Categories), m.Content))
		if err != nil {
			uc.l.Warnf(ctx, "importer.Label %s: %v", m.Name, err)
			return false
		}
		label = normalizeLabel(resp.Text)
		if !memo.ValidLabel(label) {
			uc.l.Warnf(ctx, "importer.Label %s: discarding answer %q", m.Name, resp.Text)
			return false
		}
	}

	updated, err := uc.repo.UpdateLabel(ctx, repo.UpdateLabelOptions{Name: m.Name, Label: label})
	if err != nil {
		uc.l.Errorf(ctx, "importer.Label %s UpdateLabel: %v", m.Name, err)
		return false
	}
	if !updated {
		// Killed or merged while we were waiting on the model.
		uc.l.Warnf(ctx, "importer.Label %s: memo no longer exists", m.Name)
		return false
	}

	uc.l.Debugf(ctx, "importer.Label: %s -> %s", m.Name, label)
	return true
}
