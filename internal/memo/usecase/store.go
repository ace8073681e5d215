package usecase

import (
	"context"
	"fmt"

	"voice-memos/internal/memo"
	repo "voice-memos/internal/memo/repository"
)

// Load returns every memo ordered by name.
func (uc *implUseCase) Load(ctx context.Context) (memo.LoadOutput, error) {
	memos, err := uc.repo.ListMemos(ctx, repo.ListMemosOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Load ListMemos: %v", err)
		return memo.LoadOutput{}, err
	}
	return memo.LoadOutput{Memos: memos}, nil
}

// Kill deletes the named memos. Names that do not exist are ignored.
func (uc *implUseCase) Kill(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}
	n, err := uc.repo.DeleteMemos(ctx, names)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Kill DeleteMemos: %v", err)
		return err
	}
	uc.l.Infof(ctx, "uc.Kill: deleted %d of %d memo(s)", n, len(names))
	return nil
}

// Merge replaces the named memos with a single one. Fewer than two names is a no-op.
func (uc *implUseCase) Merge(ctx context.Context, names []string) (memo.MergeOutput, error) {
	if len(names) < 2 {
		return memo.MergeOutput{}, nil
	}

	rows, err := uc.repo.ListMemos(ctx, repo.ListMemosOptions{Names: names})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Merge ListMemos: %v", err)
		return memo.MergeOutput{}, err
	}
	if len(rows) < 2 {
		uc.l.Warnf(ctx, "uc.Merge: only %d of %d memo(s) exist, nothing merged", len(rows), len(names))
		return memo.MergeOutput{}, nil
	}

	merged := mergeRows(rows)
	existing := make([]string, len(rows))
	for i, r := range rows {
		existing[i] = r.Name
	}

	m, err := uc.repo.ReplaceMemos(ctx, repo.ReplaceMemosOptions{
		Names: existing,
		Replacement: repo.CreateMemoOptions{
			Name:    merged.Name,
			Content: merged.Content,
			Label:   merged.Label,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Merge ReplaceMemos: %v", err)
		return memo.MergeOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Merge: merged %d memos into %q", len(rows), m.Name)
	return memo.MergeOutput{Memo: m}, nil
}

// SetContent overwrites the transcript of one memo.
func (uc *implUseCase) SetContent(ctx context.Context, input memo.SetContentInput) error {
	ok, err := uc.repo.UpdateContent(ctx, repo.UpdateContentOptions{
		Name:    input.Name,
		Content: input.Content,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SetContent UpdateContent: %v", err)
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", memo.ErrMemoNotFound, input.Name)
	}
	return nil
}

// SetLabel assigns a category to one memo.
func (uc *implUseCase) SetLabel(ctx context.Context, input memo.SetLabelInput) error {
	if !memo.ValidLabel(input.Label) {
		return memo.ErrInvalidLabel
	}
	ok, err := uc.repo.UpdateLabel(ctx, repo.UpdateLabelOptions{
		Name:  input.Name,
		Label: input.Label,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SetLabel UpdateLabel: %v", err)
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", memo.ErrMemoNotFound, input.Name)
	}
	return nil
}

// selectMemos loads the named memos, failing when none of them exist.
func (uc *implUseCase) selectMemos(ctx context.Context, names []string) ([]memo.Memo, error) {
	if len(names) == 0 {
		return nil, memo.ErrNoNames
	}
	rows, err := uc.repo.ListMemos(ctx, repo.ListMemosOptions{Names: names})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", memo.ErrMemoNotFound, names[0])
	}
	return rows, nil
}
