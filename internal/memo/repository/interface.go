package repository

import (
	"context"

	"voice-memos/internal/memo"
)

// Repository is the composed interface for the memo data store.
type Repository interface {
	MemoRepository
}

// MemoRepository defines all data access methods for the Memo entity.
type MemoRepository interface {
	CreateMemo(ctx context.Context, opt CreateMemoOptions) (memo.Memo, error)
	GetOneMemo(ctx context.Context, name string) (memo.Memo, error)
	ListMemos(ctx context.Context, opt ListMemosOptions) ([]memo.Memo, error)
	ListNames(ctx context.Context) ([]string, error)
	UpdateContent(ctx context.Context, opt UpdateContentOptions) (bool, error)
	UpdateLabel(ctx context.Context, opt UpdateLabelOptions) (bool, error)
	DeleteMemos(ctx context.Context, names []string) (int64, error)
	ReplaceMemos(ctx context.Context, opt ReplaceMemosOptions) (memo.Memo, error)
}
