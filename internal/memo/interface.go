package memo

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Store commands
	Load(ctx context.Context) (LoadOutput, error)
	Kill(ctx context.Context, names []string) error
	Merge(ctx context.Context, names []string) (MergeOutput, error)
	SetContent(ctx context.Context, input SetContentInput) error
	SetLabel(ctx context.Context, input SetLabelInput) error

	// Host commands
	Open(ctx context.Context, names []string) error
	AddToThings(ctx context.Context, names []string) error
	Copy(ctx context.Context, names []string) error
}
