package importer

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Scan lists audio files in dir that are not in the store yet, ordered by name.
	Scan(ctx context.Context, dir string) ([]string, error)
	// Transcribe inserts one memo per successfully transcribed file.
	Transcribe(ctx context.Context, files []string) (TranscribeOutput, error)
	// Label categorises every memo without a label.
	Label(ctx context.Context) (LabelOutput, error)
	// Run chains Scan, Transcribe and Label.
	Run(ctx context.Context, dir string) (Report, error)
	// Watch runs once, then again whenever new audio lands in dir, until ctx ends.
	Watch(ctx context.Context, dir string) error
}
