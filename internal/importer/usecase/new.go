package usecase

import (
	"context"
	"strings"

	"voice-memos/internal/importer"
	"voice-memos/internal/memo/repository"
	"voice-memos/pkg/llmprovider"
	"voice-memos/pkg/log"
	"voice-memos/pkg/whisper"
)

// ChatModel is the part of llmprovider.Manager the labelling pass needs.
type ChatModel interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// implUseCase is the private implementation of importer.UseCase.
type implUseCase struct {
	repo        repository.Repository
	l           log.Logger
	transcriber whisper.ITranscriber
	chat        ChatModel
	cfg         importer.Config
	extensions  map[string]bool
}

// New creates a new importer UseCase. chat may be nil, in which case Label
// only marks blank transcripts as unknown.
func New(repo repository.Repository, l log.Logger, transcriber whisper.ITranscriber, chat ChatModel, cfg importer.Config) *implUseCase {
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = importer.DefaultExtensions
	}
	if cfg.TranscribeConcurrency <= 0 {
		cfg.TranscribeConcurrency = importer.DefaultTranscribeConcurrency
	}
	if cfg.LabelConcurrency <= 0 {
		cfg.LabelConcurrency = importer.DefaultLabelConcurrency
	}
	if cfg.WatchDebounce <= 0 {
		cfg.WatchDebounce = importer.DefaultWatchDebounce
	}

	exts := make(map[string]bool, len(cfg.Extensions))
	for _, e := range cfg.Extensions {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts[e] = true
	}

	return &implUseCase{
		repo:        repo,
		l:           l,
		transcriber: transcriber,
		chat:        chat,
		cfg:         cfg,
		extensions:  exts,
	}
}
