package usecase

import (
	"runtime"

	"voice-memos/internal/memo/repository"
	"voice-memos/pkg/clipboard"
	"voice-memos/pkg/executor"
	"voice-memos/pkg/log"
)

// Config carries the host-side settings of the command layer.
type Config struct {
	StorageDir    string
	PlayerPath    string
	PlayerArgs    []string
	PlayerMacOnly bool
	ThingsAppPath string
	ThingsOpener  string
}

// implUseCase is the private implementation of memo.UseCase.
type implUseCase struct {
	repo      repository.Repository
	l         log.Logger
	exec      executor.Executor
	clipboard clipboard.Writer
	cfg       Config
	goos      string
}

// New creates a new memo UseCase implementation.
func New(repo repository.Repository, l log.Logger, exec executor.Executor, cb clipboard.Writer, cfg Config) *implUseCase {
	return &implUseCase{
		repo:      repo,
		l:         l,
		exec:      exec,
		clipboard: cb,
		cfg:       cfg,
		goos:      runtime.GOOS,
	}
}
