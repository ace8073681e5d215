package executor

import (
	"fmt"
	"os/exec"
)

type implExecutor struct{}

// New creates a new Executor instance
func New() Executor {
	return &implExecutor{}
}

// Start spawns a detached process. The child outlives the caller's request,
// so it is not bound to a context; it is reaped in the background.
// An empty dir keeps the caller's working directory.
func (e *implExecutor) Start(dir string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}

	go cmd.Wait()
	return nil
}
