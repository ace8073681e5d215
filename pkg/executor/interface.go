package executor

// Executor launches external programs such as the audio player and the system opener.
type Executor interface {
	// Start launches the command in dir and returns without waiting.
	Start(dir string, name string, args ...string) error
}
