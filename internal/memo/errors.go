package memo

import "errors"

var (
	ErrMemoNotFound        = errors.New("memo not found")
	ErrInvalidLabel        = errors.New("label must be a single lowercase word")
	ErrNoNames             = errors.New("at least one memo name is required")
	ErrInvalidName         = errors.New("memo name must be a plain file name")
	ErrAudioFileMissing    = errors.New("audio file doesn't exist")
	ErrUnsupportedPlatform = errors.New("this command is only available on macOS")
	ErrThingsNotInstalled  = errors.New("Things is not installed")
	ErrStorageNotSet       = errors.New("audio storage directory is not configured")
)
