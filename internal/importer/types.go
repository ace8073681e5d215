package importer

import (
	"fmt"
	"time"
)

// DefaultExtensions are the audio formats picked up by Scan.
var DefaultExtensions = []string{".m4a", ".mp3", ".wav", ".aac", ".ogg", ".flac", ".webm", ".mp4"}

const (
	DefaultTranscribeConcurrency = 3
	DefaultLabelConcurrency      = 5
	DefaultWatchDebounce         = 2 * time.Second
)

// Config tunes the pipeline.
type Config struct {
	Extensions            []string
	TranscribeConcurrency int
	LabelConcurrency      int
	Categories            []string // optional candidate labels offered to the model
	WatchDebounce         time.Duration
}

type TranscribeOutput struct {
	Transcribed int
	Failed      int
}

type LabelOutput struct {
	Labelled int
	Failed   int
}

// Report summarises one Run.
type Report struct {
	Scanned          int
	Transcribed      int
	TranscribeFailed int
	Labelled         int
	LabelFailed      int
}

func (r Report) String() string {
	return fmt.Sprintf("scanned=%d transcribed=%d transcribe_failed=%d labelled=%d label_failed=%d",
		r.Scanned, r.Transcribed, r.TranscribeFailed, r.Labelled, r.LabelFailed)
}
