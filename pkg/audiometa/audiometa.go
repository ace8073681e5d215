// Package audiometa reads header metadata from audio files.
package audiometa

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-audio/wav"
)

var ErrNotWAV = errors.New("not a valid WAV file")

// Info is what the WAV header tells us about a recording.
type Info struct {
	Duration   time.Duration
	SampleRate int
	Channels   int
	BitDepth   int
}

// ProbeWAV decodes the header of the WAV file at path.
func ProbeWAV(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, err
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return Info{}, ErrNotWAV
	}
	info := Info{
		SampleRate: int(d.SampleRate),
		Channels:   int(d.NumChans),
		BitDepth:   int(d.BitDepth),
	}

	// Duration needs a decoder positioned at the start of the file.
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return Info{}, err
	}
	dur, err := wav.NewDecoder(f).Duration()
	if err != nil {
		return Info{}, fmt.Errorf("wav duration: %w", err)
	}
	info.Duration = dur
	return info, nil
}
