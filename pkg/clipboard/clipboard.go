// Package clipboard writes plain text to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
)

// Writer puts text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

// New returns a Writer backed by the system clipboard.
func New() Writer {
	return systemClipboard{}
}

// WriteAll replaces the clipboard contents with text.
func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Supported reports whether a clipboard utility is available on this host.
func Supported() bool {
	return !clipboard.Unsupported
}
