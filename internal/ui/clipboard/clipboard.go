package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when the host has no clipboard utility
var ErrUnsupported = errors.New("clipboard is not supported on this system")

// Writer copies text to the clipboard
type Writer interface {
	WriteAll(text string) error
}

// System writes to the OS clipboard
type System struct{}

// WriteAll copies text to the OS clipboard
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}
