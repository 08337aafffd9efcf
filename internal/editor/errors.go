package editor

import (
	"errors"
	"fmt"
)

// Warnings: the action was rejected and the session is unchanged.
var (
	ErrNoImageLoaded   = errors.New("no image loaded")
	ErrNoHistoryToUndo = errors.New("no action to undo")
	ErrNoOriginalImage = errors.New("no original image to reset to")
	ErrEmptySelection  = errors.New("crop selection is empty")
)

// LoadError reports a file that could not be opened or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to open image %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError reports an image that could not be encoded or written.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save image %q: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// IsWarning reports whether err is one of the rejected-action warnings rather
// than a failed load or save.
func IsWarning(err error) bool {
	return errors.Is(err, ErrNoImageLoaded) ||
		errors.Is(err, ErrNoHistoryToUndo) ||
		errors.Is(err, ErrNoOriginalImage) ||
		errors.Is(err, ErrEmptySelection)
}
