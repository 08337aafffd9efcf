package imaging

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// DefaultJPEGQuality matches the quality most desktop editors write by default.
const DefaultJPEGQuality = 75

// Backend performs decoding, encoding and all pixel operations for the editor.
//
// Backend holds only encoder settings and is safe to share. Its zero value is
// not ready for use; create one with NewBackend.
type Backend struct {
	jpegQuality int
}

// NewBackend creates a backend that writes JPEG files at the given quality
// (1-100). Out-of-range values fall back to DefaultJPEGQuality.
func NewBackend(jpegQuality int) *Backend {
	if jpegQuality < 1 || jpegQuality > 100 {
		jpegQuality = DefaultJPEGQuality
	}
	return &Backend{jpegQuality: jpegQuality}
}

// Decode reads and decodes the image file at path.
//
// EXIF orientation is not applied; the image is returned exactly as stored.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a supported image format
func (b *Backend) Decode(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("empty image path")
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Encode writes img to path in the format implied by the path's extension.
//
// The image is encoded in memory before the destination is touched, so a
// failed encode never leaves a partial file at path. An existing destination
// is overwritten in place and keeps its permissions; a write-protected file is
// an error.
//
// # Errors
//
//   - Returns error if the extension is not a supported output format
//   - Returns error if encoding fails
//   - Returns error if the destination is missing, a directory, or not writable
func (b *Backend) Encode(img image.Image, path string) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("unsupported output format %q: %w", filepath.Ext(path), err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(b.jpegQuality)); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
