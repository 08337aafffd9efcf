package editor

import (
	"image"

	"go.uber.org/zap"

	"github.com/ironsheep/photo-editor-mcp/internal/imaging"
)

// Fixed enhancement factors used by the brightness and contrast actions.
const (
	BrightnessFactor = 1.2
	ContrastFactor   = 1.3
)

// Backend decodes, encodes and transforms images. Implementations must not
// modify their input images.
type Backend interface {
	Decode(path string) (image.Image, error)
	Encode(img image.Image, path string) error
	Enhance(img image.Image, kind imaging.Enhancement, factor float64) (image.Image, error)
	Rotate(img image.Image, degrees float64, expand bool) image.Image
	Grayscale(img image.Image) image.Image
	MirrorHorizontal(img image.Image) image.Image
	Crop(img image.Image, box image.Rectangle) (image.Image, error)
	ResizeToFit(img image.Image, maxWidth, maxHeight int) image.Image
}

// Surface displays the current image and the crop selection outline.
type Surface interface {
	Render(img image.Image)
	Size() (width, height int)
	ShowSelection(r image.Rectangle)
	ClearSelection()
}

// Session is a single-document editing session.
//
// Images held by the session are never modified in place; every action
// replaces the current image with a new one, which lets the history store
// plain references as snapshots.
type Session struct {
	backend Backend
	surface Surface
	logger  *zap.Logger

	path     string
	image    image.Image
	original image.Image
	history  []image.Image
	crop     cropGesture
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for action tracing. The default discards logs.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates an empty session that edits with backend and displays on surface.
func New(backend Backend, surface Surface, opts ...Option) *Session {
	s := &Session{
		backend: backend,
		surface: surface,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open loads the image at path, replacing the current document.
//
// On success the loaded image becomes both the current and the original
// image, the history holds exactly that image, and the current image is
// shrunk to fit the surface. On failure the session is unchanged and a
// *LoadError is returned.
func (s *Session) Open(path string) error {
	img, err := s.backend.Decode(path)
	if err != nil {
		s.logger.Warn("open failed", zap.String("path", path), zap.Error(err))
		return &LoadError{Path: path, Err: err}
	}

	s.cancelCrop()
	s.path = path
	s.image = img
	s.original = img
	s.history = []image.Image{img}
	s.fit()
	s.render()

	b := img.Bounds()
	s.logger.Info("image opened",
		zap.String("path", path),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()))
	return nil
}

// Enhance applies a brightness or contrast adjustment by factor. The image is
// re-rendered without refitting.
func (s *Session) Enhance(kind imaging.Enhancement, factor float64) error {
	if s.image == nil {
		return ErrNoImageLoaded
	}
	out, err := s.backend.Enhance(s.image, kind, factor)
	if err != nil {
		return err
	}
	s.commit(out, false)
	s.logger.Debug("enhanced", zap.Stringer("kind", kind), zap.Float64("factor", factor), zap.Int("history", len(s.history)))
	return nil
}

// Brighten increases brightness by BrightnessFactor.
func (s *Session) Brighten() error {
	return s.Enhance(imaging.Brightness, BrightnessFactor)
}

// IncreaseContrast increases contrast by ContrastFactor.
func (s *Session) IncreaseContrast() error {
	return s.Enhance(imaging.Contrast, ContrastFactor)
}

// Rotate90 turns the image a quarter turn counter-clockwise, growing the
// canvas to keep every corner.
func (s *Session) Rotate90() error {
	if s.image == nil {
		return ErrNoImageLoaded
	}
	s.commit(s.backend.Rotate(s.image, 90, true), true)
	s.logger.Debug("rotated", zap.Int("history", len(s.history)))
	return nil
}

// Grayscale converts the image to single-channel luminance. Applying it to a
// grayscale image leaves the pixels as they are but still records an edit.
func (s *Session) Grayscale() error {
	if s.image == nil {
		return ErrNoImageLoaded
	}
	s.commit(s.backend.Grayscale(s.image), true)
	s.logger.Debug("grayscale", zap.Int("history", len(s.history)))
	return nil
}

// FlipHorizontal mirrors the image left to right.
func (s *Session) FlipHorizontal() error {
	if s.image == nil {
		return ErrNoImageLoaded
	}
	s.commit(s.backend.MirrorHorizontal(s.image), true)
	s.logger.Debug("flipped", zap.Int("history", len(s.history)))
	return nil
}

// Reset restores the image as it was loaded. The history is left alone, so a
// following Undo returns to the last snapshot pushed before the reset.
func (s *Session) Reset() error {
	if s.original == nil {
		return ErrNoOriginalImage
	}
	s.image = s.original
	s.fit()
	s.render()
	s.logger.Debug("reset", zap.Int("history", len(s.history)))
	return nil
}

// Undo reverts the most recent edit. It is rejected with ErrNoHistoryToUndo
// once only the loaded image remains.
func (s *Session) Undo() error {
	if len(s.history) <= 1 {
		return ErrNoHistoryToUndo
	}
	s.history = s.history[:len(s.history)-1]
	s.image = s.history[len(s.history)-1]
	s.render()
	s.logger.Debug("undo", zap.Int("history", len(s.history)))
	return nil
}

// Save encodes the current image to path. A failed save returns a *SaveError
// and leaves the session unchanged.
func (s *Session) Save(path string) error {
	if s.image == nil {
		return ErrNoImageLoaded
	}
	if err := s.backend.Encode(s.image, path); err != nil {
		s.logger.Warn("save failed", zap.String("path", path), zap.Error(err))
		return &SaveError{Path: path, Err: err}
	}
	s.logger.Info("image saved", zap.String("path", path))
	return nil
}

// Image returns the current image, or nil when nothing is loaded.
func (s *Session) Image() image.Image {
	return s.image
}

// Original returns the image as it was loaded, or nil when nothing is loaded.
func (s *Session) Original() image.Image {
	return s.original
}

// HistoryLen returns the number of snapshots in the history.
func (s *Session) HistoryLen() int {
	return len(s.history)
}

// Status summarizes the session.
type Status struct {
	Loaded         bool      `json:"loaded"`
	Path           string    `json:"path,omitempty"`
	Width          int       `json:"width"`
	Height         int       `json:"height"`
	OriginalWidth  int       `json:"original_width"`
	OriginalHeight int       `json:"original_height"`
	HistoryDepth   int       `json:"history_depth"`
	CanUndo        bool      `json:"can_undo"`
	Crop           CropState `json:"crop"`
}

// Status returns a summary of the current document.
func (s *Session) Status() Status {
	st := Status{
		Loaded:       s.image != nil,
		Path:         s.path,
		HistoryDepth: len(s.history),
		CanUndo:      len(s.history) > 1,
		Crop:         s.crop.state,
	}
	if s.image != nil {
		b := s.image.Bounds()
		st.Width, st.Height = b.Dx(), b.Dy()
	}
	if s.original != nil {
		b := s.original.Bounds()
		st.OriginalWidth, st.OriginalHeight = b.Dx(), b.Dy()
	}
	return st
}

// pushState records the current image so the next change can be undone.
func (s *Session) pushState() {
	s.history = append(s.history, s.image)
}

// commit pushes the current image and replaces it with next.
func (s *Session) commit(next image.Image, refit bool) {
	s.pushState()
	s.image = next
	if refit {
		s.fit()
	}
	s.render()
}

func (s *Session) fit() {
	w, h := s.surface.Size()
	s.image = s.backend.ResizeToFit(s.image, w, h)
}

func (s *Session) render() {
	s.surface.Render(s.image)
}
