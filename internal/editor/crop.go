package editor

import (
	"fmt"
	"image"

	"go.uber.org/zap"
)

// CropState is the state of the crop pointer gesture.
type CropState int

const (
	// CropIdle means no crop is armed; pointer events are ignored.
	CropIdle CropState = iota
	// CropArmed means BeginCrop was called and a press will start a selection.
	CropArmed
	// CropDragging means a selection is in progress from the pressed point.
	CropDragging
)

func (c CropState) String() string {
	switch c {
	case CropIdle:
		return "idle"
	case CropArmed:
		return "armed"
	case CropDragging:
		return "dragging"
	default:
		return fmt.Sprintf("CropState(%d)", int(c))
	}
}

// MarshalText renders the state by name in JSON results.
func (c CropState) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses a state name produced by MarshalText.
func (c *CropState) UnmarshalText(text []byte) error {
	for _, st := range []CropState{CropIdle, CropArmed, CropDragging} {
		if st.String() == string(text) {
			*c = st
			return nil
		}
	}
	return fmt.Errorf("unknown crop state %q", text)
}

type cropGesture struct {
	state CropState
	start image.Point
}

// NormalizeBox returns the box spanned by two corner points supplied in any
// order.
func NormalizeBox(a, b image.Point) image.Rectangle {
	return image.Rectangle{
		Min: image.Pt(min(a.X, b.X), min(a.Y, b.Y)),
		Max: image.Pt(max(a.X, b.X), max(a.Y, b.Y)),
	}
}

// BeginCrop arms the crop gesture. The current image is pushed onto the
// history immediately, before any selection is made.
func (s *Session) BeginCrop() error {
	if s.image == nil {
		return ErrNoImageLoaded
	}
	s.pushState()
	s.surface.ClearSelection()
	s.crop = cropGesture{state: CropArmed}
	s.logger.Debug("crop armed", zap.Int("history", len(s.history)))
	return nil
}

// CropState returns the current state of the crop gesture.
func (s *Session) CropState() CropState {
	return s.crop.state
}

// Press records the start corner of a selection. It is ignored unless a crop
// is armed; pressing again while dragging restarts the selection.
func (s *Session) Press(p image.Point) {
	if s.crop.state == CropIdle {
		return
	}
	s.crop.start = p
	s.crop.state = CropDragging
}

// Drag outlines the selection from the start corner to p, replacing the
// previous outline. It is ignored unless a selection is in progress.
func (s *Session) Drag(p image.Point) {
	if s.crop.state != CropDragging {
		return
	}
	s.surface.ShowSelection(NormalizeBox(s.crop.start, p))
}

// Release ends the selection at p and crops the image to the selected box.
//
// It reports whether a crop was applied. Without a selection in progress the
// release is ignored. The result has the size of the selected box, even where
// the box extends past the image onto the canvas background. A selection with
// no area returns ErrEmptySelection, removes the outline and leaves the crop
// armed so another selection can be made.
func (s *Session) Release(p image.Point) (bool, error) {
	if s.crop.state != CropDragging {
		return false, nil
	}
	box := NormalizeBox(s.crop.start, p)
	s.surface.ClearSelection()

	if box.Empty() {
		s.crop.state = CropArmed
		return false, ErrEmptySelection
	}
	cropped, err := s.backend.Crop(s.image, box)
	if err != nil {
		s.crop.state = CropArmed
		return false, fmt.Errorf("%w: %v", ErrEmptySelection, err)
	}

	s.crop = cropGesture{}
	s.image = cropped
	s.fit()
	s.render()
	s.logger.Debug("cropped",
		zap.Int("x1", box.Min.X), zap.Int("y1", box.Min.Y),
		zap.Int("x2", box.Max.X), zap.Int("y2", box.Max.Y))
	return true, nil
}

// cancelCrop disarms the gesture and removes any outline.
func (s *Session) cancelCrop() {
	s.crop = cropGesture{}
	s.surface.ClearSelection()
}
