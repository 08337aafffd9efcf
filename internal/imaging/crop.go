package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Crop extracts box from img.
//
// The box is given relative to the image's top-left corner and may be
// supplied with its corners in either order. The result always has the size
// of the box; any part of the box lying outside img is transparent.
//
// # Errors
//
//   - Returns error if the box has no area
func (b *Backend) Crop(img image.Image, box image.Rectangle) (image.Image, error) {
	box = box.Canon()
	if box.Empty() {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) has no area",
			box.Min.X, box.Min.Y, box.Max.X, box.Max.Y)
	}

	bounds := img.Bounds()
	src := box.Add(bounds.Min).Intersect(bounds)
	if src == box.Add(bounds.Min) {
		return imaging.Crop(img, src), nil
	}

	out := imaging.New(box.Dx(), box.Dy(), color.Transparent)
	if src.Empty() {
		return out, nil
	}
	// Position of the overlapping region inside the box.
	at := src.Min.Sub(bounds.Min).Sub(box.Min)
	return imaging.Paste(out, imaging.Crop(img, src), at), nil
}
