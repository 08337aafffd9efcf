package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Enhancement selects the curve applied by Backend.Enhance.
type Enhancement int

const (
	// Brightness scales every channel by the factor.
	Brightness Enhancement = iota
	// Contrast stretches every channel away from mid-gray by the factor.
	Contrast
)

// String returns the lowercase name of the enhancement.
func (e Enhancement) String() string {
	switch e {
	case Brightness:
		return "brightness"
	case Contrast:
		return "contrast"
	default:
		return fmt.Sprintf("enhancement(%d)", int(e))
	}
}

// Enhance applies a multiplicative adjustment to img.
//
// A factor of 1.0 leaves the image unchanged, values above 1.0 increase the
// effect and values below 1.0 reduce it. Alpha is preserved.
func (b *Backend) Enhance(img image.Image, kind Enhancement, factor float64) (image.Image, error) {
	if factor < 0 {
		return nil, fmt.Errorf("enhancement factor must be non-negative, got %g", factor)
	}
	change := factor - 1
	switch kind {
	case Brightness:
		return adjust.Brightness(img, change), nil
	case Contrast:
		return adjust.Contrast(img, change), nil
	default:
		return nil, fmt.Errorf("unknown enhancement: %s", kind)
	}
}

// Rotate turns img counter-clockwise by degrees.
//
// With expand set the output grows to hold the whole rotated image; corners
// exposed by the rotation are transparent. Without expand the output keeps
// the input's dimensions and rotated corners are cut off.
func (b *Backend) Rotate(img image.Image, degrees float64, expand bool) image.Image {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}

	var rotated *image.NRGBA
	switch d {
	case 0:
		rotated = imaging.Clone(img)
	case 90:
		rotated = imaging.Rotate90(img)
	case 180:
		rotated = imaging.Rotate180(img)
	case 270:
		rotated = imaging.Rotate270(img)
	default:
		rotated = imaging.Rotate(img, d, color.Transparent)
	}

	if expand {
		return rotated
	}
	bounds := img.Bounds()
	return imaging.PasteCenter(imaging.New(bounds.Dx(), bounds.Dy(), color.Transparent), rotated)
}

// Grayscale converts img to a single-channel luminance image.
//
// An image that is already single-channel is returned as an unchanged copy,
// so converting twice gives the same pixels as converting once.
func (b *Backend) Grayscale(img image.Image) image.Image {
	if g, ok := img.(*image.Gray); ok {
		out := image.NewGray(image.Rect(0, 0, g.Bounds().Dx(), g.Bounds().Dy()))
		draw.Draw(out, out.Bounds(), g, g.Bounds().Min, draw.Src)
		return out
	}
	return effect.Grayscale(img)
}

// MirrorHorizontal flips img left to right.
func (b *Backend) MirrorHorizontal(img image.Image) image.Image {
	return imaging.FlipH(img)
}

// ResizeToFit shrinks img to fit within maxWidth x maxHeight while keeping its
// aspect ratio. Images that already fit, and non-positive bounds, return img
// itself; ResizeToFit never enlarges.
func (b *Backend) ResizeToFit(img image.Image, maxWidth, maxHeight int) image.Image {
	if maxWidth <= 0 || maxHeight <= 0 {
		return img
	}
	bounds := img.Bounds()
	if bounds.Dx() <= maxWidth && bounds.Dy() <= maxHeight {
		return img
	}
	return imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
}
