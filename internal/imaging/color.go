package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex  string    `json:"hex"`  // Hex format "#RRGGBB" (no alpha)
	RGB  RGBColor  `json:"rgb"`  // RGB components
	RGBA RGBAColor `json:"rgba"` // RGBA components with alpha
	HSL  HSLColor  `json:"hsl"`  // HSL representation
}

// SampleColor extracts the color at (x, y), measured from the top-left corner
// of img.
//
// The Hex and HSL forms ignore alpha; use RGBA.A to get transparency.
//
// # Errors
//
//   - Returns error if the coordinates are outside the image
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	px, py := bounds.Min.X+x, bounds.Min.Y+y
	if x < 0 || y < 0 || px >= bounds.Max.X || py >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds (%dx%d)", x, y, bounds.Dx(), bounds.Dy())
	}

	nc := color.NRGBAModel.Convert(img.At(px, py)).(color.NRGBA)
	c := colorful.Color{
		R: float64(nc.R) / 255.0,
		G: float64(nc.G) / 255.0,
		B: float64(nc.B) / 255.0,
	}
	h, s, l := c.Hsl()

	return &ColorResult{
		Hex:  fmt.Sprintf("#%02X%02X%02X", nc.R, nc.G, nc.B),
		RGB:  RGBColor{R: nc.R, G: nc.G, B: nc.B},
		RGBA: RGBAColor{R: nc.R, G: nc.G, B: nc.B, A: nc.A},
		HSL:  toHSLColor(h, s, l),
	}, nil
}

// ParseHexColor parses a "#RRGGBB" or "#RGB" color string into an opaque color.
func ParseHexColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// toHSLColor rounds colorful's HSL (hue in degrees, s and l in 0-1) to the
// integer ranges used in results.
func toHSLColor(h, s, l float64) HSLColor {
	if math.IsNaN(h) {
		h = 0
	}
	return HSLColor{
		H: int(math.Round(h)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}
