// Package canvas implements the editor's display surface: a fixed-size
// raster that shows the current image anchored at its top-left corner, with
// an optional rectangle outline drawn on top while a crop is being selected.
//
// Pointer coordinates reported against the canvas are the same coordinates
// the editor crops with, since the image is always drawn at (0,0) unscaled.
package canvas

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"
)

// Default colors and stroke for a new canvas.
var (
	DefaultBackground = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	DefaultOutline    = color.NRGBA{R: 0xff, A: 0xff}
)

// DefaultOutlineWidth is the selection stroke width in pixels.
const DefaultOutlineWidth = 2

// Canvas is an in-memory display surface.
//
// Canvas is not safe for concurrent use; the editor drives it from a single
// goroutine.
type Canvas struct {
	width, height int
	background    color.Color
	outline       color.Color
	outlineWidth  int

	surface   *image.RGBA
	content   image.Image
	selection image.Rectangle
	selecting bool
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithBackground sets the color shown where no image covers the canvas.
func WithBackground(c color.Color) Option {
	return func(cv *Canvas) {
		cv.background = c
	}
}

// WithOutline sets the color and stroke width of the selection rectangle.
func WithOutline(c color.Color, width int) Option {
	return func(cv *Canvas) {
		cv.outline = c
		if width > 0 {
			cv.outlineWidth = width
		}
	}
}

// New creates a width x height canvas showing only its background.
func New(width, height int, opts ...Option) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c := &Canvas{
		width:        width,
		height:       height,
		background:   DefaultBackground,
		outline:      DefaultOutline,
		outlineWidth: DefaultOutlineWidth,
		surface:      image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.compose()
	return c
}

// Size returns the drawable width and height.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Render replaces whatever image is shown with img. A nil img clears the canvas.
func (c *Canvas) Render(img image.Image) {
	c.content = img
	c.compose()
}

// ShowSelection draws the selection outline for r, replacing any previous
// outline. The corners of r may be given in either order.
func (c *Canvas) ShowSelection(r image.Rectangle) {
	c.selection = r.Canon()
	c.selecting = true
	c.compose()
}

// ClearSelection removes the selection outline, if any.
func (c *Canvas) ClearSelection() {
	if !c.selecting {
		return
	}
	c.selection = image.Rectangle{}
	c.selecting = false
	c.compose()
}

// Selection returns the outlined rectangle and whether one is shown.
func (c *Canvas) Selection() (image.Rectangle, bool) {
	return c.selection, c.selecting
}

// Snapshot returns a copy of the composed surface.
func (c *Canvas) Snapshot() *image.RGBA {
	out := image.NewRGBA(c.surface.Bounds())
	copy(out.Pix, c.surface.Pix)
	return out
}

// EncodePNG returns the composed surface as PNG bytes.
func (c *Canvas) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.surface); err != nil {
		return nil, fmt.Errorf("failed to encode canvas: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *Canvas) compose() {
	bounds := c.surface.Bounds()
	draw.Draw(c.surface, bounds, image.NewUniform(c.background), image.Point{}, draw.Src)

	if c.content != nil {
		draw.Draw(c.surface, bounds, c.content, c.content.Bounds().Min, draw.Over)
	}

	if c.selecting {
		c.strokeRect(c.selection)
	}
}

// strokeRect draws the outline of r inward from its edges, clipped to the surface.
func (c *Canvas) strokeRect(r image.Rectangle) {
	w := c.outlineWidth
	src := image.NewUniform(c.outline)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+w), // top
		image.Rect(r.Min.X, r.Max.Y-w, r.Max.X, r.Max.Y), // bottom
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+w, r.Max.Y), // left
		image.Rect(r.Max.X-w, r.Min.Y, r.Max.X, r.Max.Y), // right
	}
	for _, e := range edges {
		e = e.Intersect(r).Intersect(c.surface.Bounds())
		if e.Empty() {
			continue
		}
		draw.Draw(c.surface, e, src, image.Point{}, draw.Src)
	}
}
