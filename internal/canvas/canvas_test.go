package canvas

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func rgbaAt(c *Canvas, x, y int) color.RGBA {
	return c.Snapshot().RGBAAt(x, y)
}

var (
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	gray  = color.RGBA{0x80, 0x80, 0x80, 0xff}
)

func TestNew(t *testing.T) {
	c := New(120, 80)

	w, h := c.Size()
	if w != 120 || h != 80 {
		t.Errorf("Size: got %dx%d, want 120x80", w, h)
	}
	if got := rgbaAt(c, 60, 40); got != gray {
		t.Errorf("background: got %v, want %v", got, gray)
	}
	if _, ok := c.Selection(); ok {
		t.Error("new canvas should have no selection")
	}
}

func TestNew_MinimumSize(t *testing.T) {
	c := New(0, -5)
	if w, h := c.Size(); w != 1 || h != 1 {
		t.Errorf("Size: got %dx%d, want 1x1", w, h)
	}
}

func TestRender_AnchorsTopLeft(t *testing.T) {
	c := New(100, 100)
	c.Render(createInMemoryImage(30, 20, red))

	if got := rgbaAt(c, 0, 0); got != red {
		t.Errorf("(0,0): got %v, want red", got)
	}
	if got := rgbaAt(c, 29, 19); got != red {
		t.Errorf("(29,19): got %v, want red", got)
	}
	if got := rgbaAt(c, 30, 20); got != gray {
		t.Errorf("(30,20): got %v, want background", got)
	}
}

func TestRender_OffsetBounds(t *testing.T) {
	c := New(50, 50)
	src := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for y := 20; y < 40; y++ {
		for x := 20; x < 40; x++ {
			src.Set(x, y, green)
		}
	}
	c.Render(src.SubImage(image.Rect(20, 20, 40, 40)))

	if got := rgbaAt(c, 0, 0); got != green {
		t.Errorf("(0,0): got %v, want green", got)
	}
}

func TestRender_ReplacesPrevious(t *testing.T) {
	c := New(100, 100)
	c.Render(createInMemoryImage(80, 80, red))
	c.Render(createInMemoryImage(10, 10, green))

	if got := rgbaAt(c, 50, 50); got != gray {
		t.Errorf("old image still visible: got %v", got)
	}
	c.Render(nil)
	if got := rgbaAt(c, 5, 5); got != gray {
		t.Errorf("Render(nil) should clear: got %v", got)
	}
}

func TestSelection(t *testing.T) {
	c := New(100, 100, WithOutline(green, 2))
	c.Render(createInMemoryImage(100, 100, red))

	c.ShowSelection(image.Rectangle{Min: image.Pt(60, 60), Max: image.Pt(20, 20)})
	sel, ok := c.Selection()
	if !ok || sel != image.Rect(20, 20, 60, 60) {
		t.Fatalf("Selection: got %v (%v), want (20,20)-(60,60)", sel, ok)
	}

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"top edge", 40, 20, green},
		{"top edge inner", 40, 21, green},
		{"left edge", 20, 40, green},
		{"right edge", 59, 40, green},
		{"bottom edge", 40, 59, green},
		{"inside", 40, 40, red},
		{"outside", 10, 10, red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rgbaAt(c, tt.x, tt.y); got != tt.want {
				t.Errorf("(%d,%d): got %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	c.ClearSelection()
	if _, ok := c.Selection(); ok {
		t.Error("selection should be cleared")
	}
	if got := rgbaAt(c, 40, 20); got != red {
		t.Errorf("outline still drawn after clear: got %v", got)
	}
}

func TestSelection_Replaced(t *testing.T) {
	c := New(100, 100)
	c.ShowSelection(image.Rect(10, 10, 30, 30))
	c.ShowSelection(image.Rect(50, 50, 90, 90))

	if got := rgbaAt(c, 20, 10); got != gray {
		t.Errorf("previous outline still drawn: got %v", got)
	}
	if got := rgbaAt(c, 70, 50); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("new outline: got %v, want default red", got)
	}
}

func TestSelection_SurvivesRender(t *testing.T) {
	c := New(100, 100)
	c.ShowSelection(image.Rect(10, 10, 50, 50))
	c.Render(createInMemoryImage(100, 100, green))

	if got := rgbaAt(c, 30, 10); got != red {
		t.Errorf("outline: got %v, want red over the image", got)
	}
}

func TestWithBackground(t *testing.T) {
	c := New(10, 10, WithBackground(color.RGBA{0, 0, 0, 255}))
	if got := rgbaAt(c, 5, 5); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("background: got %v, want black", got)
	}
}

func TestEncodePNG(t *testing.T) {
	c := New(64, 48)
	c.Render(createInMemoryImage(10, 10, red))

	data, err := c.EncodePNG()
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
		t.Errorf("dimensions: got %dx%d, want 64x48", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestSnapshot_IsCopy(t *testing.T) {
	c := New(10, 10)
	snap := c.Snapshot()
	snap.Set(0, 0, green)

	if got := rgbaAt(c, 0, 0); got != gray {
		t.Errorf("modifying a snapshot changed the canvas: got %v", got)
	}
}
