package imaging

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createTestImage writes a solid-color PNG to a temp dir and returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test-image.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, createInMemoryImage(width, height, c)); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestNewBackend_JPEGQuality(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{90, 90},
		{1, 1},
		{100, 100},
		{0, DefaultJPEGQuality},
		{101, DefaultJPEGQuality},
	}
	for _, tt := range tests {
		if got := NewBackend(tt.in).jpegQuality; got != tt.want {
			t.Errorf("NewBackend(%d).jpegQuality = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDecode(t *testing.T) {
	b := NewBackend(DefaultJPEGQuality)
	path := createTestImage(t, 100, 80, color.RGBA{255, 0, 0, 255})

	img, err := b.Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 80 {
		t.Errorf("dimensions: got %dx%d, want 100x80", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestDecode_Errors(t *testing.T) {
	b := NewBackend(DefaultJPEGQuality)
	dir := t.TempDir()

	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write garbage file: %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"missing file", filepath.Join(dir, "missing.png")},
		{"not an image", garbage},
		{"directory", dir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := b.Decode(tt.path); err == nil {
				t.Errorf("Decode(%q) should fail", tt.path)
			}
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	b := NewBackend(DefaultJPEGQuality)
	img := createPatternImage(40, 30)

	for _, ext := range []string{".png", ".bmp", ".gif"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out"+ext)
			if err := b.Encode(img, path); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			decoded, err := b.Decode(path)
			if err != nil {
				t.Fatalf("Decode of encoded file failed: %v", err)
			}
			if decoded.Bounds().Dx() != 40 || decoded.Bounds().Dy() != 30 {
				t.Errorf("dimensions: got %dx%d, want 40x30", decoded.Bounds().Dx(), decoded.Bounds().Dy())
			}
			if got := nrgbaAt(decoded, 35, 25); got != (color.NRGBA{255, 255, 255, 255}) {
				t.Errorf("bottom-right pixel: got %v, want white", got)
			}
		})
	}
}

func TestEncode_JPEG(t *testing.T) {
	b := NewBackend(90)
	path := filepath.Join(t.TempDir(), "out.JPG")

	if err := b.Encode(createInMemoryImage(32, 32, color.RGBA{200, 100, 50, 255}), path); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := b.Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	got := nrgbaAt(decoded, 16, 16)
	if absDiff(got.R, 200) > 8 || absDiff(got.G, 100) > 8 || absDiff(got.B, 50) > 8 {
		t.Errorf("JPEG color: got %v, want ~(200,100,50)", got)
	}
}

func TestEncode_Errors(t *testing.T) {
	b := NewBackend(DefaultJPEGQuality)
	img := createInMemoryImage(10, 10, color.RGBA{0, 0, 0, 255})
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{
		{"unsupported extension", filepath.Join(dir, "out.xyz")},
		{"no extension", filepath.Join(dir, "out")},
		{"missing directory", filepath.Join(dir, "missing", "out.png")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := b.Encode(img, tt.path); err == nil {
				t.Errorf("Encode(%q) should fail", tt.path)
			}
			if _, err := os.Stat(tt.path); !os.IsNotExist(err) {
				t.Errorf("failed Encode left a file at %s", tt.path)
			}
		})
	}
}

func TestEncode_WriteProtectedDestination(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	b := NewBackend(DefaultJPEGQuality)
	path := filepath.Join(t.TempDir(), "locked.png")
	if err := os.WriteFile(path, []byte("keep me"), 0o444); err != nil {
		t.Fatalf("failed to write locked file: %v", err)
	}

	if err := b.Encode(createPatternImage(10, 10), path); err == nil {
		t.Fatal("Encode over a write-protected file should fail")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "keep me" {
		t.Errorf("contents: got %q, want %q", data, "keep me")
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0o444 {
		t.Errorf("mode: got %v, want -r--r--r--", info.Mode().Perm())
	}
}

func TestEncode_OverwritesInPlace(t *testing.T) {
	b := NewBackend(DefaultJPEGQuality)
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	if err := os.WriteFile(path, []byte("old contents"), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if err := b.Encode(createPatternImage(10, 10), path); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if _, err := b.Decode(path); err != nil {
		t.Errorf("overwritten file does not decode: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("mode: got %v, want -rw-------", info.Mode().Perm())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries, want 1", len(entries))
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
