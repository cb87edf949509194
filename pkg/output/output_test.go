package output

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func newTestImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 128, A: 255})
		}
	}
	return img
}

func TestSave_RoundTrip(t *testing.T) {
	img := newTestImage(8, 6)

	for _, name := range []string{"frame.png", "nested/dir/render.bmp"} {
		t.Run(name, func(t *testing.T) {
			filename := filepath.Join(t.TempDir(), name)
			if err := Save(img, filename); err != nil {
				t.Fatalf("Save: %v", err)
			}

			loaded, err := imaging.Open(filename)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			if loaded.Bounds().Dx() != 8 || loaded.Bounds().Dy() != 6 {
				t.Errorf("Unexpected bounds %v", loaded.Bounds())
			}

			// Lossless formats keep every pixel
			r, g, b, _ := loaded.At(3, 2).RGBA()
			if r>>8 != 30 || g>>8 != 20 || b>>8 != 128 {
				t.Errorf("Pixel (3,2) = %d %d %d", r>>8, g>>8, b>>8)
			}
		})
	}
}

func TestSave_UnsupportedExtension(t *testing.T) {
	if err := Save(newTestImage(2, 2), filepath.Join(t.TempDir(), "frame.xyz")); err == nil {
		t.Error("Expected error for unknown extension")
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, newTestImage(4, 4), "png"); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("Output is not a PNG: %v", err)
	}

	if err := Encode(&buf, newTestImage(4, 4), "webp"); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestThumbnail(t *testing.T) {
	tests := []struct {
		name          string
		w, h          int
		maxSize       uint
		expectW, expH int
	}{
		{"Landscape", 200, 100, 50, 50, 25},
		{"Portrait", 100, 400, 100, 25, 100},
		{"Already small", 20, 10, 64, 20, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			thumb := Thumbnail(newTestImage(tt.w, tt.h), tt.maxSize)
			if thumb.Bounds().Dx() != tt.expectW || thumb.Bounds().Dy() != tt.expH {
				t.Errorf("Expected %dx%d, got %v", tt.expectW, tt.expH, thumb.Bounds())
			}
		})
	}
}

func TestFrameFilename(t *testing.T) {
	tests := map[string]string{
		"render.bmp":         "render_0003.bmp",
		"out/anim.png":       "out/anim_0003.png",
		"noext":              "noext_0003",
		"dir.v2/render.jpeg": "dir.v2/render_0003.jpeg",
	}
	for input, expected := range tests {
		if got := FrameFilename(input, 3); got != expected {
			t.Errorf("FrameFilename(%q) = %q, expected %q", input, got, expected)
		}
	}
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		"png":  "image/png",
		".PNG": "image/png",
		"jpg":  "image/jpeg",
		"jpeg": "image/jpeg",
		".bmp": "image/bmp",
		"tif":  "image/tiff",
	}
	for input, expected := range tests {
		if got := ContentType(input); got != expected {
			t.Errorf("ContentType(%q) = %q, expected %q", input, got, expected)
		}
	}
}
