// Package output persists rendered frames: local image files, preview
// thumbnails and uploads to S3-compatible object storage.
package output

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// DefaultFilename matches the name the interactive viewer used for buffer dumps
const DefaultFilename = "render.bmp"

// Save writes img to filename, creating parent directories as needed.
// The encoder is picked from the extension (png, jpg, bmp, gif, tif).
func Save(img image.Image, filename string) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := imaging.Save(img, filename); err != nil {
		return fmt.Errorf("failed to save %s: %w", filename, err)
	}
	return nil
}

// Encode writes img to w in the named format ("png", "jpg", "bmp", ...)
func Encode(w io.Writer, img image.Image, format string) error {
	f, err := imaging.FormatFromExtension(format)
	if err != nil {
		return fmt.Errorf("unsupported image format %q: %w", format, err)
	}
	return imaging.Encode(w, img, f)
}

// ContentType returns the MIME type for an image format name
func ContentType(format string) string {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "bmp":
		return "image/bmp"
	case "gif":
		return "image/gif"
	case "tif", "tiff":
		return "image/tiff"
	default:
		return "image/png"
	}
}

// Thumbnail scales img down to fit inside maxSize x maxSize, keeping the aspect ratio.
// Images that already fit are returned unchanged.
func Thumbnail(img image.Image, maxSize uint) image.Image {
	return resize.Thumbnail(maxSize, maxSize, img, resize.Bilinear)
}

// FrameFilename inserts a zero-padded frame number before the extension:
// render.bmp, 3 -> render_0003.bmp
func FrameFilename(filename string, frame int) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("%s_%04d%s", strings.TrimSuffix(filename, ext), frame, ext)
}
