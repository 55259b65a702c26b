// Package output writes the final preview image, picking the encoder from
// the file extension.
package output

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// JPEGQuality is used for .jpg/.jpeg output.
const JPEGQuality = 95

// Write encodes img to path as PNG, JPEG or WebP depending on the
// extension, creating parent directories as needed. Nothing is written
// when the format is unsupported.
func Write(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp":
	default:
		return fmt.Errorf("output: unsupported format %q", ext)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("output: mkdir %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}
	defer f.Close()

	switch ext {
	case ".png":
		err = png.Encode(f, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: JPEGQuality})
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	}
	if err != nil {
		return fmt.Errorf("output: encode %s: %w", path, err)
	}
	return nil
}
