// Package imageio loads and saves images, choosing the format from the file
// extension: .png, .jpg/.jpeg, .gif, .tif/.tiff and .bmp.
package imageio

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Load decodes the image at path, applying any EXIF orientation.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	return img, nil
}

// Save encodes img in the format implied by path's extension and writes it.
// An unknown extension fails with imaging.ErrUnsupportedFormat before any file
// is created.
func Save(img image.Image, path string) error {
	err := imaging.Save(img, path)
	if err != nil {
		return fmt.Errorf("failed writing %s: %w", path, err)
	}

	return nil
}

// Supported reports whether path has an extension Save can encode.
func Supported(path string) bool {
	_, err := imaging.FormatFromFilename(path)
	return err == nil
}
