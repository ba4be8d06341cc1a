package surface

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
)

// ErrSizeMismatch is returned when a circuit and its function map differ in size.
var ErrSizeMismatch = errors.New("surface: image sizes differ")

// Decode reads a PNG or BMP image
func Decode(r io.Reader) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(src), nil
}

// Load opens and decodes an image file
func Load(path string) (*Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image '%s': %w", path, err)
	}
	return img, nil
}

// SameSize returns ErrSizeMismatch unless a and b have identical dimensions.
func SameSize(a, b *Image) error {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch, a.Width(), a.Height(), b.Width(), b.Height())
	}
	return nil
}
