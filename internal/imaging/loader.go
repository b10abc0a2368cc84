package imaging

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/ink-tools/internal/ioerr"
)

// ErrEmptyImage is wrapped in a DecodeError when a file decodes to an image
// without pixels.
var ErrEmptyImage = errors.New("decoded image has no pixels")

// Load reads and decodes the image at path.
//
// Parameters:
//   - path: Absolute or relative file path. Supported formats are PNG, JPEG,
//     GIF, BMP and TIFF.
//
// Returns:
//   - image.Image: The decoded image with EXIF orientation applied. The
//     concrete type depends on the format (e.g., *image.NRGBA, *image.YCbCr).
//   - error: *ioerr.DecodeError if the file cannot be opened, is not a
//     supported image, or decodes to zero width or height.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &ioerr.DecodeError{Path: path, Err: err}
	}

	if img.Bounds().Empty() {
		return nil, &ioerr.DecodeError{Path: path, Err: ErrEmptyImage}
	}

	return img, nil
}

// Save encodes img to path using the format implied by its extension.
//
// The parent directory must already exist. Single-channel images are
// written as grayscale for PNG, JPEG, BMP and TIFF.
//
// Returns *ioerr.EncodeError for an unsupported extension or any I/O failure.
func Save(img image.Image, path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return &ioerr.EncodeError{Path: path, Err: fmt.Errorf("unsupported output extension %q: %w", filepath.Ext(path), err)}
	}

	if err := imaging.Save(img, path); err != nil {
		return &ioerr.EncodeError{Path: path, Err: err}
	}

	return nil
}

// FormatName returns the lower-case format name for a file path based on its
// extension: "png", "jpeg", "gif", "bmp", "tiff", or "unknown".
func FormatName(path string) string {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return "unknown"
	}
	return strings.ToLower(f.String())
}
