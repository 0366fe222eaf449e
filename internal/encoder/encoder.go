package encoder

import (
	"image"
)

// Encoder encodes an image to a specific output codec.
type Encoder interface {
	// Format returns the codec identity (e.g. "jpeg", "png", "webp").
	Format() string

	// Encode converts the image to bytes. quality is 1-100; encoders
	// without a quality parameter ignore it. A quality of 0 selects the
	// encoder default.
	Encode(img image.Image, quality int) ([]byte, error)

	// Available returns true if the encoder is ready to use.
	// External encoders (cwebp) may not be installed.
	Available() bool
}
