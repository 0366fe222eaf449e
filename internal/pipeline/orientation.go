package pipeline

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// orientationUpright is the EXIF orientation value for an image that needs
// no correction. Values 2-8 describe the flip/rotation that was applied at
// capture time and must be undone.
const orientationUpright = 1

// readOrientation extracts the EXIF orientation tag from raw file bytes.
// Sources without EXIF (PNG, BMP, ...) or without the tag report upright.
func readOrientation(raw []byte) int {
	x, err := exif.Decode(bytes.NewReader(raw))
	if err != nil {
		return orientationUpright
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return orientationUpright
	}
	o, err := tag.Int(0)
	if err != nil || o < 1 || o > 8 {
		return orientationUpright
	}
	return o
}

// applyOrientation physically rotates/flips pixel data to the upright
// orientation. Idempotent for orientation 1: the image passes through
// unchanged, and the decoded pixels carry no metadata to discard.
func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}
