package encoder

import (
	"bytes"
	"image"

	"golang.org/x/image/tiff"
)

// TIFFEncoder encodes images to TIFF with lossless deflate compression.
// x/image/tiff reads LZW but cannot write it; deflate is the lossless
// compression its writer offers.
type TIFFEncoder struct{}

func (e *TIFFEncoder) Format() string  { return "tiff" }
func (e *TIFFEncoder) Available() bool { return true }

func (e *TIFFEncoder) Encode(img image.Image, _ int) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(512 * 1024)

	err := tiff.Encode(&buf, img, &tiff.Options{Compression: tiff.Deflate})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
