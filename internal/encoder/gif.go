package encoder

import (
	"bytes"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
)

// GIFEncoder encodes images to GIF with encoder defaults.
// The standard encoder quantizes true-color input to a 256-color palette.
type GIFEncoder struct{}

func (e *GIFEncoder) Format() string  { return "gif" }
func (e *GIFEncoder) Available() bool { return true }

func (e *GIFEncoder) Encode(img image.Image, _ int) ([]byte, error) {
	// The default quantizer drops alpha, so transparent sources go through
	// a palette that reserves one fully transparent slot.
	if HasAlpha(img) {
		img = transparentPaletted(img)
	}
	var buf bytes.Buffer
	if err := gif.Encode(&buf, img, &gif.Options{NumColors: 256}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// transparentPaletted quantizes img to 255 opaque colors plus a transparent
// entry at index 0. GIF transparency is binary: pixels below half alpha map
// to the transparent slot, the rest to their nearest palette color.
func transparentPaletted(img image.Image) *image.Paletted {
	pal := make(color.Palette, 0, 256)
	pal = append(pal, color.NRGBA{})
	pal = append(pal, palette.Plan9[:255]...)

	b := img.Bounds()
	dst := image.NewPaletted(b, pal)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.At(x, y)
			if _, _, _, a := c.RGBA(); a < 0x8000 {
				dst.SetColorIndex(x, y, 0)
				continue
			}
			dst.Set(x, y, c)
		}
	}
	return dst
}
