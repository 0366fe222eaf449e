package encoder

import (
	"image"
	"image/color"
	"image/draw"
)

// HasAlpha reports whether any pixel of img is not fully opaque. Common
// concrete types get a fast path over the raw pixel buffer; everything else
// (including palette images with transparent entries) goes through At().
func HasAlpha(img image.Image) bool {
	switch src := img.(type) {
	case *image.NRGBA:
		for i := 3; i < len(src.Pix); i += 4 {
			if src.Pix[i] < 255 {
				return true
			}
		}
		return false
	case *image.RGBA:
		for i := 3; i < len(src.Pix); i += 4 {
			if src.Pix[i] < 255 {
				return true
			}
		}
		return false
	case *image.Paletted:
		// Only palette entries actually referenced matter, but scanning the
		// palette is cheap and a false positive just costs one flatten pass.
		for _, c := range src.Palette {
			if _, _, _, a := c.RGBA(); a < 65535 {
				return true
			}
		}
		return false
	case *image.YCbCr, *image.Gray, *image.Gray16, *image.CMYK:
		return false
	default:
		bounds := img.Bounds()
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				_, _, _, a := img.At(x, y).RGBA()
				if a < 65535 {
					return true
				}
			}
		}
		return false
	}
}

// FlattenWhite composites img over an opaque white background using the
// source alpha channel as the blend mask, returning an RGB-only buffer.
func FlattenWhite(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, bounds, img, bounds.Min, draw.Over)
	return dst
}
