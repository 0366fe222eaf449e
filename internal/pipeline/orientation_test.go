package pipeline

import (
	"image"
	"image/color"
	"testing"
)

// marker builds a 2x1 image: red at (0,0), blue at (1,0).
func marker() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 0, color.NRGBA{B: 255, A: 255})
	return img
}

func redAt(t *testing.T, img image.Image, x, y int) bool {
	t.Helper()
	r, _, b, _ := img.At(x, y).RGBA()
	return r > b
}

func TestApplyOrientationUprightIsIdentity(t *testing.T) {
	src := marker()
	out := applyOrientation(src, 1)
	if out != image.Image(src) {
		t.Error("orientation 1 should pass the image through unchanged")
	}
}

func TestApplyOrientationTransforms(t *testing.T) {
	// For each orientation value, where the red marker pixel ends up.
	cases := []struct {
		orientation int
		w, h        int
		redX, redY  int
	}{
		{2, 2, 1, 1, 0}, // horizontal flip
		{3, 2, 1, 1, 0}, // 180°
		{4, 2, 1, 0, 0}, // vertical flip
		{5, 1, 2, 0, 0}, // transpose
		{6, 1, 2, 0, 0}, // 90° CW
		{7, 1, 2, 0, 1}, // transverse
		{8, 1, 2, 0, 1}, // 90° CCW
	}
	for _, tc := range cases {
		out := applyOrientation(marker(), tc.orientation)
		b := out.Bounds()
		if b.Dx() != tc.w || b.Dy() != tc.h {
			t.Errorf("orientation %d: got %dx%d, want %dx%d",
				tc.orientation, b.Dx(), b.Dy(), tc.w, tc.h)
			continue
		}
		if !redAt(t, out, tc.redX, tc.redY) {
			t.Errorf("orientation %d: red marker not at (%d,%d)",
				tc.orientation, tc.redX, tc.redY)
		}
	}
}

func TestReadOrientationWithoutEXIF(t *testing.T) {
	if got := readOrientation([]byte("no exif here")); got != orientationUpright {
		t.Errorf("got %d, want %d", got, orientationUpright)
	}
}
