package encoder

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 7), G: uint8(y * 5), B: 128, A: 255})
		}
	}
	return img
}

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"jpeg", "png", "webp", "tiff", "bmp", "gif", "ico"} {
		if r.Get(id) == nil {
			t.Errorf("Get(%q) = nil", id)
		}
	}
	if r.Get("avif") != nil {
		t.Error("Get(avif): expected nil")
	}
	if r.Get("JPEG") == nil {
		t.Error("Get is not case-insensitive")
	}
}

func TestEncodeRoundtrip(t *testing.T) {
	r := NewRegistry()
	src := testImage(20, 10)

	// Formats the stdlib/x-image decoders can read back in-process.
	cases := map[string]string{
		"jpeg": "jpeg",
		"png":  "png",
		"tiff": "tiff",
		"bmp":  "bmp",
		"gif":  "gif",
	}
	for id, wantFormat := range cases {
		enc := r.Get(id)
		data, err := enc.Encode(src, 90)
		if err != nil {
			t.Fatalf("%s encode: %v", id, err)
		}
		img, format, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("%s re-decode: %v", id, err)
		}
		if format != wantFormat {
			t.Errorf("%s: re-decoded as %q", id, format)
		}
		if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
			t.Errorf("%s: dimensions %v", id, img.Bounds())
		}
	}
}

func TestJPEGQualityAffectsSize(t *testing.T) {
	enc := &JPEGEncoder{}
	src := testImage(200, 200)

	low, err := enc.Encode(src, 10)
	if err != nil {
		t.Fatalf("encode q10: %v", err)
	}
	high, err := enc.Encode(src, 100)
	if err != nil {
		t.Fatalf("encode q100: %v", err)
	}
	if len(low) >= len(high) {
		t.Errorf("q10 (%d bytes) not smaller than q100 (%d bytes)", len(low), len(high))
	}
}

func TestWebPUnavailableError(t *testing.T) {
	enc := &WebPEncoder{}
	if enc.Available() {
		t.Skip("cwebp installed; availability error path not reachable")
	}
	if _, err := enc.Encode(testImage(4, 4), 80); err == nil {
		t.Error("expected error when cwebp is missing")
	}
}
