package encoder

import (
	"bytes"
	"encoding/binary"
	"image/png"
	"testing"
)

func TestICOContainerLayout(t *testing.T) {
	enc := &ICOEncoder{}
	data, err := enc.Encode(testImage(32, 16), 0)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(data) < 22 {
		t.Fatalf("too short: %d bytes", len(data))
	}

	if got := binary.LittleEndian.Uint16(data[0:2]); got != 0 {
		t.Errorf("reserved: got %d", got)
	}
	if got := binary.LittleEndian.Uint16(data[2:4]); got != 1 {
		t.Errorf("type: got %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint16(data[4:6]); got != 1 {
		t.Errorf("count: got %d, want 1", got)
	}
	if data[6] != 32 || data[7] != 16 {
		t.Errorf("entry dimensions: got %dx%d", data[6], data[7])
	}

	size := binary.LittleEndian.Uint32(data[14:18])
	offset := binary.LittleEndian.Uint32(data[18:22])
	if offset != 22 {
		t.Errorf("payload offset: got %d, want 22", offset)
	}
	if int(offset+size) != len(data) {
		t.Errorf("payload size %d + offset %d != total %d", size, offset, len(data))
	}

	// The payload is a decodable PNG with the entry's dimensions.
	img, err := png.Decode(bytes.NewReader(data[offset:]))
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 16 {
		t.Errorf("payload dimensions: %v", img.Bounds())
	}
}

func TestICODownscalesOversized(t *testing.T) {
	enc := &ICOEncoder{}
	data, err := enc.Encode(testImage(512, 512), 0)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// 256px is encoded as 0 in the directory entry.
	if data[6] != 0 || data[7] != 0 {
		t.Errorf("entry dimensions: got %dx%d, want 0x0 (=256)", data[6], data[7])
	}
	img, err := png.Decode(bytes.NewReader(data[22:]))
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if img.Bounds().Dx() != 256 || img.Bounds().Dy() != 256 {
		t.Errorf("payload dimensions: %v", img.Bounds())
	}
}
