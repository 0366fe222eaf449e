package encoder

import (
	"bytes"
	"encoding/binary"
	"image"

	"github.com/disintegration/imaging"
)

// icoMaxSide is the largest dimension an ICO directory entry can describe.
const icoMaxSide = 256

// ICOEncoder encodes images as a single-entry ICO container with a PNG
// payload. PNG-in-ICO is valid from Windows Vista on and keeps alpha.
// Images larger than 256px on either side are scaled down to fit first.
type ICOEncoder struct{}

func (e *ICOEncoder) Format() string  { return "ico" }
func (e *ICOEncoder) Available() bool { return true }

func (e *ICOEncoder) Encode(img image.Image, _ int) ([]byte, error) {
	b := img.Bounds()
	if b.Dx() > icoMaxSide || b.Dy() > icoMaxSide {
		img = imaging.Fit(img, icoMaxSide, icoMaxSide, imaging.Lanczos)
		b = img.Bounds()
	}

	payload, err := (&PNGEncoder{}).Encode(img, 0)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	buf.Grow(22 + len(payload))

	// ICONDIR header.
	binary.Write(buf, binary.LittleEndian, uint16(0)) // reserved
	binary.Write(buf, binary.LittleEndian, uint16(1)) // type: icon
	binary.Write(buf, binary.LittleEndian, uint16(1)) // image count

	// ICONDIRENTRY. A width/height byte of 0 means 256.
	w, h := b.Dx(), b.Dy()
	bw, bh := byte(w), byte(h)
	if w >= icoMaxSide {
		bw = 0
	}
	if h >= icoMaxSide {
		bh = 0
	}
	buf.WriteByte(bw)
	buf.WriteByte(bh)
	buf.WriteByte(0)                                   // palette size
	buf.WriteByte(0)                                   // reserved
	binary.Write(buf, binary.LittleEndian, uint16(1))  // color planes
	binary.Write(buf, binary.LittleEndian, uint16(32)) // bits per pixel
	binary.Write(buf, binary.LittleEndian, uint32(len(payload)))
	binary.Write(buf, binary.LittleEndian, uint32(22)) // 6 header + 16 entry

	buf.Write(payload)
	return buf.Bytes(), nil
}
