package pipeline

import (
	"bytes"
	"image"
	"os"
	"path/filepath"

	"github.com/pixport/pixport/internal/encoder"
	"github.com/pixport/pixport/internal/format"
	"github.com/pixport/pixport/internal/hasher"
)

// Info describes a decoded image file without converting it.
type Info struct {
	Path        string
	Format      string
	Width       int
	Height      int
	Size        int64
	HasAlpha    bool
	Orientation int
	ContentHash string
}

// Probe decodes just enough of the file at path to describe it.
func Probe(path string) (*Info, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newError(KindInputNotFound, path, err)
		}
		return nil, newError(KindIO, path, err)
	}
	ext := filepath.Ext(path)
	if !format.SupportedInputExt(ext) {
		return nil, newError(KindUnsupportedInput, path, nil)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, newError(KindIO, path, err)
	}
	img, srcFormat, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, newError(KindDecode, path, err)
	}

	b := img.Bounds()
	return &Info{
		Path:        path,
		Format:      srcFormat,
		Width:       b.Dx(),
		Height:      b.Dy(),
		Size:        fi.Size(),
		HasAlpha:    encoder.HasAlpha(img),
		Orientation: readOrientation(raw),
		ContentHash: hasher.ContentHash(raw, 16),
	}, nil
}
