package format

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// IsImageFile reports whether path is plausibly a raster image: the
// extension must be in the supported input set, and when the file is
// readable its sniffed MIME type must look like an image. The MIME check is
// best-effort; an unreadable file falls back to the extension verdict. The
// pipeline repeats its own authoritative extension check before decoding,
// so this is only a pre-filter.
func IsImageFile(path string) bool {
	if !SupportedInputExt(filepath.Ext(path)) {
		return false
	}
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return true
	}
	return strings.HasPrefix(mt.String(), "image/")
}

// FilterImages returns the subset of paths that are regular files and pass
// IsImageFile, preserving order.
func FilterImages(paths []string) []string {
	var images []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || info.IsDir() {
			continue
		}
		if IsImageFile(p) {
			images = append(images, p)
		}
	}
	return images
}
