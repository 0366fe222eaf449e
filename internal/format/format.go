// Package format holds the static output-format capability table and the
// supported-input extension set. Entries are fixed at process start and
// safe to consult from any number of goroutines.
package format

import (
	"sort"
	"strings"
)

// Capability describes what an output format supports.
type Capability struct {
	// EncoderID is the codec identity to dispatch to (see internal/encoder).
	EncoderID string
	// Extension is the file extension without dot, as written to disk.
	Extension string
	// Transparency reports whether the format can carry an alpha channel.
	Transparency bool
	// QualityParam reports whether the encoder honors a 1-100 quality value.
	QualityParam bool
	// Compression is the codec-specific compression hint.
	Compression string
}

// capabilities is keyed by lower-cased format name.
var capabilities = map[string]Capability{
	"png":  {EncoderID: "png", Extension: "png", Transparency: true, QualityParam: false, Compression: "best"},
	"jpg":  {EncoderID: "jpeg", Extension: "jpg", Transparency: false, QualityParam: true, Compression: "optimized"},
	"jpeg": {EncoderID: "jpeg", Extension: "jpeg", Transparency: false, QualityParam: true, Compression: "optimized"},
	"webp": {EncoderID: "webp", Extension: "webp", Transparency: true, QualityParam: true, Compression: "method-6"},
	"tiff": {EncoderID: "tiff", Extension: "tiff", Transparency: false, QualityParam: false, Compression: "deflate"},
	"bmp":  {EncoderID: "bmp", Extension: "bmp", Transparency: false, QualityParam: false, Compression: "none"},
	"gif":  {EncoderID: "gif", Extension: "gif", Transparency: true, QualityParam: false, Compression: "none"},
	"ico":  {EncoderID: "ico", Extension: "ico", Transparency: true, QualityParam: false, Compression: "none"},
}

// inputExtensions lists recognized raster input extensions, lower-cased
// with leading dot. This is the decodable set: every entry has a registered
// image decoder.
var inputExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
	".webp": true,
}

// Lookup returns the capability entry for an output format name.
func Lookup(name string) (Capability, bool) {
	c, ok := capabilities[strings.ToLower(name)]
	return c, ok
}

// OutputFormats returns all output format names in sorted order.
func OutputFormats() []string {
	names := make([]string, 0, len(capabilities))
	for name := range capabilities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SupportedInputExt reports whether ext (with leading dot, any case) is in
// the supported input set.
func SupportedInputExt(ext string) bool {
	return inputExtensions[strings.ToLower(ext)]
}

// InputExtensions returns the supported input extensions in sorted order.
func InputExtensions() []string {
	exts := make([]string, 0, len(inputExtensions))
	for ext := range inputExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
