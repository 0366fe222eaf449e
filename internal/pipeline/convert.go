// Package pipeline implements the single-file conversion pipeline and the
// sequential batch worker that drives it.
package pipeline

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/pixport/pixport/internal/encoder"
	"github.com/pixport/pixport/internal/format"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Converter runs the conversion pipeline for one file at a time. It is safe
// for concurrent use: the capability table and encoder registry are
// read-only, and every invocation owns its decoded buffer exclusively.
type Converter struct {
	registry *encoder.Registry
	log      *zap.Logger
}

// NewConverter creates a converter. log may be nil.
func NewConverter(log *zap.Logger) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Converter{
		registry: encoder.NewRegistry(),
		log:      log,
	}
}

// Convert runs the full pipeline for inputPath and returns the written
// output path. Every failure is an *Error carrying its Kind; the first
// failing gate aborts the remaining steps.
func (c *Converter) Convert(inputPath string, s Settings) (string, error) {
	// Gate 1: existence and input format.
	if _, err := os.Stat(inputPath); err != nil {
		if os.IsNotExist(err) {
			return "", newError(KindInputNotFound, inputPath, err)
		}
		return "", newError(KindIO, inputPath, err)
	}
	ext := filepath.Ext(inputPath)
	if !format.SupportedInputExt(ext) {
		return "", newError(KindUnsupportedInput, inputPath,
			fmt.Errorf("extension %q not supported", ext))
	}

	// Gate 2: output format must resolve before any decode work begins.
	entry, ok := format.Lookup(s.Format)
	if !ok {
		return "", newError(KindUnsupportedOutput, inputPath,
			fmt.Errorf("no capability entry for %q", s.Format))
	}

	// Gate 3: claim the output path, with collision-avoiding suffix. The
	// still-empty claim is released again if a later gate fails.
	outFile, outputPath, err := claimOutputPath(inputPath, s.OutputDir, entry.Extension)
	if err != nil {
		return "", newError(KindIO, inputPath, err)
	}
	claimed := true
	defer func() {
		if claimed {
			outFile.Close()
			os.Remove(outputPath)
		}
	}()

	// Gate 4: decode. The raw bytes are read once and reused for the EXIF
	// orientation probe.
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return "", newError(KindIO, inputPath, err)
	}
	img, srcFormat, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", newError(KindDecode, inputPath, err)
	}

	// Gate 5: transparency normalization. Formats without alpha get the
	// source composited onto an opaque white background.
	if !entry.Transparency && encoder.HasAlpha(img) {
		img = encoder.FlattenWhite(img)
	}

	// Gate 6: orientation correction.
	if o := readOrientation(raw); o != orientationUpright {
		c.log.Debug("correcting orientation",
			zap.String("file", inputPath), zap.Int("orientation", o))
		img = applyOrientation(img, o)
	}

	// Gate 7: optional best-fit resize.
	if s.Resize && s.ResizeWidth > 0 && s.ResizeHeight > 0 {
		b := img.Bounds()
		w, h := fitDimensions(b.Dx(), b.Dy(), s.ResizeWidth, s.ResizeHeight)
		img = imaging.Resize(img, w, h, imaging.Lanczos)
	}

	// Gate 8: encode and write.
	enc := c.registry.Get(entry.EncoderID)
	if enc == nil {
		return "", newError(KindUnsupportedOutput, inputPath,
			fmt.Errorf("no encoder registered for %q", entry.EncoderID))
	}
	data, err := enc.Encode(img, s.Quality)
	if err != nil {
		return "", newError(KindEncode, inputPath, err)
	}
	// Bytes follow. A partially written destination is left in place for
	// caller inspection.
	claimed = false
	if _, err := outFile.Write(data); err != nil {
		outFile.Close()
		return "", newError(KindEncode, inputPath, err)
	}
	if err := outFile.Close(); err != nil {
		return "", newError(KindIO, inputPath, err)
	}

	c.log.Info("converted",
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.String("from", srcFormat),
		zap.String("to", s.Format),
		zap.Int("bytes", len(data)))

	return outputPath, nil
}

// fitDimensions computes the best-fit size that preserves aspect ratio
// within the target box: the same scale factor applies to both axes, so the
// result touches the box on at least one axis. Upscaling is allowed.
func fitDimensions(srcW, srcH, targetW, targetH int) (int, int) {
	scale := math.Min(
		float64(targetW)/float64(srcW),
		float64(targetH)/float64(srcH),
	)
	w := int(math.Round(float64(srcW) * scale))
	h := int(math.Round(float64(srcH) * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
