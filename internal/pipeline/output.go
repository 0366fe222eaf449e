package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// claimOutputPath computes the destination path for inputPath converted to
// the given extension and claims it by creating the file exclusively. The
// directory is outputDir when non-empty, otherwise the input's own
// directory; it is created recursively if absent.
//
// Collision policy: if the computed path is taken, append _1, _2, ... — the
// lowest free suffix wins. The O_EXCL create makes the claim atomic, so two
// concurrent conversions with the same stem can never pick the same path.
// The caller owns the returned handle and must close it.
func claimOutputPath(inputPath, outputDir, ext string) (*os.File, string, error) {
	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "", fmt.Errorf("create output dir %s: %w", dir, err)
	}

	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	candidate := filepath.Join(dir, stem+"."+ext)
	for counter := 1; ; counter++ {
		f, err := os.OpenFile(candidate, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err == nil {
			return f, candidate, nil
		}
		if !os.IsExist(err) {
			return nil, "", fmt.Errorf("claim output path: %w", err)
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d.%s", stem, counter, ext))
	}
}
