package pipeline

import (
	"fmt"

	"github.com/pixport/pixport/internal/format"
)

// Dimension bounds for resize targets.
const (
	MinDimension = 1
	MaxDimension = 65535
)

// Settings holds the per-batch conversion parameters. A Settings value is
// immutable from the worker's perspective once a batch starts.
type Settings struct {
	// Format is the requested output format name (capability table key).
	Format string

	// OutputDir is the destination directory. Empty means the source
	// file's own directory.
	OutputDir string

	// Resize enables best-fit scaling into ResizeWidth x ResizeHeight.
	Resize       bool
	ResizeWidth  int
	ResizeHeight int

	// Quality is 1-100 for encoders with a quality parameter; 0 selects
	// the default (95).
	Quality int
}

// Validate checks static constraints that do not touch the filesystem.
func (s Settings) Validate() error {
	if _, ok := format.Lookup(s.Format); !ok {
		return fmt.Errorf("unknown output format %q", s.Format)
	}
	if s.Resize {
		if s.ResizeWidth < MinDimension || s.ResizeWidth > MaxDimension ||
			s.ResizeHeight < MinDimension || s.ResizeHeight > MaxDimension {
			return fmt.Errorf("resize target %dx%d out of range [%d, %d]",
				s.ResizeWidth, s.ResizeHeight, MinDimension, MaxDimension)
		}
	}
	if s.Quality < 0 || s.Quality > 100 {
		return fmt.Errorf("quality %d out of range: want 0 (default) or 1-100", s.Quality)
	}
	return nil
}
