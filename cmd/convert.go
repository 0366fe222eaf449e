package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pixport/pixport/internal/format"
	"github.com/pixport/pixport/internal/pipeline"
)

var (
	convertFormat  string
	convertOutDir  string
	convertResize  string
	convertQuality int
)

var convertCmd = &cobra.Command{
	Use:   "convert <files...>",
	Short: "Convert image files to another raster format",
	Long: `Converts the given image files sequentially. Each file either succeeds
or fails on its own; a failure never stops the rest of the batch.

The output directory defaults to each source file's own directory. When a
destination name is taken, _1, _2, ... suffixes are tried in order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "", "output format (default from config)")
	convertCmd.Flags().StringVarP(&convertOutDir, "out", "o", "", "output directory (default: same as input)")
	convertCmd.Flags().StringVar(&convertResize, "resize", "", "best-fit resize box, e.g. 1920x1080")
	convertCmd.Flags().IntVarP(&convertQuality, "quality", "q", 0, "quality 1-100 for JPEG/WebP (default 95)")
	rootCmd.AddCommand(convertCmd)
}

// parseResize parses "WxH" into a width/height pair.
func parseResize(s string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("resize box %q: want WxH", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("resize width %q: %w", parts[0], err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("resize height %q: %w", parts[1], err)
	}
	return w, h, nil
}

func buildSettings() (pipeline.Settings, error) {
	s := pipeline.Settings{
		Format:    convertFormat,
		OutputDir: convertOutDir,
		Quality:   convertQuality,
	}
	if s.Format == "" {
		s.Format = cfg.DefaultOutputFormat
	}
	if s.OutputDir == "" && cfg.RememberOutputFolder && cfg.LastOutputFolder != "" {
		s.OutputDir = cfg.LastOutputFolder
	}
	if convertResize != "" {
		w, h, err := parseResize(convertResize)
		if err != nil {
			return s, err
		}
		s.Resize = true
		s.ResizeWidth = w
		s.ResizeHeight = h
	}
	return s, s.Validate()
}

func runConvert(cmd *cobra.Command, args []string) error {
	settings, err := buildSettings()
	if err != nil {
		return err
	}

	files := format.FilterImages(args)
	skipped := len(args) - len(files)
	if len(files) == 0 {
		return fmt.Errorf("none of the %d given paths are supported image files", len(args))
	}
	if skipped > 0 {
		fmt.Printf("  skipping %d non-image path(s)\n", skipped)
	}

	// Ctrl-C stops the batch between files.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conv := pipeline.NewConverter(log)
	worker := pipeline.NewWorker(conv, log)

	var report pipeline.Report
	for ev := range worker.Run(ctx, files, settings) {
		switch e := ev.(type) {
		case pipeline.Progress:
			fmt.Printf("  [%d/%d] %s\n", e.Index+1, e.Total, filepath.Base(e.Path))
		case pipeline.Complete:
			report = e.Report
		case pipeline.BatchError:
			return fmt.Errorf("batch failed: %w", e.Err)
		}
	}

	printReport(report)

	if cfg.RememberOutputFolder && convertOutDir != "" {
		cfg.LastOutputFolder = convertOutDir
		if err := cfg.Save(); err != nil {
			log.Warn("could not save config", zap.Error(err))
		}
	}

	if failed := report.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d of %d files failed", len(failed), report.Total)
	}
	return nil
}

func printReport(r pipeline.Report) {
	fmt.Println()
	if r.Cancelled {
		fmt.Printf("  ✗ Cancelled after %d of %d files\n", len(r.Results), r.Total)
	}
	fmt.Printf("  ✓ Converted %d/%d files in %s\n", r.Succeeded, r.Total, r.Elapsed.Round(time.Millisecond))

	failed := r.Failed()
	if len(failed) > 0 {
		fmt.Printf("  ✗ Failed (%d):\n", len(failed))
		for _, f := range failed {
			fmt.Printf("    • %s — %s\n", filepath.Base(f.Input), pipeline.KindOf(f.Err))
		}
	}
	fmt.Println()
}
