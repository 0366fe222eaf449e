package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pixport/pixport/internal/pipeline"
	"github.com/pixport/pixport/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a directory and convert images as they appear",
	Long: `Watches the directory tree and converts every new or changed image
file with the same settings as the convert command. Stop with Ctrl-C.

Conversions run on a small worker pool; the pool size comes from the
"workers" config key (default: CPU count, capped at 8).`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&convertFormat, "format", "f", "", "output format (default from config)")
	watchCmd.Flags().StringVarP(&convertOutDir, "out", "o", "", "output directory (default: same as input)")
	watchCmd.Flags().StringVar(&convertResize, "resize", "", "best-fit resize box, e.g. 1920x1080")
	watchCmd.Flags().IntVarP(&convertQuality, "quality", "q", 0, "quality 1-100 for JPEG/WebP (default 95)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	settings, err := buildSettings()
	if err != nil {
		return err
	}

	info, err := os.Stat(args[0])
	if err != nil {
		return fmt.Errorf("watch dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("watch target %s is not a directory", args[0])
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conv := pipeline.NewConverter(log)
	w := watcher.New(conv, settings, cfg.Workers, log)

	fmt.Printf("  watching %s (Ctrl-C to stop)\n", args[0])
	return w.Run(ctx, args[0])
}
