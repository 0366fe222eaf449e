package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pixport/pixport/internal/pipeline"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show decoded properties of an image file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, args []string) error {
	info, err := pipeline.Probe(args[0])
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Path:        %s\n", info.Path)
	fmt.Printf("  Format:      %s\n", info.Format)
	fmt.Printf("  Dimensions:  %dx%d\n", info.Width, info.Height)
	fmt.Printf("  Size:        %s\n", formatBytes(info.Size))
	fmt.Printf("  Alpha:       %s\n", yesNo(info.HasAlpha))
	fmt.Printf("  Orientation: %d\n", info.Orientation)
	fmt.Printf("  Hash:        %s\n", info.ContentHash)
	fmt.Println()
	return nil
}

// formatBytes renders a byte count in human-readable units.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
