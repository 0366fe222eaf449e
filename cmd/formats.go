package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pixport/pixport/internal/encoder"
	"github.com/pixport/pixport/internal/format"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported input and output formats",
	Args:  cobra.NoArgs,
	RunE:  runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(_ *cobra.Command, _ []string) error {
	fmt.Println()
	fmt.Printf("  Input:  %s\n", strings.Join(format.InputExtensions(), " "))
	fmt.Println()
	fmt.Println("  Output:")
	fmt.Printf("    %-6s %-12s %-8s %s\n", "name", "alpha", "quality", "compression")

	registry := encoder.NewRegistry()
	for _, name := range format.OutputFormats() {
		entry, _ := format.Lookup(name)
		note := ""
		if enc := registry.Get(entry.EncoderID); enc != nil && !enc.Available() {
			note = "  (encoder unavailable)"
		}
		fmt.Printf("    %-6s %-12s %-8s %s%s\n",
			name, yesNo(entry.Transparency), yesNo(entry.QualityParam), entry.Compression, note)
	}
	fmt.Println()
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
