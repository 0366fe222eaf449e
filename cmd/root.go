package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pixport/pixport/internal/config"
	"github.com/pixport/pixport/internal/logging"
)

var (
	version = "0.1.0"

	verbose    bool
	configPath string

	cfg *config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pixport",
	Short: "Batch raster image converter",
	Long: `pixport — converts image files between common raster formats
(PNG, JPEG, WebP, TIFF, BMP, GIF, ICO) with optional resizing, quality
control and transparency handling.

Transparent sources are flattened onto white for formats without alpha,
EXIF orientation is applied, and existing files are never overwritten.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default pixport.json)")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"pixport %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		log = logging.New(logging.Options{Verbose: verbose, File: cfg.LogFile})
		return nil
	}
	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		_ = log.Sync()
	}
}
