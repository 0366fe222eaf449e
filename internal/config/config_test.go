package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	assert.Equal(t, "png", cfg.DefaultOutputFormat)
	assert.Equal(t, 95, cfg.DefaultQuality)
	assert.Equal(t, 1920, cfg.DefaultResizeWidth)
	assert.Equal(t, 1080, cfg.DefaultResizeHeight)
	assert.True(t, cfg.RememberOutputFolder)
	assert.Equal(t, "pixport.log", cfg.LogFile)
	assert.GreaterOrEqual(t, cfg.Workers, 1)
	assert.LessOrEqual(t, cfg.Workers, 8)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixport.json")
	partial := `{"default_output_format": "webp", "default_quality": 80}`
	require.NoError(t, os.WriteFile(path, []byte(partial), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// Overridden keys.
	assert.Equal(t, "webp", cfg.DefaultOutputFormat)
	assert.Equal(t, 80, cfg.DefaultQuality)
	// Missing keys fall back.
	assert.Equal(t, 1920, cfg.DefaultResizeWidth)
	assert.Equal(t, "pixport.log", cfg.LogFile)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixport.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixport.json")

	cfg, err := Load(path)
	require.NoError(t, err)
	cfg.DefaultOutputFormat = "tiff"
	cfg.LastOutputFolder = "/tmp/out"
	require.NoError(t, cfg.Save())

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tiff", again.DefaultOutputFormat)
	assert.Equal(t, "/tmp/out", again.LastOutputFolder)
	// Untouched keys keep their defaults through the roundtrip.
	assert.Equal(t, 95, again.DefaultQuality)
}
