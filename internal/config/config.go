// Package config loads and persists application settings from a JSON file,
// merged over built-in defaults so missing keys fall back safely.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/viper"
)

// DefaultFile is the config path used when none is given.
const DefaultFile = "pixport.json"

// Config is the persisted application configuration.
type Config struct {
	DefaultOutputFormat  string `mapstructure:"default_output_format"`
	DefaultQuality       int    `mapstructure:"default_quality"`
	DefaultResizeWidth   int    `mapstructure:"default_resize_width"`
	DefaultResizeHeight  int    `mapstructure:"default_resize_height"`
	RememberOutputFolder bool   `mapstructure:"remember_output_folder"`
	LastOutputFolder     string `mapstructure:"last_output_folder"`
	LogFile              string `mapstructure:"log_file"`

	// Workers bounds watch-mode concurrency. Batch conversion is always
	// sequential; this knob never affects it.
	Workers int `mapstructure:"workers"`

	path string
}

// defaultWorkers caps the watch-mode pool for memory reasons.
func defaultWorkers() int {
	n := runtime.NumCPU()
	if n > 8 {
		return 8
	}
	if n < 1 {
		return 1
	}
	return n
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("default_output_format", "png")
	v.SetDefault("default_quality", 95)
	v.SetDefault("default_resize_width", 1920)
	v.SetDefault("default_resize_height", 1080)
	v.SetDefault("remember_output_folder", true)
	v.SetDefault("last_output_folder", "")
	v.SetDefault("log_file", "pixport.log")
	v.SetDefault("workers", defaultWorkers())
}

// Load reads the config file at path (DefaultFile when empty). A missing
// file is not an error: defaults apply. A present but unparsable file is.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.path = path
	return &cfg, nil
}

// Save writes the configuration back to the file it was loaded from.
func (c *Config) Save() error {
	v := viper.New()
	v.Set("default_output_format", c.DefaultOutputFormat)
	v.Set("default_quality", c.DefaultQuality)
	v.Set("default_resize_width", c.DefaultResizeWidth)
	v.Set("default_resize_height", c.DefaultResizeHeight)
	v.Set("remember_output_folder", c.RememberOutputFolder)
	v.Set("last_output_folder", c.LastOutputFolder)
	v.Set("log_file", c.LogFile)
	v.Set("workers", c.Workers)

	v.SetConfigFile(c.path)
	v.SetConfigType("json")
	if err := v.WriteConfigAs(c.path); err != nil {
		return fmt.Errorf("write config %s: %w", c.path, err)
	}
	return nil
}
