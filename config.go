package easel

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Default configuration values.
const (
	DefaultHistoryLimit  = 100
	DefaultSurfaceWidth  = 800
	DefaultSurfaceHeight = 600
)

// Config holds host-tunable editor settings.
type Config struct {
	// HistoryLimit caps how many states the undo stack retains; the
	// oldest states are evicted first. Zero or negative means unlimited.
	HistoryLimit int `toml:"history_limit"`
	// Autosave names the document that Editor.SaveAs uses when called
	// with an empty name. Empty disables the default.
	Autosave string        `toml:"autosave"`
	Surface  SurfaceConfig `toml:"surface"`
}

// SurfaceConfig holds the drawing surface dimensions used by alignment.
type SurfaceConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// DefaultConfig returns a Config populated with default values.
func DefaultConfig() *Config {
	return &Config{
		HistoryLimit: DefaultHistoryLimit,
		Surface: SurfaceConfig{
			Width:  DefaultSurfaceWidth,
			Height: DefaultSurfaceHeight,
		},
	}
}

// LoadConfig reads a TOML configuration file and merges it over the
// defaults. A missing file is not an error: the defaults are returned so
// the editor always starts with a usable configuration.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		Logger().Debug("config: file not found, using defaults", "path", path)
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		Logger().Warn("config: unrecognized keys", "path", path, "keys", fmt.Sprint(undecoded))
	}
	Logger().Debug("config: loaded", "path", path)
	return cfg, nil
}
