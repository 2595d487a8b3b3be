package config

import (
	"math"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DataDir    string `koanf:"data_dir"`    // override for the article database location
	SampleRate int    `koanf:"sample_rate"` // speaker output rate in Hz (default: 44100)

	// Media control surface (MPRIS on Linux). Enabled unless set to false.
	Mpris *bool `koanf:"mpris"`

	// Desktop notification when an article starts playing. Enabled
	// unless set to false.
	Notifications *bool `koanf:"notifications"`

	// Speed selector steps offered by the UI. Entries must be finite and
	// positive; anything else is dropped.
	Speeds []float64 `koanf:"speeds"`
}

const defaultSampleRate = 44100

func defaultSpeeds() []float64 {
	return []float64{0.5, 0.75, 1, 1.25, 1.5, 1.75, 2, 2.5, 3, 4}
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in data_dir
	if cfg.DataDir != "" {
		cfg.DataDir = expandPath(cfg.DataDir)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/earmark/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "earmark", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// MprisEnabled reports whether the media control surface should be started.
// Defaults to true when unset.
func (c *Config) MprisEnabled() bool {
	if c.Mpris == nil {
		return true
	}
	return *c.Mpris
}

// NotificationsEnabled reports whether now-playing notifications should
// be sent. Defaults to true when unset.
func (c *Config) NotificationsEnabled() bool {
	if c.Notifications == nil {
		return true
	}
	return *c.Notifications
}

// GetSampleRate returns the speaker sample rate with the default applied.
func (c *Config) GetSampleRate() int {
	if c.SampleRate <= 0 {
		return defaultSampleRate
	}
	return c.SampleRate
}

// GetSpeeds returns the speed selector steps with invalid entries dropped
// and the default ladder applied when none survive.
func (c *Config) GetSpeeds() []float64 {
	speeds := make([]float64, 0, len(c.Speeds))
	for _, s := range c.Speeds {
		if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
			continue
		}
		speeds = append(speeds, s)
	}
	if len(speeds) == 0 {
		return defaultSpeeds()
	}
	return speeds
}
