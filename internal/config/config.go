// Package config loads TOML settings for the demo programs. Files are
// optional; absent files and absent keys fall back to defaults.
package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	FPS       int `koanf:"fps"`        // frame rate cap
	MaxColors int `koanf:"max_colors"` // palette registers to use

	Sixtop SixtopConfig `koanf:"sixtop"`
	Snake  SnakeConfig  `koanf:"snake"`
}

// SixtopConfig tunes the system monitor.
type SixtopConfig struct {
	Interval float64 `koanf:"interval"` // sample period in seconds
	History  int     `koanf:"history"`  // samples kept per graph
	View     string  `koanf:"view"`     // "all", "cpu", or "mem"
}

// SnakeConfig tunes the snake game.
type SnakeConfig struct {
	Width  int     `koanf:"width"`  // board width in cells
	Height int     `koanf:"height"` // board height in cells
	Speed  float64 `koanf:"speed"`  // moves per second
}

// Load reads config files in priority order, last wins, then applies
// defaults for anything left unset.
func Load() (*Config, error) {
	return load(configPaths())
}

// LoadFile reads a single config file. A missing file yields defaults.
func LoadFile(path string) (*Config, error) {
	return load([]string{path})
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
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
	cfg.applyDefaults()
	return cfg, nil
}

func configPaths() []string {
	paths := []string{}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "sixel", "config.toml"))
	}
	paths = append(paths, "config.toml")
	return paths
}

func (c *Config) applyDefaults() {
	if c.FPS <= 0 || c.FPS > 120 {
		c.FPS = 30
	}
	if c.MaxColors <= 0 || c.MaxColors > 256 {
		c.MaxColors = 256
	}
	if c.Sixtop.Interval <= 0 {
		c.Sixtop.Interval = 1.0
	}
	if c.Sixtop.History <= 0 {
		c.Sixtop.History = 60
	}
	switch c.Sixtop.View {
	case "all", "cpu", "mem":
	default:
		c.Sixtop.View = "all"
	}
	if c.Snake.Width <= 0 {
		c.Snake.Width = 32
	}
	if c.Snake.Height <= 0 {
		c.Snake.Height = 24
	}
	if c.Snake.Speed <= 0 {
		c.Snake.Speed = 8
	}
}
