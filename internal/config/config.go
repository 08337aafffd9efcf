// Package config loads the editor's settings from the environment, reading a
// .env file first when one is present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every tunable of the editor.
type Config struct {
	LogLevel string `env:"PHOTO_EDITOR_LOG_LEVEL" envDefault:"info"`

	Canvas CanvasConfig
	Output OutputConfig
}

// CanvasConfig sizes and colors the display surface.
type CanvasConfig struct {
	Width        int    `env:"PHOTO_EDITOR_CANVAS_WIDTH"  envDefault:"980"`
	Height       int    `env:"PHOTO_EDITOR_CANVAS_HEIGHT" envDefault:"680"`
	Background   string `env:"PHOTO_EDITOR_BACKGROUND"    envDefault:"#808080"`
	Outline      string `env:"PHOTO_EDITOR_OUTLINE_COLOR" envDefault:"#ff0000"`
	OutlineWidth int    `env:"PHOTO_EDITOR_OUTLINE_WIDTH" envDefault:"2"`
}

// OutputConfig controls how images are saved.
type OutputConfig struct {
	JPEGQuality      int    `env:"PHOTO_EDITOR_JPEG_QUALITY"      envDefault:"75"`
	DefaultExtension string `env:"PHOTO_EDITOR_DEFAULT_EXTENSION" envDefault:".jpg"`
}

// Load reads the optional .env files (default ".env") into the process
// environment without overriding variables that are already set, then parses
// the environment into a Config.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and normalizes the default extension to start with a dot.
func (c *Config) Validate() error {
	if c.Canvas.Width < 1 || c.Canvas.Height < 1 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.OutlineWidth < 1 {
		return fmt.Errorf("outline width must be positive, got %d", c.Canvas.OutlineWidth)
	}
	if c.Output.JPEGQuality < 1 || c.Output.JPEGQuality > 100 {
		return fmt.Errorf("jpeg quality must be between 1 and 100, got %d", c.Output.JPEGQuality)
	}
	ext := strings.ToLower(strings.TrimSpace(c.Output.DefaultExtension))
	if ext == "" {
		return fmt.Errorf("default extension must not be empty")
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	c.Output.DefaultExtension = ext
	return nil
}
