// Package config loads the viewer's settings: defaults, then an optional
// YAML file, then environment overrides.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full application configuration.
type Config struct {
	Title string `yaml:"title"`

	Board BoardConfig `yaml:"board"`
	Log   LogConfig   `yaml:"log"`

	// DataDir overrides the per-OS data directory used for preferences.
	DataDir string `yaml:"data_dir"`

	// MenuOnStart shows the menu overlay when the window opens.
	MenuOnStart bool `yaml:"menu_on_start"`
}

// BoardConfig is the pixel geometry and look of the board.
type BoardConfig struct {
	TileSize int    `yaml:"tile_size"`
	OriginX  int    `yaml:"origin_x"`
	OriginY  int    `yaml:"origin_y"`
	Light    RGB    `yaml:"light"`
	Dark     RGB    `yaml:"dark"`
	Marker   RGB    `yaml:"marker"`
	Notation bool   `yaml:"notation"`
	Hints    bool   `yaml:"hints"`
	Font     string `yaml:"font"` // "regular" or "bold"
}

// LogConfig mirrors obslog.Options.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// RGB is an opaque colour written as [r, g, b] in YAML.
type RGB [3]uint8

// RGBA converts to an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{c[0], c[1], c[2], 255}
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Title: "Chess Board",
		Board: BoardConfig{
			TileSize: 100,
			Light:    RGB{238, 238, 210},
			Dark:     RGB{118, 150, 86},
			Marker:   RGB{235, 97, 80},
			Notation: true,
			Hints:    true,
			Font:     "regular",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		MenuOnStart: true,
	}
}

// Load returns the configuration at path layered over the defaults, with
// environment overrides applied last. An empty path skips the file; a
// path that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path = strings.TrimSpace(path); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("CHESSBOARD_TILE_SIZE")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Board.TileSize = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("CHESSBOARD_LOG_LEVEL")); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("CHESSBOARD_LOG_FORMAT")); v != "" {
		cfg.Log.Format = v
	}
	if v := strings.TrimSpace(os.Getenv("CHESSBOARD_LOG_FILE")); v != "" {
		cfg.Log.File = v
	}
	if v := strings.TrimSpace(os.Getenv("CHESSBOARD_DATA_DIR")); v != "" {
		cfg.DataDir = v
	}
}

// Validate checks the configuration for values the viewer cannot use.
func (c *Config) Validate() error {
	if c.Board.TileSize <= 0 {
		return fmt.Errorf("tile_size must be positive, got %d: %w", c.Board.TileSize, ErrInvalidConfig)
	}
	if c.Board.OriginX < 0 || c.Board.OriginY < 0 {
		return fmt.Errorf("board origin must not be negative: %w", ErrInvalidConfig)
	}
	switch c.Board.Font {
	case "regular", "bold":
	default:
		return fmt.Errorf("unknown font %q: %w", c.Board.Font, ErrInvalidConfig)
	}
	return nil
}

// BoardPixels returns the width (and height) of the board in pixels.
func (c *Config) BoardPixels() int {
	return c.Board.TileSize * 8
}
