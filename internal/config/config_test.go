package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chessboard.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.TileSize != 100 {
		t.Errorf("TileSize = %d, want 100", cfg.Board.TileSize)
	}
	if cfg.Board.Light != (RGB{238, 238, 210}) {
		t.Errorf("Light = %v", cfg.Board.Light)
	}
	if !cfg.MenuOnStart {
		t.Error("MenuOnStart should default to true")
	}
	if cfg.BoardPixels() != 800 {
		t.Errorf("BoardPixels() = %d, want 800", cfg.BoardPixels())
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
title: Test Board
board:
  tile_size: 125
  origin_x: 10
  dark: [1, 2, 3]
  notation: false
log:
  level: debug
menu_on_start: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Title != "Test Board" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if cfg.Board.TileSize != 125 || cfg.Board.OriginX != 10 {
		t.Errorf("geometry = %d/%d, want 125/10", cfg.Board.TileSize, cfg.Board.OriginX)
	}
	if cfg.Board.Dark != (RGB{1, 2, 3}) {
		t.Errorf("Dark = %v", cfg.Board.Dark)
	}
	if cfg.Board.Light != (RGB{238, 238, 210}) {
		t.Errorf("Light lost its default: %v", cfg.Board.Light)
	}
	if cfg.Board.Notation {
		t.Error("Notation should be false")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	if cfg.MenuOnStart {
		t.Error("MenuOnStart should be false")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "board:\n  tile_size: 125\n")
	t.Setenv("CHESSBOARD_TILE_SIZE", "64")
	t.Setenv("CHESSBOARD_LOG_FORMAT", "json")
	t.Setenv("CHESSBOARD_DATA_DIR", "/tmp/board-data")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.TileSize != 64 {
		t.Errorf("TileSize = %d, want 64", cfg.Board.TileSize)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
	}
	if cfg.DataDir != "/tmp/board-data" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero tile", "board:\n  tile_size: 0\n"},
		{"negative origin", "board:\n  origin_y: -5\n"},
		{"unknown font", "board:\n  font: comic\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Load error = %v, want ErrInvalidConfig", err)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
	if _, err := Load(writeConfig(t, "board: [")); err == nil {
		t.Error("Load of malformed YAML succeeded")
	}
}
