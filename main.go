// Chessboard - a free-placement chess board built with Ebitengine.
package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/hailam/chessboard/internal/config"
	"github.com/hailam/chessboard/internal/obslog"
	"github.com/hailam/chessboard/internal/storage"
	"github.com/hailam/chessboard/internal/ui"
)

func main() {
	configPath := flag.String("config", os.Getenv("CHESSBOARD_CONFIG"), "path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		os.Exit(1)
	}
}

// run starts the window and blocks until it closes. Every deferred
// cleanup has run by the time it returns.
func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		// The logger is not configured yet.
		boot, _ := zap.NewProduction()
		boot.Error("load config", zap.Error(err))
		_ = boot.Sync()
		return err
	}

	logger, err := obslog.Init(obslog.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		boot, _ := zap.NewProduction()
		boot.Error("init logger", zap.Error(err))
		_ = boot.Sync()
		return err
	}
	defer obslog.Sync()

	store := openStorage(cfg, logger)
	defer closeStorage(store, logger)

	game := ui.NewGame(cfg, store, logger)
	w, h := game.ScreenSize()

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowClosingHandled(true)

	logger.Info("starting",
		zap.Int("tile_size", cfg.Board.TileSize),
		zap.Int("width", w),
		zap.Int("height", h),
	)

	// RunGame returns nil when Update returns ebiten.Termination.
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("run game", zap.Error(err))
		return err
	}
	logger.Info("exited")
	return nil
}

// openStorage opens the preferences database. Failure is not fatal: the
// viewer runs with in-memory preferences instead.
func openStorage(cfg *config.Config, logger *zap.Logger) *storage.Storage {
	dir, err := storage.GetDatabaseDir(cfg.DataDir)
	if err != nil {
		logger.Warn("no data directory, preferences will not persist", zap.Error(err))
		return nil
	}
	store, err := storage.Open(dir)
	if err != nil {
		logger.Warn("failed to open preferences, they will not persist", zap.Error(err))
		return nil
	}
	return store
}

// closeStorage closes store if it was opened.
func closeStorage(store *storage.Storage, logger *zap.Logger) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("failed to close preferences", zap.Error(err))
	}
}
