package main

import (
	"testing"

	"go.uber.org/zap"

	"github.com/hailam/chessboard/internal/config"
	"github.com/hailam/chessboard/internal/storage"
)

func TestCloseStorageReleasesDatabase(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	logger := zap.NewNop()

	store := openStorage(cfg, logger)
	if store == nil {
		t.Fatal("openStorage returned nil for a writable data dir")
	}
	prefs := storage.DefaultPreferences()
	prefs.ShowHints = false
	if err := store.SavePreferences(prefs); err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}

	closeStorage(store, logger)

	// Badger holds a directory lock until Close, so a second open only
	// succeeds once the first handle is released.
	reopened := openStorage(cfg, logger)
	if reopened == nil {
		t.Fatal("database still locked after closeStorage")
	}
	defer closeStorage(reopened, logger)

	got, err := reopened.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if got.ShowHints {
		t.Error("preferences written before close were lost")
	}
}

func TestCloseStorageNil(t *testing.T) {
	closeStorage(nil, zap.NewNop())
}
