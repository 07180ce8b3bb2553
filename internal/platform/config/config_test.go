package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDerivesPathsUnderDataDir(t *testing.T) {
	t.Parallel()
	cfg, err := New("/tmp/scoop")
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.DBPath != filepath.Join("/tmp/scoop", ".swipescoop", "swipescoop.db") {
		t.Fatalf("unexpected db path %s", cfg.DBPath)
	}
	if cfg.Store != StoreSQLite {
		t.Fatalf("expected sqlite default, got %s", cfg.Store)
	}
	if _, err := New(""); err == nil {
		t.Fatalf("empty data path must fail")
	}
}

func TestLoadOverlaysYAMLFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, _ := New(dir)
	if err := os.MkdirAll(cfg.StateDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	raw := "store: file\nlog_level: debug\ntimezone: Europe/Berlin\ndeck: decks/news.yaml\ncategories: [science, sports]\ncolors:\n  Science: \"#22C55E\"\n"
	if err := os.WriteFile(cfg.ConfigPath, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Store != StoreFile || loaded.LogLevel != "debug" {
		t.Fatalf("overlay not applied: %+v", loaded)
	}
	if loaded.DeckPath != filepath.Join(dir, "decks", "news.yaml") {
		t.Fatalf("deck path not resolved against data dir: %s", loaded.DeckPath)
	}
	if len(loaded.Categories) != 2 || loaded.Categories[0] != "science" {
		t.Fatalf("categories not applied: %v", loaded.Categories)
	}
	if loaded.Colors["science"] != "#22C55E" || loaded.Colors["technology"] != "#3B82F6" {
		t.Fatalf("colors not merged: %v", loaded.Colors)
	}
	loc, err := loaded.Location()
	if err != nil || loc.String() != "Europe/Berlin" {
		t.Fatalf("location: %v %v", loc, err)
	}
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, _ := New(dir)
	_ = os.MkdirAll(cfg.StateDir, 0o755)
	if err := os.WriteFile(cfg.ConfigPath, []byte("store: redis\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected unsupported store error")
	}
}

func TestLoadWithoutFileKeepsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Timezone != "" || len(cfg.Categories) != 4 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}
