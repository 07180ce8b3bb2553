package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"
	StoreMemory = "memory"
)

var defaultCategories = []string{"technology", "sports", "business", "entertainment"}

type Config struct {
	DataPath   string
	StateDir   string
	DBPath     string
	ConfigPath string
	LogPath    string
	DeckPath   string
	ReportPath string
	Store      string
	LogLevel   string
	Timezone   string
	Categories []string
	// Colors maps a category color tag to a hex display color.
	Colors map[string]string
}

type fileConfig struct {
	Store      string            `yaml:"store"`
	LogLevel   string            `yaml:"log_level"`
	Timezone   string            `yaml:"timezone"`
	Deck       string            `yaml:"deck"`
	Report     string            `yaml:"report"`
	Categories []string          `yaml:"categories"`
	Colors     map[string]string `yaml:"colors"`
}

func New(dataPath string) (Config, error) {
	if dataPath == "" {
		return Config{}, fmt.Errorf("data path is required")
	}
	stateDir := filepath.Join(dataPath, ".swipescoop")
	return Config{
		DataPath:   dataPath,
		StateDir:   stateDir,
		DBPath:     filepath.Join(stateDir, "swipescoop.db"),
		ConfigPath: filepath.Join(stateDir, "config.yaml"),
		LogPath:    filepath.Join(stateDir, "swipescoop.log"),
		DeckPath:   filepath.Join(dataPath, "deck.yaml"),
		ReportPath: filepath.Join(dataPath, "reports", "progress.md"),
		Store:      StoreSQLite,
		LogLevel:   "info",
		Categories: append([]string(nil), defaultCategories...),
		Colors: map[string]string{
			"technology": "#3B82F6",
			"general":    "#EF4444",
		},
	}, nil
}

// Load returns New(dataPath) overlaid with the optional config.yaml found in
// the state directory. A missing file is not an error.
func Load(dataPath string) (Config, error) {
	cfg, err := New(dataPath)
	if err != nil {
		return Config{}, err
	}
	raw, err := os.ReadFile(cfg.ConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	fc := fileConfig{}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.apply(fc); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) apply(fc fileConfig) error {
	if s := strings.TrimSpace(fc.Store); s != "" {
		switch s {
		case StoreSQLite, StoreFile, StoreMemory:
			c.Store = s
		default:
			return fmt.Errorf("unsupported store %q", s)
		}
	}
	if s := strings.TrimSpace(fc.LogLevel); s != "" {
		c.LogLevel = s
	}
	if s := strings.TrimSpace(fc.Timezone); s != "" {
		if _, err := time.LoadLocation(s); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", s, err)
		}
		c.Timezone = s
	}
	if s := strings.TrimSpace(fc.Deck); s != "" {
		c.DeckPath = c.resolve(s)
	}
	if s := strings.TrimSpace(fc.Report); s != "" {
		c.ReportPath = c.resolve(s)
	}
	if len(fc.Categories) > 0 {
		c.Categories = fc.Categories
	}
	for tag, color := range fc.Colors {
		c.Colors[strings.ToLower(strings.TrimSpace(tag))] = color
	}
	return nil
}

func (c Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.DataPath, p)
}

// Location is the time zone calendar days are counted in. Empty means the
// process local zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}
