// Package settings holds the calculator's user-adjustable options and
// persists them to a YAML config file across sessions.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Precision is the stored decimal-precision setting, validated by Set and
// persisted by Save/Load. Result rendering does not read it: Float results
// always print in shortest round-trip form and Rationals print exactly.
var Precision = 6

// Backend is the stored backend name, persisted by Save/Load. Nothing reads
// it when a session starts: repl.NewSession always builds a Quantity context.
var Backend = "quantity"

// HistoryPath is the configured calculation-history file location, set by
// Load from the config file's history_path key. Empty means "use the
// history package's own default".
var HistoryPath = ""

func Set(p int) error {
	if p < 0 || p > 20 {
		return fmt.Errorf("precision must be between 0 and 20")
	}
	Precision = p
	return nil
}

// Config is the on-disk shape of ~/.quanta/config.yaml. Precision is a
// pointer so an absent key in the file is distinguishable from an explicit
// "precision: 0" and leaves the package default untouched.
type Config struct {
	Precision   *int   `yaml:"precision"`
	Backend     string `yaml:"backend"`
	HistoryPath string `yaml:"history_path"`
}

// Path returns the config file location, honoring $QUANTA_CONFIG for tests
// and scripting before falling back to ~/.quanta/config.yaml.
func Path() (string, error) {
	if p := os.Getenv("QUANTA_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".quanta", "config.yaml"), nil
}

// Load reads the config file if present, applying Precision and Backend.
// A missing file is not an error: the package defaults stand.
func Load() error {
	path, err := Path()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("settings: parsing %s: %w", path, err)
	}
	if cfg.Precision != nil {
		if err := Set(*cfg.Precision); err != nil {
			return err
		}
	}
	if cfg.Backend != "" {
		Backend = cfg.Backend
	}
	if cfg.HistoryPath != "" {
		HistoryPath = cfg.HistoryPath
	}
	return nil
}

// Save writes the current settings to the config file, creating its parent
// directory if necessary.
func Save(historyPath string) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	precision := Precision
	cfg := Config{Precision: &precision, Backend: Backend, HistoryPath: historyPath}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
