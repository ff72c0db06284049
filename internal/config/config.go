// Package config resolves CLI defaults from a YAML config file, a .env file
// and environment variables, in increasing order of precedence. Resolution
// happens once at startup; nothing here is re-queried ad hoc.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the CLI defaults.
type Config struct {
	// Glob is applied by list/archive when no pattern flag is given.
	Glob string `yaml:"glob"`
	// CaseSensitive overrides the default case-folded wildcard matching
	// when set.
	CaseSensitive *bool `yaml:"case_sensitive"`
	// TrashDir overrides the platform trash directory.
	TrashDir string `yaml:"trash_dir"`
}

// Load builds a Config. A .env file in the working directory is honored when
// present; the YAML file defaults to <user config dir>/dirkit/config.yaml and
// can be pointed elsewhere with DIRKIT_CONFIG. Missing files are not errors.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	if path := configPath(); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	cfg.Glob = getenv("DIRKIT_GLOB", cfg.Glob)
	cfg.TrashDir = getenv("DIRKIT_TRASH_DIR", cfg.TrashDir)
	return cfg
}

func configPath() string {
	if v := os.Getenv("DIRKIT_CONFIG"); v != "" {
		return v
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dirkit", "config.yaml")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
