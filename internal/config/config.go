package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config is read from CTRACK_* environment variables
type Config struct {
	DBPath        string `env:"CTRACK_DB_PATH"`
	ExportDir     string `env:"CTRACK_EXPORT_DIR" envDefault:"."`
	Persist       bool   `env:"CTRACK_PERSIST" envDefault:"true"`
	LogFile       string `env:"CTRACK_LOG_FILE"`
	LogMaxSizeMB  int    `env:"CTRACK_LOG_MAX_SIZE_MB" envDefault:"5"`
	LogMaxBackups int    `env:"CTRACK_LOG_MAX_BACKUPS" envDefault:"3"`
}

// Load parses the environment and fills in XDG-based default paths
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DBPath == "" {
		dir, err := xdgDir("XDG_DATA_HOME", ".local", "share")
		if err != nil {
			return Config{}, err
		}
		cfg.DBPath = filepath.Join(dir, "ctrack.db")
	}
	if cfg.LogFile == "" {
		dir, err := xdgDir("XDG_STATE_HOME", ".local", "state")
		if err != nil {
			return Config{}, err
		}
		cfg.LogFile = filepath.Join(dir, "ctrack.log")
	}
	return cfg, nil
}

// xdgDir returns $envVar/ctrack, falling back to ~/<fallback...>/ctrack
func xdgDir(envVar string, fallback ...string) (string, error) {
	base := os.Getenv(envVar)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(append([]string{home}, fallback...)...)
	}
	return filepath.Join(base, "ctrack"), nil
}

// Exitf writes a formatted error message to stderr and exits with code 1
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
