// Package config resolves runtime configuration for the local
// application: environment overrides on top of sensible defaults. There
// are no remote endpoints or secrets; everything lives on the device.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	appDirName = "fittrack"
	dbFileName = "fittrack.db"
)

// Config holds all configuration for the application.
type Config struct {
	// DBPath overrides the database file location. Empty means the
	// per-user default under the OS config directory.
	DBPath string `env:"FITTRACK_DB_PATH"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"FITTRACK_LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from the environment and fills in defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment config: %w", err)
	}

	if cfg.DBPath == "" {
		path, err := DefaultDBPath()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = path
	}

	return &cfg, nil
}

// DefaultDBPath resolves <user config dir>/fittrack/fittrack.db.
func DefaultDBPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, dbFileName), nil
}
