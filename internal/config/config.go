// ABOUTME: Fitness configuration management with backend selection.
// ABOUTME: Merges the JSON config file, a .env file and FITNESS_* environment variables.

package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/fitness/internal/logging"
	"github.com/harperreed/fitness/internal/storage"
	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvBackend  = "FITNESS_BACKEND"
	EnvDSN      = "FITNESS_DSN"
	EnvDataDir  = "FITNESS_DATA_DIR"
	EnvLogLevel = "FITNESS_LOG_LEVEL"
)

// Config stores fitness tool configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default), "postgres" or "mysql".
	Backend string `json:"backend,omitempty"`

	// DSN is the connection string for postgres and mysql. For sqlite it
	// overrides the database file path.
	DSN string `json:"dsn,omitempty"`

	// DataDir is the directory holding fitness.db for the sqlite backend.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/fitness.
	DataDir string `json:"data_dir,omitempty"`

	// LogLevel is one of debug, info, warn, error. Defaults to warn.
	LogLevel string `json:"log_level,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetLogLevel returns the configured log level, defaulting to "warn".
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "warn"
	}
	return c.LogLevel
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// StorageDSN resolves the connection string for dialect. For sqlite it is
// the database file path under the data directory unless DSN overrides it.
func (c *Config) StorageDSN(dialect storage.Dialect) string {
	if dialect != storage.SQLite {
		return c.DSN
	}
	if c.DSN == "" {
		return filepath.Join(c.GetDataDir(), "fitness.db")
	}
	return ExpandPath(c.DSN)
}

// OpenStorage opens the configured backend and applies migrations.
func (c *Config) OpenStorage(ctx context.Context, log logging.Logger) (*storage.DB, error) {
	dialect, err := storage.ParseDialect(c.GetBackend())
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(ctx, dialect, c.StorageDSN(dialect), storage.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", dialect, err)
	}
	return db, nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fitness", "config.json")
}

// Load reads config from disk, then applies .env and environment overrides.
func Load() (*Config, error) {
	// A missing .env is normal.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := loadFile(GetConfigPath())
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvBackend); v != "" {
		c.Backend = v
	}
	if v := os.Getenv(EnvDSN); v != "" {
		c.DSN = v
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
