// Package config handles the board's configuration file and data directory.
// Every install gets a ~/.housekeeping/ folder holding config.yaml, the
// database and the log file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DataDirName is the directory under $HOME holding the board's files.
	DataDirName = ".housekeeping"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "HOUSEKEEPING"

	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// defaultStaff is the roster offered by the add form and edit modal.
var defaultStaff = []string{"Maria", "John", "Sofia", "Ahmed", "Rosa"}

// StoreConfig selects where snapshots are written.
type StoreConfig struct {
	Backend string `yaml:"backend"`        // "sqlite" or "redis"
	Path    string `yaml:"path,omitempty"` // sqlite file
	Key     string `yaml:"key"`
}

// RedisConfig holds the Redis connection used by the redis backend.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or console
	Path   string `yaml:"path,omitempty"`
}

// BoardConfig holds board behaviour.
type BoardConfig struct {
	Seed  bool     `yaml:"seed"`
	Staff []string `yaml:"staff"`
}

// Config models ~/.housekeeping/config.yaml.
type Config struct {
	Version int         `yaml:"version"`
	Store   StoreConfig `yaml:"store"`
	Redis   RedisConfig `yaml:"redis"`
	Log     LogConfig   `yaml:"log"`
	Board   BoardConfig `yaml:"board"`
}

// DataDir returns ~/.housekeeping.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, DataDirName), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Default returns the configuration used when no file exists.
// dataDir anchors the database and log paths.
func Default(dataDir string) *Config {
	staff := make([]string, len(defaultStaff))
	copy(staff, defaultStaff)

	return &Config{
		Version: 1,
		Store: StoreConfig{
			Backend: BackendSQLite,
			Path:    filepath.Join(dataDir, "housekeeping.db"),
			Key:     "rooms",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			Path:   filepath.Join(dataDir, "logs", "housekeeping.log"),
		},
		Board: BoardConfig{
			Seed:  true,
			Staff: staff,
		},
	}
}

// LoadConfig reads the config file at path on top of the defaults, then
// applies environment overrides. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := Default(filepath.Dir(path))

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.LoadFromEnv(EnvPrefix)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes cfg to path, creating the directory if needed.
func SaveConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// LoadFromEnv overrides fields from PREFIX_* environment variables.
func (c *Config) LoadFromEnv(prefix string) {
	if v := os.Getenv(prefix + "_STORE_BACKEND"); v != "" {
		c.Store.Backend = v
	}
	if v := os.Getenv(prefix + "_STORE_PATH"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv(prefix + "_STORE_KEY"); v != "" {
		c.Store.Key = v
	}
	if v := os.Getenv(prefix + "_REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv(prefix + "_REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv(prefix + "_REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			c.Redis.DB = db
		}
	}
	if v := os.Getenv(prefix + "_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Validate checks the fields the wiring depends on.
func (c *Config) Validate() error {
	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	switch c.Store.Backend {
	case BackendSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("store.path is required for the sqlite backend")
		}
	case BackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown store backend %q (want %s or %s)", c.Store.Backend, BackendSQLite, BackendRedis)
	}

	if strings.TrimSpace(c.Store.Key) == "" {
		return fmt.Errorf("store.key must not be empty")
	}
	return nil
}
