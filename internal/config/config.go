package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	StorageMemory   = "memory"
	StorageFile     = "file"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

type StorageConfig struct {
	// Driver is one of memory, file, sqlite or postgres.
	Driver string `yaml:"driver"`
	// Path is the JSON file for the file driver or the database file for sqlite.
	Path string `yaml:"path"`
	DSN  string `yaml:"dsn"`
}

type Config struct {
	Listen   string `yaml:"listen"`
	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level"`
	Timezone string `yaml:"timezone"`

	// DataFile optionally replaces the built-in guild data.
	DataFile string `yaml:"data_file"`

	Storage StorageConfig `yaml:"storage"`

	VisitorSecret string `yaml:"visitor_secret"`
	CSRFKey       string `yaml:"csrf_key"`
	CookieSecure  bool   `yaml:"cookie_secure"`

	// ReminderResetCron clears every visitor's completed reminders on the given
	// schedule. Empty disables the job.
	ReminderResetCron string `yaml:"reminder_reset_cron"`
}

// DefaultStoragePath is the path used by a driver when none is configured.
// Drivers without a file return "".
func DefaultStoragePath(driver string) string {
	switch driver {
	case StorageFile:
		return "./data/ignite-kv.json"
	case StorageSQLite:
		return "./data/ignite.db"
	default:
		return ""
	}
}

// Default leaves Storage.Path empty; Normalize picks it once the driver is
// final.
func Default() *Config {
	return &Config{
		Listen:   "127.0.0.1:8080",
		Env:      EnvDevelopment,
		LogLevel: "info",
		Timezone: "Local",
		Storage: StorageConfig{
			Driver: StorageFile,
		},
	}
}

// Normalize fills zero values with defaults and folds unknown choices back to
// safe ones.
func (c *Config) Normalize() {
	d := Default()
	if c.Listen == "" {
		c.Listen = d.Listen
	}
	switch c.Env {
	case EnvProduction, EnvDevelopment:
	default:
		c.Env = EnvDevelopment
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.Timezone == "" {
		c.Timezone = d.Timezone
	}
	switch c.Storage.Driver {
	case StorageMemory, StorageFile, StorageSQLite, StoragePostgres:
	case "":
		c.Storage.Driver = d.Storage.Driver
	default:
		c.Storage.Driver = StorageMemory
	}
	if c.Storage.Path == "" {
		c.Storage.Path = DefaultStoragePath(c.Storage.Driver)
	}
}

func (c *Config) Validate() error {
	if c.Storage.Driver == StoragePostgres && c.Storage.DSN == "" {
		return errors.New("postgres storage requires a DSN")
	}
	if c.CSRFKey != "" && len(c.CSRFKey) != 32 {
		return errors.New("CSRF key must be 32 bytes")
	}
	return nil
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in that order of precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(c *Config) {
	setString(&c.Listen, "IGNITE_LISTEN")
	setString(&c.Env, "IGNITE_ENV")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.Timezone, "IGNITE_TIMEZONE")
	setString(&c.DataFile, "IGNITE_DATA_FILE")
	setString(&c.Storage.Driver, "STORAGE_DRIVER")
	setString(&c.Storage.Path, "STORAGE_PATH")
	setString(&c.Storage.DSN, "DATABASE_DSN")
	setString(&c.VisitorSecret, "VISITOR_SECRET")
	setString(&c.CSRFKey, "CSRF_KEY")
	setString(&c.ReminderResetCron, "REMINDER_RESET_CRON")

	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			c.CookieSecure = b
		}
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
