package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/saulo-duarte/ignite-guild/internal/config"
)

// Open returns the store selected by cfg.Driver.
func Open(cfg config.StorageConfig) (Store, error) {
	log := config.Logger.WithField("driver", cfg.Driver)

	switch cfg.Driver {
	case config.StorageMemory:
		log.Info("Using in-memory storage")
		return NewMemoryStore(), nil

	case config.StorageFile:
		log.WithField("path", cfg.Path).Info("Using JSON file storage")
		return OpenFileStore(cfg.Path)

	case config.StorageSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o700); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
		db, err := gorm.Open(sqlite.Open(cfg.Path), gormConfig())
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		log.WithField("path", cfg.Path).Info("Using sqlite storage")
		return NewGormStore(db)

	case config.StoragePostgres:
		db, err := gorm.Open(postgres.Open(cfg.DSN), gormConfig())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		log.Info("Using postgres storage")
		return NewGormStore(db)

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// gormConfig routes gorm's log lines through the application logger.
func gormConfig() *gorm.Config {
	return &gorm.Config{Logger: logger.New(
		config.Logger.WithField("component", "gorm"),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)}
}
