package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/marcelokbc/expense-manager/internal/logger"
)

// kvEntry is the single table backing the key-value store.
type kvEntry struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     []byte `gorm:"column:value"`
	UpdatedAt time.Time
}

func (kvEntry) TableName() string { return "kv_entries" }

// DB is a Store persisted through GORM over SQLite (default) or Postgres.
type DB struct {
	db  *gorm.DB
	cfg *Config
}

// Open connects to the database selected by the configuration.
func Open(cfg *Config) (*DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DSN())
	case DriverPostgres:
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.DSN(),
			PreferSimpleProtocol: true,
		})
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Driver == DriverPostgres {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying DB: %w", err)
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	return &DB{db: db, cfg: cfg}, nil
}

// Migrate applies pending SQL migrations for the configured driver.
func (d *DB) Migrate() error {
	logger.Get().Info("Running database migrations...")

	mig, err := migrate.New(d.cfg.MigrateSource(), d.cfg.MigrateURL())
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// AutoMigrate creates the kv_entries table through GORM. Used by tests that
// open throwaway in-memory databases without the migrations directory.
func (d *DB) AutoMigrate() error {
	return d.db.AutoMigrate(&kvEntry{})
}

// Get returns the value stored under key, if any.
func (d *DB) Get(key string) ([]byte, bool, error) {
	var entry kvEntry
	if err := d.db.First(&entry, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return entry.Value, true, nil
}

// Set stores value under key, replacing any previous value.
func (d *DB) Set(key string, value []byte) error {
	entry := kvEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	return d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// Delete removes the key. Deleting a missing key is a no-op.
func (d *DB) Delete(key string) error {
	return d.db.Delete(&kvEntry{}, "key = ?", key).Error
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
