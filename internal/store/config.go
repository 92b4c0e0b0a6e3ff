package store

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds the database configuration for the persistent store.
type Config struct {
	Driver string

	// SQLite
	Path string

	// Postgres
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	// Directory containing per-driver migration folders.
	MigrationsDir string
}

// NewConfig reads the store configuration from environment variables,
// defaulting to a local SQLite file.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist, we'll use defaults or environment variables
		fmt.Println("Warning: .env file not found")
	}

	cfg := &Config{
		Driver:        getEnv("DB_DRIVER", DriverSQLite),
		Path:          getEnv("DB_PATH", "expense-manager.db"),
		Host:          getEnv("DB_HOST", "localhost"),
		Port:          getEnv("DB_PORT", "5432"),
		User:          getEnv("DB_USER", "expenses"),
		Password:      getEnv("DB_PASSWORD", "expenses"),
		DBName:        getEnv("DB_NAME", "expenses"),
		SSLMode:       getEnv("DB_SSLMODE", "disable"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
	}

	if cfg.Driver != DriverSQLite && cfg.Driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (use %s or %s)", cfg.Driver, DriverSQLite, DriverPostgres)
	}
	return cfg, nil
}

// DSN returns the GORM connection string for the configured driver.
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Path
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// MigrateURL returns the golang-migrate database URL for the configured driver.
func (c *Config) MigrateURL() string {
	if c.Driver == DriverSQLite {
		return "sqlite3://" + c.Path
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// MigrateSource returns the golang-migrate source URL for the configured driver.
func (c *Config) MigrateSource() string {
	dir := "sqlite3"
	if c.Driver == DriverPostgres {
		dir = "postgres"
	}
	return fmt.Sprintf("file://%s/%s", c.MigrationsDir, dir)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
