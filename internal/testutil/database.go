// Package testutil provides test helpers for setting up in-memory stores,
// creating fixtures, and making assertions.
package testutil

import (
	"testing"

	"github.com/marcelokbc/expense-manager/internal/store"
)

// SetupTestStore creates an in-memory SQLite key-value store with the
// kv_entries table migrated.
func SetupTestStore(t *testing.T) *store.DB {
	t.Helper()

	cfg := &store.Config{
		Driver: store.DriverSQLite,
		Path:   "file::memory:?cache=shared",
	}
	db, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}

	if err := db.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test store: %v", err)
	}

	return db
}

// TeardownTestStore closes the underlying database connection.
func TeardownTestStore(t *testing.T, db *store.DB) {
	t.Helper()

	if err := db.Close(); err != nil {
		t.Errorf("failed to close test store: %v", err)
	}
}
