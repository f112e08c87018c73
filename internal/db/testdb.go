package db

import (
	"database/sql"
	"path/filepath"
	"testing"
)

// NewTestDB creates a fresh in-memory SQLite database with the gear table.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openTest(t, ":memory:")
}

// NewTestFile creates a database file inside the test's temp dir and returns
// its path. The schema is applied and the handle closed again, so callers can
// open the file themselves.
func NewTestFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gear.db")
	db := openTest(t, path)
	if err := db.Close(); err != nil {
		t.Fatalf("closing test database: %v", err)
	}
	return path
}

func openTest(t *testing.T, path string) *sql.DB {
	t.Helper()

	db, err := Open(path)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := EnsureSchema(db); err != nil {
		db.Close()
		t.Fatalf("creating test database schema: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	return db
}
