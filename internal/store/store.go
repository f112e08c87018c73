// Package store persists gear items in a SQLite database.
package store

import (
	"database/sql"
	"log/slog"

	"github.com/Bankableflunky5/HikingApp/internal/db"
	"github.com/Bankableflunky5/HikingApp/internal/model"
)

// Store owns one open gear database. Switching databases means closing one
// Store and opening another.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens the database file at path and creates the gear table if absent.
func Open(path string) (*Store, error) {
	database, err := db.Open(path)
	if err != nil {
		return nil, storageErr("opening gear database", err)
	}

	if err := db.EnsureSchema(database); err != nil {
		database.Close()
		return nil, storageErr("opening gear database", err)
	}

	slog.Debug("gear database open", "path", path)
	return &Store{db: database, path: path}, nil
}

// New wraps an already opened database. The schema must exist.
func New(database *sql.DB) *Store {
	return &Store{db: database}
}

// Path returns the file the store was opened from, or "" for New.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return storageErr("closing gear database", err)
	}
	return nil
}

func storageErr(op string, err error) error {
	return &model.StorageError{Op: op, Err: err}
}
