package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. AUTOINCREMENT keeps ids of deleted
// rows from being handed out again.
const schema = `
CREATE TABLE IF NOT EXISTS hiking_gear (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    name     TEXT NOT NULL,
    category TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    weight   REAL NOT NULL,
    checked  INTEGER NOT NULL DEFAULT 0
);
`

// EnsureSchema creates the gear table if it doesn't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
