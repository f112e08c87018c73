// Package config locates the gear database and loads user settings.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PointerFile records the path of the last used database.
const PointerFile = "config.txt"

// ErrNoDatabase is returned when no database has been selected yet.
var ErrNoDatabase = errors.New("no gear database selected")

// DefaultDir returns the per-user config directory for the application.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(base, "hikinggear"), nil
}

// LoadPointer returns the database path stored in dir, or ErrNoDatabase when
// the pointer file is missing or empty.
func LoadPointer(dir string) (string, error) {
	f, err := os.Open(filepath.Join(dir, PointerFile))
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoDatabase
	}
	if err != nil {
		return "", fmt.Errorf("reading database pointer: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("reading database pointer: %w", err)
		}
		return "", ErrNoDatabase
	}
	path := strings.TrimSpace(sc.Text())
	if path == "" {
		return "", ErrNoDatabase
	}
	return path, nil
}

// SavePointer records dbPath as the database to open next time.
func SavePointer(dir, dbPath string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, PointerFile), []byte(dbPath+"\n"), 0644); err != nil {
		return fmt.Errorf("writing database pointer: %w", err)
	}
	return nil
}
