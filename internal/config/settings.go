package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SettingsFile holds optional user settings next to the pointer file.
const SettingsFile = "settings.yaml"

// Settings are the tunable values of the application.
type Settings struct {
	// MaxLoadFraction is the share of bodyweight a pack should stay under.
	MaxLoadFraction float64 `yaml:"max_load_fraction"`
	// LogFile, when set, receives a copy of all log output.
	LogFile string `yaml:"log_file,omitempty"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() *Settings {
	return &Settings{MaxLoadFraction: 0.25}
}

// LoadSettings reads settings.yaml from dir. A missing file yields defaults;
// keys absent from the file keep their default values.
func LoadSettings(dir string) (*Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(filepath.Join(dir, SettingsFile))
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that every value is in range.
func (s *Settings) Validate() error {
	if !(s.MaxLoadFraction > 0 && s.MaxLoadFraction <= 1) {
		return fmt.Errorf("max_load_fraction must be in (0, 1], got %v", s.MaxLoadFraction)
	}
	return nil
}

// Save writes the settings to dir.
func (s *Settings) Save(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, SettingsFile), data, 0644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}
