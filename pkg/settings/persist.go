package settings

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultPath returns where settings.toml lives.
// Search order:
//  1. $SKYCAST_CONFIG_DIR/settings.toml
//  2. ~/.config/skycast/settings.toml
//
// The second value is false when no home directory can be determined.
func DefaultPath() (string, bool) {
	if base := os.Getenv("SKYCAST_CONFIG_DIR"); base != "" {
		return filepath.Join(base, "settings.toml"), true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, ".config", "skycast", "settings.toml"), true
}

// Load reads persisted settings from path. A missing or unreadable file is
// not an error: the fallback settings are returned unchanged so a corrupt
// file never blocks startup.
func Load(path string, fallback RuntimeSettings) RuntimeSettings {
	data, err := os.ReadFile(path)
	if err != nil {
		return fallback
	}
	loaded := Default()
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return fallback
	}
	return loaded
}

// Save writes settings to path, creating parent directories as needed.
func Save(path string, s RuntimeSettings) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating settings directory: %w", err)
		}
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}

// Clear removes the settings file. A missing file is fine.
func Clear(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clearing settings file: %w", err)
	}
	return nil
}
