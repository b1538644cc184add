// Package settings manages persistent user settings and the device
// inventory for the netiron CLI.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds persistent user preferences
type Settings struct {
	// DefaultDevice is the device to use when -d is not specified
	DefaultDevice string `json:"default_device,omitempty"`

	// InventoryPath overrides the default inventory file location
	InventoryPath string `json:"inventory_path,omitempty"`

	// CaptureAddr is the Redis address for session captures
	CaptureAddr string `json:"capture_addr,omitempty"`

	// CaptureDB is the Redis database for session captures
	CaptureDB int `json:"capture_db,omitempty"`
}

// DefaultSettingsPath returns the default path for the settings file
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "netiron_settings.json"
	}
	return filepath.Join(home, ".netiron", "settings.json")
}

// Load reads settings from the default location
func Load() (*Settings, error) {
	return LoadFrom(DefaultSettingsPath())
}

// LoadFrom reads settings from a specific path
func LoadFrom(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty settings if file doesn't exist
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}

	return s, nil
}

// Save writes settings to the default location
func (s *Settings) Save() error {
	return s.SaveTo(DefaultSettingsPath())
}

// SaveTo writes settings to a specific path
func (s *Settings) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetInventoryPath returns the inventory path (with fallback)
func (s *Settings) GetInventoryPath() string {
	if s.InventoryPath != "" {
		return s.InventoryPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "inventory.yaml"
	}
	return filepath.Join(home, ".netiron", "inventory.yaml")
}

// Clear resets all settings to defaults
func (s *Settings) Clear() {
	*s = Settings{}
}
