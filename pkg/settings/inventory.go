package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/netadapt/netiron/pkg/util"
)

// DeviceEntry is one device in the inventory file.
type DeviceEntry struct {
	Hostname string `yaml:"hostname"`
	Username string `yaml:"username"`
	Password string `yaml:"password,omitempty"`
	Port     int    `yaml:"port,omitempty"`
	Family   string `yaml:"family,omitempty"` // MLX or CER
	// TimeoutSeconds overrides the default command budget
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`
}

// Inventory maps device names to connection parameters.
type Inventory struct {
	Devices map[string]DeviceEntry `yaml:"devices"`
}

// LoadInventory reads a YAML inventory file.
func LoadInventory(path string) (*Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	inv := &Inventory{}
	if err := yaml.Unmarshal(data, inv); err != nil {
		return nil, fmt.Errorf("parsing inventory %s: %w", path, err)
	}

	for name, entry := range inv.Devices {
		if entry.Hostname == "" {
			return nil, fmt.Errorf("device %q has no hostname: %w", name, util.ErrInvalidInput)
		}
	}
	return inv, nil
}

// Lookup finds a device by name.
func (inv *Inventory) Lookup(name string) (DeviceEntry, error) {
	entry, ok := inv.Devices[name]
	if !ok {
		return DeviceEntry{}, util.NewLookupError("inventory", name)
	}
	return entry, nil
}

// Names returns the device names in the inventory, unordered.
func (inv *Inventory) Names() []string {
	names := make([]string, 0, len(inv.Devices))
	for name := range inv.Devices {
		names = append(names, name)
	}
	return names
}
