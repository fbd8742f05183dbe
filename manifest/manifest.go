package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

/* Manifest describes a provisioning plan for the seed tool: which
 * owners to provision and how many endpoints each one gets.
 */

// Manifest represents the structure of a seed YAML file
type Manifest struct {
	Owners []Owner `yaml:"owners"`
}

// Owner represents a single owner entry in the YAML file
type Owner struct {
	OwnerID   string `yaml:"owner_id"`
	Endpoints int    `yaml:"endpoints"` // Default: 1
}

// Load reads and parses a seed manifest file
func Load(filePath string) (*Manifest, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading manifest file: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest YAML: %w", err)
	}

	for i := range m.Owners {
		if m.Owners[i].OwnerID == "" {
			return nil, fmt.Errorf("validating manifest: owner %d has no owner_id", i)
		}
		if m.Owners[i].Endpoints == 0 {
			m.Owners[i].Endpoints = 1
		}
		if m.Owners[i].Endpoints < 0 {
			return nil, fmt.Errorf("validating manifest: owner %q has negative endpoint count", m.Owners[i].OwnerID)
		}
	}

	return &m, nil
}
