// Package catalogfile loads a product catalog seed from a YAML file, so
// a deployment can swap the built-in catalog without rebuilding.
package catalogfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"markethub/internal/models"
)

type catalogFile struct {
	Products []models.Product `yaml:"products"`
}

// Load reads and parses the catalog file at path. Duplicate product ids
// are rejected; an empty product list is not an error.
func Load(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a catalog from YAML bytes.
func Parse(data []byte) ([]models.Product, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	seen := make(map[int]bool, len(file.Products))
	for _, p := range file.Products {
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate product id %d in catalog file", p.ID)
		}
		seen[p.ID] = true
	}
	return file.Products, nil
}
