package gamedata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and unmarshals a YAML file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse YAML from %s: %w", filename, err)
	}

	return result, nil
}

// LoadFile reads a YAML file from disk on top of base, so keys missing from
// the file keep the values already in base.
func LoadFile[T any](path string, base T) (T, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read %s: %w", path, err)
	}

	result := base
	if err := yaml.Unmarshal(content, &result); err != nil {
		return base, fmt.Errorf("failed to parse YAML from %s: %w", path, err)
	}

	return result, nil
}
