package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// loadYAML reads a YAML config file into a native Go mapping.
func loadYAML(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := map[string]any{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML file %s: %w", path, err)
	}

	return cfg, nil
}
