package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Editor holds configuration for the weapon-set editor tooling.
type Editor struct {
	// Beginner Mode: auto-fill ammo fields when a weapon is selected.
	BeginnerMode bool `yaml:"beginner_mode"`

	Report Report `yaml:"report"`
}

// Report controls the defaults report output.
type Report struct {
	ShowTable    bool `yaml:"show_table"`
	ShowCoverage bool `yaml:"show_coverage"`
}

// DefaultEditor returns Editor config with sensible defaults.
func DefaultEditor() Editor {
	return Editor{
		BeginnerMode: true,
		Report: Report{
			ShowTable:    true,
			ShowCoverage: true,
		},
	}
}

// LoadEditor loads editor config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadEditor(path string) (Editor, error) {
	cfg := DefaultEditor()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
