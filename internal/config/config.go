package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ToolConfig carries per-project defaults for scarb-eject. Every field is
// optional; command-line flags take precedence over all of them.
type ToolConfig struct {
	// Output is the default path for the rendered cairo_project.toml.
	// "-" writes to standard output.
	Output string `yaml:"output,omitempty"`

	// NoDeps skips the global dependency mapping.
	NoDeps bool `yaml:"no_deps,omitempty"`

	// ScarbPath overrides the scarb executable.
	ScarbPath string `yaml:"scarb_path,omitempty"`

	// Profile is passed to scarb as --profile.
	Profile string `yaml:"profile,omitempty"`
}

// ConfigFileName is looked up in the invocation directory.
const ConfigFileName = "scarb-eject.yaml"

// Load reads the tool config from dir.
func Load(dir string) (*ToolConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ToolConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
