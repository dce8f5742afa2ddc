package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Label types understood by the CLI.
const (
	LabelsName = "name"
	LabelsCode = "code"
)

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatDot  = "dot"
)

// Config holds the settings for ltlc.
type Config struct {
	Labels   string `yaml:"labels"`
	LogLevel string `yaml:"log_level"`
	Format   string `yaml:"format"`
	Metrics  bool   `yaml:"metrics"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Labels:   LabelsName,
		LogLevel: "info",
		Format:   FormatText,
	}
}

// Load reads a YAML config file over the defaults. A missing path yields
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.Labels {
	case LabelsName, LabelsCode:
	default:
		return fmt.Errorf("labels must be %q or %q, got %q", LabelsName, LabelsCode, c.Labels)
	}
	switch c.Format {
	case FormatText, FormatDot:
	default:
		return fmt.Errorf("format must be %q or %q, got %q", FormatText, FormatDot, c.Format)
	}
	return nil
}
