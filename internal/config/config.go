// Package config holds the settings used to generate the hosts fragment.
package config

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Banner describes the comment lines wrapped around the generated entries.
type Banner struct {
	Title      string `yaml:"title"`
	ProjectURL string `yaml:"projectURL"`
	// TimeLayout is a Go reference-time layout for the "Last updated" line.
	TimeLayout string `yaml:"timeLayout"`
}

// StartMarker returns the first line of the fragment.
func (b Banner) StartMarker() string {
	return fmt.Sprintf("# %s Start", b.Title)
}

// EndMarker returns the last line of the fragment.
func (b Banner) EndMarker() string {
	return fmt.Sprintf("# %s End", b.Title)
}

// Config represents the complete generation settings.
type Config struct {
	TargetIP        string   `yaml:"targetIP"`
	DomainsFile     string   `yaml:"domainsFile"`
	OutputFile      string   `yaml:"outputFile"`
	FallbackDomains []string `yaml:"fallbackDomains"`
	Banner          Banner   `yaml:"banner"`
}

// Parse decodes and validates a YAML configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Default returns a new copy of the built-in configuration. It panics if the
// embedded document is invalid.
func Default() *Config {
	cfg, err := Parse(defaultsYAML)
	if err != nil {
		panic(fmt.Errorf("embedded defaults: %w", err))
	}

	return cfg
}

// Fallback returns a copy of the fallback domain list.
func (c *Config) Fallback() []string {
	return slices.Clone(c.FallbackDomains)
}
