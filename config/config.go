// Package config provides configuration loading and management for semtags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/semtags/export"
)

// Config represents the complete semtags configuration
type Config struct {
	Log        LogConfig     `yaml:"log"`
	Generators []string      `yaml:"generators"`
	Mapping    MappingConfig `yaml:"mapping"`
	Export     ExportConfig  `yaml:"export"`

	// BaseDir anchors relative mapping patterns. Set by the loader to the
	// directory of the project config, never read from YAML.
	BaseDir string `yaml:"-"`
}

// LogConfig configures logging
type LogConfig struct {
	// Level is one of debug, info, warn, error (default: info)
	Level string `yaml:"level"`
}

// MappingConfig configures the natural-language alias tables
type MappingConfig struct {
	// Files are glob patterns (** supported) of alias files merged over the
	// built-in tables
	Files []string `yaml:"files"`
}

// ExportConfig configures RDF export
type ExportConfig struct {
	// Format is turtle, ntriples or jsonld (default: turtle)
	Format string `yaml:"format"`
	// BaseIRI prefixes node IRIs (empty = built-in scene entity namespace)
	BaseIRI string `yaml:"base_iri"`
	// Profile is full or positive (default: full)
	Profile string `yaml:"profile"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Generators: nil,
		Mapping: MappingConfig{
			Files: nil,
		},
		Export: ExportConfig{
			Format:  string(export.FormatTurtle),
			BaseIRI: "",
			Profile: string(export.ProfileFull),
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of %s", strings.Join(logLevels, ", "))
	}

	seen := make(map[string]bool, len(c.Generators))
	for _, name := range c.Generators {
		name = strings.TrimSpace(name)
		if name == "" {
			return fmt.Errorf("generators must not contain empty names")
		}
		if seen[name] {
			return fmt.Errorf("duplicate generator name: %s", name)
		}
		seen[name] = true
	}

	for _, pattern := range c.Mapping.Files {
		if strings.TrimSpace(pattern) == "" {
			return fmt.Errorf("mapping.files must not contain empty patterns")
		}
	}

	if _, err := export.ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("export.format: %w", err)
	}
	switch export.Profile(c.Export.Profile) {
	case export.ProfileFull, export.ProfilePositive:
	default:
		return fmt.Errorf("export.profile must be full or positive")
	}
	if c.Export.BaseIRI != "" && !strings.Contains(c.Export.BaseIRI, "://") {
		return fmt.Errorf("export.base_iri must be an absolute IRI")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.BaseDir = filepath.Dir(path)

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values).
// Generators and mapping files accumulate so that project files extend user files.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}

	// Generators
	for _, name := range other.Generators {
		if !slices.Contains(c.Generators, name) {
			c.Generators = append(c.Generators, name)
		}
	}

	// Mapping. Relative patterns stay relative to the file that named them.
	for _, pattern := range other.Mapping.Files {
		if !filepath.IsAbs(pattern) && other.BaseDir != "" {
			pattern = filepath.Join(other.BaseDir, pattern)
		}
		if !slices.Contains(c.Mapping.Files, pattern) {
			c.Mapping.Files = append(c.Mapping.Files, pattern)
		}
	}

	// Export
	if other.Export.Format != "" {
		c.Export.Format = other.Export.Format
	}
	if other.Export.BaseIRI != "" {
		c.Export.BaseIRI = other.Export.BaseIRI
	}
	if other.Export.Profile != "" {
		c.Export.Profile = other.Export.Profile
	}

	if other.BaseDir != "" {
		c.BaseDir = other.BaseDir
	}
}

// ExportFormat returns the parsed export format.
func (c *Config) ExportFormat() export.Format {
	f, err := export.ParseFormat(c.Export.Format)
	if err != nil {
		return export.FormatTurtle
	}
	return f
}
