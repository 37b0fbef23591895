package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"syntaxsample/internal/sample"
)

// Config holds all syntaxsample configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Fixture literals
	Sample SampleConfig `yaml:"sample"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// SampleConfig holds the literals fed to the fixture operations.
type SampleConfig struct {
	Name      string `yaml:"name"`       // interpolated into the greeting
	Numbers   []int  `yaml:"numbers"`    // input to the even-square filter
	A         int    `yaml:"a"`          // first addend of the entry sequence
	B         int    `yaml:"b"`          // second addend of the entry sequence
	HeldValue int    `yaml:"held_value"` // value stored in the holder
}

// DefaultConfig returns the fixture defaults.
func DefaultConfig() *Config {
	entry := sample.DefaultEntry()

	return &Config{
		Name:    "syntaxsample",
		Version: "0.1.0",

		Sample: SampleConfig{
			Name:      sample.DefaultName,
			Numbers:   sample.Numbers(),
			A:         entry.A,
			B:         entry.B,
			HeldValue: entry.Held,
		},

		Logging: LoggingConfig{
			Level:     "info",
			DebugMode: false,
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if name := os.Getenv("SAMPLE_NAME"); name != "" {
		c.Sample.Name = name
	}
	if level := os.Getenv("SAMPLE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	switch strings.ToLower(os.Getenv("SAMPLE_DEBUG")) {
	case "1", "true", "yes":
		c.Logging.DebugMode = true
	}
}

// Validate checks the configuration for values nothing downstream can use.
func (c *Config) Validate() error {
	if _, err := c.Logging.ZapLevel(); err != nil {
		return err
	}
	return nil
}
