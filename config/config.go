// Package config provides configuration loading for the schemaprofile
// CLI. Flags always win over configuration files; the files only supply
// defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/schemaprofile/profile"
)

// Config is the complete tool configuration.
type Config struct {
	Profile ProfileConfig `yaml:"profile"`
	Log     LogConfig     `yaml:"log"`
}

// ProfileConfig holds defaults for the profile command.
type ProfileConfig struct {
	// Policy is the default skip policy mode.
	Policy string `yaml:"policy"`
	// FixDoc enables documentation whitespace normalization by default.
	FixDoc bool `yaml:"fix_doc"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is the default log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// File is an optional log file, opened in append mode.
	File string `yaml:"file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Profile: ProfileConfig{
			Policy: string(profile.ModeIncludeAll),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := profile.ParseMode(c.Profile.Policy); err != nil {
		return fmt.Errorf("profile.policy: %w", err)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	return nil
}

// Merge overlays non-zero fields from other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Profile.Policy != "" {
		c.Profile.Policy = other.Profile.Policy
	}
	if other.Profile.FixDoc {
		c.Profile.FixDoc = true
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.File != "" {
		c.Log.File = other.Log.File
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return config, nil
}
