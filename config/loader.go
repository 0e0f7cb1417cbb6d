package config

import (
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// ProjectConfigFile is the name of the project-level config file,
	// searched upward from the working directory.
	ProjectConfigFile = "schemaprofile.yaml"
	// UserConfigDir is the directory for user-level config.
	UserConfigDir = ".config/schemaprofile"
	// UserConfigFile is the name of the user-level config file.
	UserConfigFile = "config.yaml"
)

// Loader handles configuration loading with layered precedence.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load loads configuration with layered precedence: defaults, then the
// user config, then the nearest project config.
func (l *Loader) Load() (*Config, error) {
	config := DefaultConfig()

	userConfigPath := l.userConfigPath()
	if userConfig, err := LoadFromFile(userConfigPath); err == nil {
		l.logger.Debug("Loaded user config", "path", userConfigPath)
		config.Merge(userConfig)
	} else if !os.IsNotExist(err) {
		l.logger.Warn("Failed to load user config", "path", userConfigPath, "error", err)
	}

	if projectConfigPath := l.findProjectConfig(); projectConfigPath != "" {
		if projectConfig, err := LoadFromFile(projectConfigPath); err == nil {
			l.logger.Debug("Loaded project config", "path", projectConfigPath)
			config.Merge(projectConfig)
		} else {
			l.logger.Warn("Failed to load project config", "path", projectConfigPath, "error", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (l *Loader) userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}

// findProjectConfig walks from the working directory toward the root
// looking for a project config file.
func (l *Loader) findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
