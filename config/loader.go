package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
)

// ProjectConfigFile is looked up in the working directory when no explicit file is given
const ProjectConfigFile = "modelgraph.yaml"

// Loader handles configuration loading with layered precedence
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new configuration loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. Project config (modelgraph.yaml in the working directory)
// 3. Explicit files, in the given order
func (l *Loader) Load(ctx context.Context, files ...string) (*Config, error) {
	config := DefaultConfig()

	if projectConfig := l.projectConfigPath(); projectConfig != "" {
		if loaded, err := LoadFromFile(ctx, projectConfig); err == nil {
			l.logger.Debug("Loaded project config", slog.String("path", projectConfig))
			config.Merge(loaded)
		} else {
			l.logger.Warn("Failed to load project config", slog.String("path", projectConfig), slog.String("error", err.Error()))
		}
	}

	for _, file := range files {
		loaded, err := LoadFromFile(ctx, file)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("Loaded config", slog.String("path", file))
		config.Merge(loaded)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (l *Loader) projectConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	candidate := filepath.Join(cwd, ProjectConfigFile)
	if _, err := os.Stat(candidate); err != nil {
		return ""
	}
	return candidate
}
