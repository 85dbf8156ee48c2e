package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cratestack/cratestack/internal/model"
)

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.cratestack/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".cratestack")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	var config model.AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	// Ensure RecentRequests is never nil
	if config.RecentRequests == nil {
		config.RecentRequests = []string{}
	}
	sanitizeDefaults(&config)
	return config, nil
}

// sanitizeDefaults repairs an AppConfig loaded from disk against the solve
// settings it seeds: a hand-edited or stale config file can carry a mode
// string or iteration/temperature value Solve would reject outright, so an
// invalid value falls back to DefaultSettings() rather than surfacing a
// solver error on the next run that has nothing to do with the actual request.
func sanitizeDefaults(config *model.AppConfig) {
	defaults := model.DefaultSettings()
	if config.DefaultMode != model.ModeStrip && config.DefaultMode != model.ModeBin {
		config.DefaultMode = defaults.Mode
	}
	if config.DefaultMaxIter <= 0 {
		config.DefaultMaxIter = defaults.MaxIter
	}
	if config.DefaultTemperature < 0 {
		config.DefaultTemperature = defaults.Temperature
	}
	if config.AutoSaveInterval < 0 {
		config.AutoSaveInterval = 0
	}
}
