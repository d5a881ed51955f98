// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"power-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Data contains data file settings
	Data DataConfig `json:"data"`

	// Output contains output settings
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// DataConfig contains data file settings
type DataConfig struct {
	// Directory holds the CSV data files
	Directory string `json:"directory"`

	// AccountsFile is the optional HCL account definition file,
	// relative to Directory
	AccountsFile string `json:"accounts_file"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// ShowSeries prints the full day-by-day series in CLI output
	ShowSeries bool `json:"show_series"`

	// CurrencySymbol is used in CLI output
	CurrencySymbol string `json:"currency_symbol"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Data: DataConfig{
			Directory:    "data",
			AccountsFile: "accounts.hcl",
		},
		Output: OutputConfig{
			DefaultFormat:  "cli",
			ShowSeries:     false,
			CurrencySymbol: "EUR",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file, falling back to defaults
// when the file does not exist
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
