package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .systop.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Interval between system samples.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// HistorySize is the number of samples kept per metric history.
	HistorySize int `yaml:"history_size" mapstructure:"history_size"`

	// Sort is the initial process table sort: "cpu", "memory", "pid", or "name".
	Sort string `yaml:"sort" mapstructure:"sort"`

	// Debug enables debug logging (same effect as SYSTOP_DEBUG=1).
	Debug bool `yaml:"debug" mapstructure:"debug"`

	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:     CurrentConfigVersion,
		Interval:    time.Second,
		HistorySize: 60,
		Sort:        "cpu",
		Debug:       false,
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
