// Package config provides configuration loading and validation for agesweep.
// It reads TOML (default) or YAML files, applies defaults, expands
// environment variables and ~ in paths, and validates the result.
//
// Configuration structure:
//   - days, remove_empty_dirs: sweep behaviour
//   - roots: directories to sweep, in order
//   - exclude: extra regular expressions matched against file base names,
//     added to the built-in .DS_Store, Icon and Thumbs.db patterns
//   - protect: wildcard patterns matched against full paths
//   - [logging]: level, format, output and file rotation
//   - [metrics]: node_exporter textfile output
//
// Environment variables:
// Paths can reference ${VAR} or ${VAR:default}, e.g. roots = ["${XDG_DOWNLOAD_DIR:~/Downloads}"].
package config

import "github.com/aatumaykin/agesweep/internal/constants"

// Config represents the main application configuration.
type Config struct {
	Days            int           `toml:"days" yaml:"days"`
	RemoveEmptyDirs bool          `toml:"remove_empty_dirs" yaml:"remove_empty_dirs"`
	Roots           []string      `toml:"roots" yaml:"roots"`
	Exclude         []string      `toml:"exclude" yaml:"exclude"`
	Protect         []string      `toml:"protect" yaml:"protect"`
	Logging         LoggingConfig `toml:"logging" yaml:"logging"`
	Metrics         MetricsConfig `toml:"metrics" yaml:"metrics"`
}

// LoggingConfig представляет конфигурацию логирования
type LoggingConfig struct {
	Level      string `toml:"level" yaml:"level"`
	Format     string `toml:"format" yaml:"format"`
	Output     string `toml:"output" yaml:"output"`
	MaxSizeMB  int    `toml:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days" yaml:"max_age_days"`
}

// MetricsConfig controls the Prometheus textfile written after each run.
type MetricsConfig struct {
	Textfile string `toml:"textfile" yaml:"textfile"`
}

// Default returns the built-in configuration. Files are decoded on top of it,
// so keys absent from a file keep these values.
func Default() *Config {
	return &Config{
		Days:    constants.DefaultDays,
		Roots:   constants.DefaultRoots(),
		Logging: LoggingConfig{
			Level:      constants.DefaultLogLevel,
			Format:     constants.DefaultLogFormat,
			Output:     constants.DefaultLogOutput,
			MaxSizeMB:  constants.DefaultLogMaxSizeMB,
			MaxBackups: constants.DefaultLogMaxBackups,
			MaxAgeDays: constants.DefaultLogMaxAgeDays,
		},
	}
}
