package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load загружает конфигурацию из TOML или YAML файла
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(ExpandHome(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(cfg)
	expandPaths(cfg)

	return cfg, nil
}

// LoadOptional loads path when it exists and falls back to Default otherwise.
// The boolean reports whether a file was read.
func LoadOptional(path string) (*Config, bool, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
		expandPaths(cfg)
		return cfg, false, nil
	}
	return nil, false, err
}

// applyDefaults применяет значения по умолчанию для пустых строк
func applyDefaults(c *Config) {
	if c.Logging.Level == "" {
		c.Logging.Level = Default().Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = Default().Logging.Format
	}
	if c.Logging.Output == "" {
		c.Logging.Output = Default().Logging.Output
	}
}

// expandPaths expands ${VAR} references and ~ in every path-valued field.
func expandPaths(c *Config) {
	for i, root := range c.Roots {
		c.Roots[i] = ExpandHome(expandEnv(root))
	}
	for i, p := range c.Protect {
		c.Protect[i] = ExpandHome(expandEnv(p))
	}

	if c.Logging.Output != "stdout" && c.Logging.Output != "stderr" {
		c.Logging.Output = ExpandHome(expandEnv(c.Logging.Output))
	}
	c.Metrics.Textfile = ExpandHome(expandEnv(c.Metrics.Textfile))
}
