package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aatumaykin/agesweep/internal/constants"
	"github.com/aatumaykin/agesweep/internal/logger"
	"github.com/wasilibs/go-re2"
)

// Validate проверяет валидность конфигурации и возвращает все найденные ошибки
func (c *Config) Validate() []error {
	var errors []error

	if c.Days < 0 {
		errors = append(errors, fmt.Errorf("days must be >= 0 (got %d)", c.Days))
	}
	if c.Days > constants.MaxDays {
		errors = append(errors, fmt.Errorf("days must be <= %d (got %d)", constants.MaxDays, c.Days))
	}

	if len(c.Roots) == 0 {
		errors = append(errors, fmt.Errorf("roots cannot be empty"))
	}
	for _, root := range c.Roots {
		if err := validateRoot(root); err != nil {
			errors = append(errors, err)
		}
	}

	for _, pattern := range c.Exclude {
		if _, err := re2.Compile(pattern); err != nil {
			errors = append(errors, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err))
		}
	}

	for _, pattern := range c.Protect {
		if strings.TrimSpace(pattern) == "" {
			errors = append(errors, fmt.Errorf("protect contains empty pattern"))
		}
	}

	if !logger.ValidLevel(c.Logging.Level) {
		errors = append(errors, fmt.Errorf("invalid logging.level: %s (expected: debug, info, warn, error)", c.Logging.Level))
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errors = append(errors, fmt.Errorf("invalid logging.format: %s (expected: json, text)", c.Logging.Format))
	}

	if c.Logging.Output == "" {
		errors = append(errors, fmt.Errorf("logging.output is required"))
	}

	if c.Logging.MaxSizeMB < 0 || c.Logging.MaxBackups < 0 || c.Logging.MaxAgeDays < 0 {
		errors = append(errors, fmt.Errorf("logging rotation settings must be >= 0"))
	}

	return errors
}

func validateRoot(root string) error {
	if strings.TrimSpace(root) == "" {
		return fmt.Errorf("roots contains empty path")
	}

	if !filepath.IsAbs(root) {
		return fmt.Errorf("root %q must be an absolute path", root)
	}

	if filepath.Clean(root) == string(filepath.Separator) {
		return fmt.Errorf("root %q refuses to sweep the filesystem root", root)
	}

	return nil
}
