package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if c.Run.Timeout <= 0 {
		return fmt.Errorf("run.timeout must be > 0 (got %v)", c.Run.Timeout)
	}

	return nil
}

func (l *LogConfig) validate() error {
	if !slices.Contains(validLevels, strings.ToLower(strings.TrimSpace(l.Level))) {
		return fmt.Errorf("level must be one of %s (got %q)", strings.Join(validLevels, ", "), l.Level)
	}
	if !slices.Contains(validFormats, strings.ToLower(strings.TrimSpace(l.Format))) {
		return fmt.Errorf("format must be one of %s (got %q)", strings.Join(validFormats, ", "), l.Format)
	}
	return nil
}
