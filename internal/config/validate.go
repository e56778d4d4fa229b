package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Paths.DatabasePath == "" {
		return errors.New("paths.database_path must not be empty")
	}
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must not be empty")
	}
	if c.Paths.SiteDir == "" {
		return errors.New("paths.site_dir must not be empty")
	}
	if c.AFI.BaseURL == "" {
		return errors.New("afi.base_url must not be empty")
	}
	if c.AFI.RequestDelay < 0 {
		return fmt.Errorf("afi.request_delay must not be negative, got %v", c.AFI.RequestDelay)
	}
	if c.AFI.RequestTimeout <= 0 {
		return fmt.Errorf("afi.request_timeout must be positive, got %d", c.AFI.RequestTimeout)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
