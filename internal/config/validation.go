// Package config provides validation utilities for configuration values.
package config

import (
	"fmt"
	"strings"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	if config.KittyConfPath == "" {
		validationErrors = append(validationErrors, "kitty_conf_path cannot be empty")
	}

	// Validate border style
	switch config.Border {
	case BorderNone, BorderSingle, BorderDouble, BorderRounded, BorderSolid, BorderShadow:
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("border must be one of: none, single, double, rounded, solid, shadow (got: %s)", config.Border))
	}

	// Validate numeric ranges
	if config.ListWidth < 20 || config.ListWidth > 500 {
		validationErrors = append(validationErrors, "list_width must be between 20 and 500")
	}
	if config.CommandTimeout <= 0 {
		validationErrors = append(validationErrors, "command_timeout must be positive")
	}

	// Validate logging values
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be 'console' or 'json' (got: %s)", config.Logging.Format))
	}

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}
