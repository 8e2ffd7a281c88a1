// Package config provides default configuration values for kittyfont.
package config

import (
	"time"
)

// Default configuration constants
const (
	// DefaultKittyConfPath is where kitty keeps its configuration by default.
	DefaultKittyConfPath = "~/.config/kitty/kitty.conf"

	// Layout defaults
	defaultListWidth = 80 // characters

	// External command defaults
	defaultCommandTimeoutSec = 10 // seconds
)

// DefaultConfig returns the default configuration values for kittyfont.
func DefaultConfig() *Config {
	return &Config{
		KittyConfPath:  DefaultKittyConfPath,
		Border:         BorderSingle,
		ListWidth:      defaultListWidth,
		CommandTimeout: time.Second * defaultCommandTimeoutSec,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console", // console or json
		},
	}
}

// Borders returns every supported border style name.
func Borders() []Border {
	return []Border{
		BorderNone,
		BorderSingle,
		BorderDouble,
		BorderRounded,
		BorderSolid,
		BorderShadow,
	}
}
