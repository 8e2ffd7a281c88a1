package config

import (
	"fmt"

	"github.com/kittyfont/kittyfont/internal/domain/entity"
)

// SchemaKeys returns documentation for every configuration key, with the
// defaults rendered from DefaultConfig so the reference never drifts from
// the code.
func SchemaKeys() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	borders := make([]string, 0, len(Borders()))
	for _, b := range Borders() {
		borders = append(borders, string(b))
	}

	return []entity.ConfigKeyInfo{
		{
			Key:         "kitty_conf_path",
			Type:        "string",
			Default:     defaults.KittyConfPath,
			Description: "Path to the kitty configuration file to inspect and rewrite. A leading ~ is expanded when the file is opened.",
			Section:     "Files",
		},
		{
			Key:         "border",
			Type:        "string",
			Default:     string(defaults.Border),
			Description: "Frame style drawn around panels.",
			Values:      borders,
			Section:     "Appearance",
		},
		{
			Key:         "list_width",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.ListWidth),
			Description: "Target character width of the font list layout.",
			Range:       "20-500",
			Section:     "Appearance",
		},
		{
			Key:         "command_timeout",
			Type:        "duration",
			Default:     defaults.CommandTimeout.String(),
			Description: "Upper bound on every external command run (fc-list, kitty, pgrep).",
			Section:     "Commands",
		},
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Minimum severity written to the log output.",
			Values:      []string{"trace", "debug", "info", "warn", "error"},
			Section:     "Logging",
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format.",
			Values:      []string{"console", "json"},
			Section:     "Logging",
		},
	}
}
