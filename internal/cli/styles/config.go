package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kittyfont/kittyfont/internal/config"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file line.
func (r *ConfigRenderer) RenderConfigInfo(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	return fmt.Sprintf(
		"\n  %s Config %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
	)
}

// RenderSettings renders the effective configuration values.
func (r *ConfigRenderer) RenderSettings(cfg *config.Config) string {
	keyStyle := r.theme.Highlight
	valueStyle := r.theme.Normal

	rows := []struct {
		key   string
		value string
	}{
		{"kitty_conf_path", cfg.KittyConfPath},
		{"border", string(cfg.Border)},
		{"list_width", fmt.Sprintf("%d", cfg.ListWidth)},
		{"command_timeout", cfg.CommandTimeout.String()},
		{"logging.level", cfg.Logging.Level},
		{"logging.format", cfg.Logging.Format},
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf(
			"  %s %s\n",
			keyStyle.Render(fmt.Sprintf("%-16s", row.key)),
			valueStyle.Render(row.value),
		))
	}

	return sb.String()
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

// RenderNoConfigFile renders message when config file doesn't exist yet.
func (r *ConfigRenderer) RenderNoConfigFile(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle
	hintStyle := r.theme.Subtle

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
		hintStyle.Render("Config file will be created on first run with all defaults."),
	)
}
