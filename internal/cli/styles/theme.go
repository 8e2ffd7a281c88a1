// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kittyfont/kittyfont/internal/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	// Base colors
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Frame  lipgloss.Color

	// Additional semantic colors
	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	// PanelBorder is the frame drawn around panels, selected by the
	// border key in config.
	PanelBorder lipgloss.Border

	// Pre-built styles
	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	Notice       lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	FrameStyle lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	PanelBox lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style
}

// NewTheme creates a Theme from config.
func NewTheme(cfg *config.Config) *Theme {
	border := config.BorderSingle
	if cfg != nil && cfg.Border != "" {
		border = cfg.Border
	}

	t := &Theme{
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#909090"),
		Accent: lipgloss.Color("#4ade80"),
		Frame:  lipgloss.Color("#333333"),

		Error:   lipgloss.Color("#ef4444"),
		Warning: lipgloss.Color("#f59e0b"),
		Success: lipgloss.Color("#4ade80"),

		PanelBorder: Border(border),
	}

	t.buildStyles()
	return t
}

// Border maps a configured border name onto a lipgloss border. Unknown
// names fall back to a plain single-line frame.
func Border(border config.Border) lipgloss.Border {
	switch border {
	case config.BorderNone:
		return lipgloss.HiddenBorder()
	case config.BorderDouble:
		return lipgloss.DoubleBorder()
	case config.BorderRounded:
		return lipgloss.RoundedBorder()
	case config.BorderSolid:
		return lipgloss.BlockBorder()
	case config.BorderShadow:
		return lipgloss.OuterHalfBlockBorder()
	default:
		return lipgloss.NormalBorder()
	}
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	// Text styles
	t.Title = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.Notice = lipgloss.NewStyle().
		Foreground(t.Muted).
		Italic(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	t.FrameStyle = lipgloss.NewStyle().
		Foreground(t.Frame)

	// Badge styles
	t.Badge = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#0a0a0b")).
		Background(t.Accent).
		Padding(0, 1)

	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(lipgloss.Color("#2d2d2d")).
		Padding(0, 1)

	// Panel body below the title edge. The top border is drawn by the
	// panel renderer so the title can sit inside it.
	t.PanelBox = lipgloss.NewStyle().
		BorderStyle(t.PanelBorder).
		BorderTop(false).
		BorderForeground(t.Frame).
		Padding(0, 1)

	// Box/container styles
	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Frame).
		Padding(1, 2)

	t.BoxHeader = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Frame).
		MarginBottom(1)
}
