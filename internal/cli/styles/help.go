package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/kittyfont/kittyfont/internal/application/port"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// PanelKeyMap defines the keybindings active inside a panel session.
// Bindings that do not apply to the current panel kind are disabled so
// the help bar only advertises keys the engine will act on.
type PanelKeyMap struct {
	Move      key.Binding
	Apply     key.Binding
	Adjust    key.Binding
	Back      key.Binding
	Close     key.Binding
	ForceQuit key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PanelKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Apply, k.Adjust, k.Back, k.Close}
}

// FullHelp returns keybindings for expanded help.
func (k PanelKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Apply, k.Adjust},
		{k.Back, k.Close, k.ForceQuit},
	}
}

// KeyMapFor returns the keybindings for a panel kind.
func KeyMapFor(kind port.PanelKind) PanelKeyMap {
	k := PanelKeyMap{
		Move: key.NewBinding(
			key.WithKeys("up", "down", "j", "k"),
			key.WithHelp("j/k", "move"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Adjust: key.NewBinding(
			key.WithKeys("+", "-", "=", "_"),
			key.WithHelp("+/-", "adjust"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Close: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "close"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}

	switch kind {
	case port.PanelMainMenu:
		k.Apply = key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		)
		k.Adjust.SetEnabled(false)
		k.Back.SetEnabled(false)
	case port.PanelFamilyPicker:
		k.Adjust.SetEnabled(false)
	case port.PanelSizeControl:
		k.Move.SetEnabled(false)
		k.Apply.SetEnabled(false)
	default:
		k.Move.SetEnabled(false)
		k.Apply.SetEnabled(false)
		k.Adjust.SetEnabled(false)
		k.Back.SetEnabled(false)
	}

	return k
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Frame)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Frame)
	return h
}
