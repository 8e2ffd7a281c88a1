package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kittyfont/kittyfont/internal/application/port"
)

// PanelRenderer draws navigation panels as bordered boxes with the title
// set into the top edge, the way kitty draws its own overlay windows.
type PanelRenderer struct {
	theme *Theme
}

// NewPanelRenderer creates a renderer bound to a theme.
func NewPanelRenderer(theme *Theme) *PanelRenderer {
	return &PanelRenderer{theme: theme}
}

// Render draws one panel. The cursor row, when valid, is highlighted.
// Panels taller than their declared height scroll to keep the cursor
// visible.
func (r *PanelRenderer) Render(spec port.PanelSpec) string {
	t := r.theme

	lines, cursor := window(spec.Lines, spec.Cursor, spec.Height)

	inner := spec.Width - 2
	if min := lipgloss.Width(spec.Title); inner < min {
		inner = min
	}

	rows := make([]string, 0, len(lines))
	for i, line := range lines {
		style := t.Normal
		if i == cursor {
			style = t.Highlight
		}
		rows = append(rows, style.Render(pad(line, inner)))
	}

	box := t.PanelBox.Render(strings.Join(rows, "\n"))
	return r.topEdge(spec.Title, lipgloss.Width(box)) + "\n" + box
}

// topEdge builds the top border line with the title set into it.
func (r *PanelRenderer) topEdge(title string, total int) string {
	t := r.theme
	b := t.PanelBorder

	label := t.Title.Render(title)
	fill := total - 2 - lipgloss.Width(label)
	if fill < 0 {
		fill = 0
	}

	return t.FrameStyle.Render(b.TopLeft) +
		label +
		t.FrameStyle.Render(strings.Repeat(b.Top, fill)+b.TopRight)
}

// window slices lines down to height rows, keeping the cursor centered
// where possible, and returns the cursor position within the slice.
func window(lines []string, cursor, height int) ([]string, int) {
	if height <= 0 || len(lines) <= height {
		return lines, cursor
	}

	top := cursor - height/2
	if top < 0 {
		top = 0
	}
	if top > len(lines)-height {
		top = len(lines) - height
	}

	return lines[top : top+height], cursor - top
}

// pad right-pads a line to the panel width so the highlight covers the
// full row.
func pad(line string, width int) string {
	if n := width - lipgloss.Width(line); n > 0 {
		return line + strings.Repeat(" ", n)
	}
	return line
}
