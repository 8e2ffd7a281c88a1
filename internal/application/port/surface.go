package port

import "context"

// PanelKind identifies the content layout a panel displays.
type PanelKind string

const (
	// PanelMainMenu is the top-level action menu.
	PanelMainMenu PanelKind = "main_menu"
	// PanelFamilyPicker is the scrollable font family list.
	PanelFamilyPicker PanelKind = "family_picker"
	// PanelSizeControl is the interactive size adjuster.
	PanelSizeControl PanelKind = "size_control"
	// PanelFontInfo is the read-only current-settings view.
	PanelFontInfo PanelKind = "font_info"
	// PanelFontList is the read-only multi-column font listing.
	PanelFontList PanelKind = "font_list"
)

// PanelSpec describes a panel to be opened on the host surface.
type PanelSpec struct {
	Kind   PanelKind
	Title  string
	Lines  []string
	Width  int
	Height int
	Cursor int // initial highlight row, -1 for none
}

// PanelHandle identifies a live panel owned by the host surface. Handles are
// opaque to callers and valid until ClosePanel.
type PanelHandle interface {
	// PanelID reports the host-side identity, for logging.
	PanelID() int
}

// Surface renders panels on behalf of the navigation engine. The engine
// borrows one handle at a time and releases it on every exit path.
type Surface interface {
	// OpenPanel displays a new panel and returns its handle.
	OpenPanel(ctx context.Context, spec PanelSpec) (PanelHandle, error)

	// UpdatePanel replaces the visible lines of an open panel.
	UpdatePanel(ctx context.Context, h PanelHandle, lines []string) error

	// MoveCursor positions the highlight row of an open panel.
	MoveCursor(ctx context.Context, h PanelHandle, row int) error

	// ClosePanel releases an open panel. The handle is invalid afterwards.
	ClosePanel(ctx context.Context, h PanelHandle) error
}
