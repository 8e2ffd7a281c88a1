// Package nav owns the modal panel state machine: which overlay panel is
// visible, how keys drive it, and how selections made inside a panel are
// applied to the Kitty configuration.
package nav

import (
	"context"
	"errors"
	"fmt"

	"github.com/kittyfont/kittyfont/internal/application/port"
	"github.com/kittyfont/kittyfont/internal/application/usecase"
	"github.com/kittyfont/kittyfont/internal/config"
	"github.com/kittyfont/kittyfont/internal/domain/entity"
	"github.com/kittyfont/kittyfont/internal/logging"
)

// Guard errors for panel transitions. Both are recoverable user notices at
// the command boundary, not failures.
var (
	ErrAlreadyOpen   = errors.New("window is already open")
	ErrAlreadyClosed = errors.New("window is already closed")
)

const pickerHeight = 10

// Engine is the state machine over the overlay panels. It owns at most one
// live panel at a time and borrows the panel's surface handle from the host
// for exactly that panel's lifetime. The engine does no locking of its own;
// the application serializes every entry point behind a single mutex.
type Engine struct {
	surface port.Surface
	fonts   *usecase.ManageFontUseCase
	browser *usecase.BrowseFontsUseCase
	cfg     *config.Config

	panel panel
}

// New creates a navigation engine rendering through surface.
func New(surface port.Surface, fonts *usecase.ManageFontUseCase, browser *usecase.BrowseFontsUseCase, cfg *config.Config) *Engine {
	return &Engine{
		surface: surface,
		fonts:   fonts,
		browser: browser,
		cfg:     cfg,
	}
}

// State reports the current machine state. StateClosed means no panel is
// displayed and no surface handle is held.
func (e *Engine) State() State {
	if e.panel == nil {
		return StateClosed
	}
	return e.panel.state()
}

// OpenMenu opens the main menu panel.
func (e *Engine) OpenMenu(ctx context.Context) error {
	if e.panel != nil {
		return ErrAlreadyOpen
	}

	items := menuItems()
	h, err := e.open(ctx, port.PanelSpec{
		Kind:   port.PanelMainMenu,
		Title:  titleMenu,
		Lines:  items,
		Width:  panelWidth(items),
		Height: len(items),
		Cursor: 0,
	})
	if err != nil {
		return err
	}

	e.panel = &menuPanel{h: h, items: items}
	return nil
}

// OpenFamilyPicker opens the font family picker over the compatible catalog,
// with the cursor pre-positioned on the current font when it is listed.
func (e *Engine) OpenFamilyPicker(ctx context.Context) error {
	if e.panel != nil {
		return ErrAlreadyOpen
	}

	names, err := e.browser.Compatible(ctx)
	if err != nil {
		return err
	}
	settings, err := e.fonts.Current(ctx)
	if err != nil {
		return err
	}

	height := len(names)
	if height > pickerHeight {
		height = pickerHeight
	}
	cursor := indexOf(names, settings.Family)

	h, err := e.open(ctx, port.PanelSpec{
		Kind:   port.PanelFamilyPicker,
		Title:  titlePicker,
		Lines:  names,
		Width:  panelWidth(names),
		Height: height,
		Cursor: cursor,
	})
	if err != nil {
		return err
	}

	e.panel = &familyPanel{h: h, names: names, cursor: cursor}
	return nil
}

// OpenSizeControl opens the interactive size adjuster. The transition aborts
// with ErrSizeUnknown when the configured size has no parseable baseline.
func (e *Engine) OpenSizeControl(ctx context.Context) error {
	if e.panel != nil {
		return ErrAlreadyOpen
	}

	settings, err := e.fonts.Current(ctx)
	if err != nil {
		return err
	}
	points, ok := settings.Size()
	if !ok {
		return usecase.ErrSizeUnknown
	}

	lines := sizeLines(points)
	h, err := e.open(ctx, port.PanelSpec{
		Kind:   port.PanelSizeControl,
		Title:  titleSize,
		Lines:  lines,
		Width:  panelWidth(lines),
		Height: len(lines),
		Cursor: -1,
	})
	if err != nil {
		return err
	}

	e.panel = &sizePanel{h: h, size: entity.FontSize{Points: points}}
	return nil
}

// OpenFontInfo opens the read-only current-settings panel.
func (e *Engine) OpenFontInfo(ctx context.Context) error {
	if e.panel != nil {
		return ErrAlreadyOpen
	}

	settings, err := e.fonts.Current(ctx)
	if err != nil {
		return err
	}

	lines := infoLines(settings)
	h, err := e.open(ctx, port.PanelSpec{
		Kind:   port.PanelFontInfo,
		Title:  titleInfo,
		Lines:  lines,
		Width:  panelWidth(lines),
		Height: len(lines),
		Cursor: -1,
	})
	if err != nil {
		return err
	}

	e.panel = &infoPanel{h: h}
	return nil
}

// OpenFontList opens the read-only multi-column listing of compatible fonts.
func (e *Engine) OpenFontList(ctx context.Context) error {
	if e.panel != nil {
		return ErrAlreadyOpen
	}

	names, err := e.browser.Compatible(ctx)
	if err != nil {
		return err
	}

	lines := formatColumns(names, e.cfg.ListWidth)
	h, err := e.open(ctx, port.PanelSpec{
		Kind:   port.PanelFontList,
		Title:  titleList,
		Lines:  lines,
		Width:  panelWidth(lines),
		Height: len(lines),
		Cursor: -1,
	})
	if err != nil {
		return err
	}

	e.panel = &listPanel{h: h}
	return nil
}

// Close destroys the live panel and releases its surface handle. The handle
// is dropped even when the host reports a close failure.
func (e *Engine) Close(ctx context.Context) error {
	if e.panel == nil {
		return ErrAlreadyClosed
	}

	h := e.panel.handle()
	state := e.panel.state()
	e.panel = nil

	if err := e.surface.ClosePanel(ctx, h); err != nil {
		return fmt.Errorf("failed to close panel: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("panel", string(state)).Msg("Panel closed")
	return nil
}

// RefreshSize repaints the size control after an out-of-panel size change.
// A closed or different panel is a silent no-op so command-driven size
// adjustments work without one.
func (e *Engine) RefreshSize(ctx context.Context, points float64) error {
	p, ok := e.panel.(*sizePanel)
	if !ok {
		return nil
	}

	p.size = entity.FontSize{Points: points}
	if err := e.surface.UpdatePanel(ctx, p.h, sizeLines(points)); err != nil {
		return fmt.Errorf("failed to refresh size panel: %w", err)
	}
	return nil
}

// HandleKey routes one keypress to the live panel. The returned notice, when
// non-empty, is a confirmation for the user. Keys arriving with no panel open
// are ignored.
func (e *Engine) HandleKey(ctx context.Context, key string) (string, error) {
	switch p := e.panel.(type) {
	case *menuPanel:
		return e.handleMenuKey(ctx, p, key)
	case *familyPanel:
		return e.handleFamilyKey(ctx, p, key)
	case *sizePanel:
		return e.handleSizeKey(ctx, p, key)
	case *infoPanel, *listPanel:
		if key == "q" || key == "esc" {
			return "", e.Close(ctx)
		}
	}
	return "", nil
}

func (e *Engine) handleMenuKey(ctx context.Context, p *menuPanel, key string) (string, error) {
	switch key {
	case "up", "k":
		return "", e.moveCursor(ctx, p.h, &p.cursor, -1, len(p.items))
	case "down", "j":
		return "", e.moveCursor(ctx, p.h, &p.cursor, 1, len(p.items))
	case "enter":
		return "", e.activateMenuItem(ctx, p.items[p.cursor])
	case "q", "esc":
		return "", e.Close(ctx)
	}
	return "", nil
}

func (e *Engine) activateMenuItem(ctx context.Context, item string) error {
	if err := e.Close(ctx); err != nil {
		return err
	}

	switch item {
	case menuCheckFont:
		return e.OpenFontInfo(ctx)
	case menuSetFamily:
		return e.OpenFamilyPicker(ctx)
	case menuSetSize:
		return e.OpenSizeControl(ctx)
	case menuShowInstalled:
		return e.OpenFontList(ctx)
	}
	return nil
}

func (e *Engine) handleFamilyKey(ctx context.Context, p *familyPanel, key string) (string, error) {
	switch key {
	case "up", "k":
		return "", e.moveCursor(ctx, p.h, &p.cursor, -1, len(p.names))
	case "down", "j":
		return "", e.moveCursor(ctx, p.h, &p.cursor, 1, len(p.names))
	case "enter":
		if len(p.names) == 0 {
			return "", nil
		}
		display, err := e.fonts.SetFamily(ctx, entity.NormalizeFamily(p.names[p.cursor]))
		if err != nil {
			return "", err
		}
		// The picker stays open so the user can keep trying fonts.
		return "Font family set to " + display, nil
	case "q":
		return "", e.Close(ctx)
	case "esc", "backspace":
		return "", e.back(ctx)
	}
	return "", nil
}

func (e *Engine) handleSizeKey(ctx context.Context, p *sizePanel, key string) (string, error) {
	switch key {
	case "+", "=", "up", "k":
		return "", e.adjustSize(ctx, p, true)
	case "-", "_", "down", "j":
		return "", e.adjustSize(ctx, p, false)
	case "q":
		return "", e.Close(ctx)
	case "esc", "backspace":
		return "", e.back(ctx)
	}
	return "", nil
}

func (e *Engine) adjustSize(ctx context.Context, p *sizePanel, up bool) error {
	var (
		size *entity.FontSize
		err  error
	)
	if up {
		size, err = e.fonts.SizeUp(ctx)
	} else {
		size, err = e.fonts.SizeDown(ctx)
	}
	if err != nil {
		return err
	}

	p.size = *size
	if err := e.surface.UpdatePanel(ctx, p.h, sizeLines(size.Points)); err != nil {
		return fmt.Errorf("failed to refresh size panel: %w", err)
	}
	return nil
}

// back closes the current panel and reopens the main menu as one user action.
func (e *Engine) back(ctx context.Context) error {
	if err := e.Close(ctx); err != nil {
		return err
	}
	return e.OpenMenu(ctx)
}

func (e *Engine) moveCursor(ctx context.Context, h port.PanelHandle, cursor *int, delta, count int) error {
	next := *cursor + delta
	if next < 0 || next >= count {
		return nil
	}

	*cursor = next
	if err := e.surface.MoveCursor(ctx, h, next); err != nil {
		return fmt.Errorf("failed to move cursor: %w", err)
	}
	return nil
}

func (e *Engine) open(ctx context.Context, spec port.PanelSpec) (port.PanelHandle, error) {
	h, err := e.surface.OpenPanel(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s panel: %w", spec.Kind, err)
	}

	logging.FromContext(ctx).Debug().
		Str("panel", string(spec.Kind)).
		Int("lines", len(spec.Lines)).
		Msg("Panel opened")
	return h, nil
}
