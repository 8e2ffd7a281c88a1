// Package command maps action tokens from the command surface to navigation
// transitions and direct font mutations. It is the single entry point for
// the CLI dispatcher and the completion callback.
package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kittyfont/kittyfont/internal/application/usecase"
	"github.com/kittyfont/kittyfont/internal/domain/entity"
	"github.com/kittyfont/kittyfont/internal/nav"
)

// Action tokens accepted by Dispatch. The empty action opens the main menu.
const (
	ActionMenu       = ""
	ActionCheck      = "check"
	ActionFloatCheck = "float_check"
	ActionSetFont    = "set_font"
	ActionSetSize    = "set_size"
	ActionSizeUp     = "size_up"
	ActionSizeDown   = "size_down"
	ActionList       = "list"
	ActionFloatList  = "float_list"
	ActionClose      = "close"
)

// ErrInvalidSize reports an unparseable size argument.
var ErrInvalidSize = errors.New("invalid font size argument for set_size action")

// Actions lists the dispatchable tokens, sorted, for completion.
func Actions() []string {
	return []string{
		ActionCheck,
		ActionClose,
		ActionFloatCheck,
		ActionFloatList,
		ActionList,
		ActionSetFont,
		ActionSetSize,
		ActionSizeDown,
		ActionSizeUp,
	}
}

// OpensPanel reports whether dispatching the action opens an interactive
// panel rather than printing a notice. set_font and set_size only open
// panels when invoked without an argument.
func OpensPanel(action, arg string) bool {
	switch action {
	case ActionMenu, ActionFloatCheck, ActionFloatList:
		return true
	case ActionSetFont, ActionSetSize:
		return arg == ""
	}
	return false
}

// Router dispatches parsed actions against the navigation engine and the
// font use cases.
type Router struct {
	engine  *nav.Engine
	fonts   *usecase.ManageFontUseCase
	browser *usecase.BrowseFontsUseCase
}

// New creates a router over the given engine and use cases.
func New(engine *nav.Engine, fonts *usecase.ManageFontUseCase, browser *usecase.BrowseFontsUseCase) *Router {
	return &Router{
		engine:  engine,
		fonts:   fonts,
		browser: browser,
	}
}

// Dispatch executes one action with its optional argument. The returned
// notice, when non-empty, is user-visible text. An unrecognized action
// reports a notice and changes no state.
func (r *Router) Dispatch(ctx context.Context, action, arg string) (string, error) {
	switch action {
	case ActionMenu:
		return r.absorb(r.engine.OpenMenu(ctx))
	case ActionCheck:
		return r.check(ctx)
	case ActionFloatCheck:
		return r.absorb(r.engine.OpenFontInfo(ctx))
	case ActionSetFont:
		return r.setFont(ctx, arg)
	case ActionSetSize:
		return r.setSize(ctx, arg)
	case ActionSizeUp:
		return r.adjustSize(ctx, true)
	case ActionSizeDown:
		return r.adjustSize(ctx, false)
	case ActionList:
		return r.list(ctx)
	case ActionFloatList:
		return r.absorb(r.engine.OpenFontList(ctx))
	case ActionClose:
		return r.absorb(r.engine.Close(ctx))
	}
	return "Unknown command: " + action, nil
}

func (r *Router) check(ctx context.Context) (string, error) {
	settings, err := r.fonts.Current(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Font family: %s\nFont size: %s", settings.Family, settings.SizeText), nil
}

func (r *Router) setFont(ctx context.Context, arg string) (string, error) {
	if arg == "" {
		return r.absorb(r.engine.OpenFamilyPicker(ctx))
	}

	display, err := r.fonts.SetFamily(ctx, arg)
	if err != nil {
		return "", err
	}
	return "Font family set to " + display, nil
}

func (r *Router) setSize(ctx context.Context, arg string) (string, error) {
	if arg == "" {
		return r.absorb(r.engine.OpenSizeControl(ctx))
	}

	points, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidSize, arg)
	}

	applied, err := r.fonts.SetSize(ctx, points)
	if err != nil {
		return "", err
	}
	if err := r.engine.RefreshSize(ctx, applied); err != nil {
		return "", err
	}
	return "Font size set to " + entity.FormatSize(applied), nil
}

func (r *Router) adjustSize(ctx context.Context, up bool) (string, error) {
	var (
		size *entity.FontSize
		err  error
	)
	if up {
		size, err = r.fonts.SizeUp(ctx)
	} else {
		size, err = r.fonts.SizeDown(ctx)
	}
	if err != nil {
		return "", err
	}

	if err := r.engine.RefreshSize(ctx, size.Points); err != nil {
		return "", err
	}
	return "Font size set to " + size.Text(), nil
}

func (r *Router) list(ctx context.Context) (string, error) {
	names, err := r.browser.Compatible(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Available fonts:")
	for _, name := range names {
		b.WriteString("\n  - ")
		b.WriteString(name)
	}
	return b.String(), nil
}

// absorb converts the benign open/close guards into informational notices.
func (r *Router) absorb(err error) (string, error) {
	switch {
	case errors.Is(err, nav.ErrAlreadyOpen):
		return "Window is already open", nil
	case errors.Is(err, nav.ErrAlreadyClosed):
		return "Window is already closed", nil
	case err != nil:
		return "", err
	}
	return "", nil
}
