package nav

import (
	"unicode/utf8"

	"github.com/kittyfont/kittyfont/internal/application/port"
	"github.com/kittyfont/kittyfont/internal/domain/entity"
)

// State identifies which panel, if any, the engine currently owns.
type State string

const (
	StateClosed       State = "closed"
	StateMainMenu     State = State(port.PanelMainMenu)
	StateFamilyPicker State = State(port.PanelFamilyPicker)
	StateSizeControl  State = State(port.PanelSizeControl)
	StateFontInfo     State = State(port.PanelFontInfo)
	StateFontList     State = State(port.PanelFontList)
)

// Panel titles as rendered by the host surface.
const (
	titleMenu   = " Kittyfont "
	titlePicker = " Choose font family "
	titleSize   = " Change font size "
	titleInfo   = " Current Font Info "
	titleList   = " Available fonts "
)

// Main menu entries, in display order. Enter dispatches on the selected text.
const (
	menuCheckFont     = "Check current font"
	menuSetFamily     = "Set font family"
	menuSetSize       = "Set font size"
	menuShowInstalled = "Show installed fonts"
)

func menuItems() []string {
	return []string{menuCheckFont, menuSetFamily, menuSetSize, menuShowInstalled}
}

// panel is the single live overlay. Exactly one variant exists at a time and
// each carries only the data its kind needs, so a picker cannot end up with a
// numeric value or a size control with an item list.
type panel interface {
	state() State
	handle() port.PanelHandle
}

type menuPanel struct {
	h      port.PanelHandle
	items  []string
	cursor int
}

func (p *menuPanel) state() State { return StateMainMenu }
func (p *menuPanel) handle() port.PanelHandle { return p.h }

type familyPanel struct {
	h      port.PanelHandle
	names  []string
	cursor int
}

func (p *familyPanel) state() State { return StateFamilyPicker }
func (p *familyPanel) handle() port.PanelHandle { return p.h }

type sizePanel struct {
	h    port.PanelHandle
	size entity.FontSize
}

func (p *sizePanel) state() State { return StateSizeControl }
func (p *sizePanel) handle() port.PanelHandle { return p.h }

type infoPanel struct {
	h port.PanelHandle
}

func (p *infoPanel) state() State { return StateFontInfo }
func (p *infoPanel) handle() port.PanelHandle { return p.h }

type listPanel struct {
	h port.PanelHandle
}

func (p *listPanel) state() State { return StateFontList }
func (p *listPanel) handle() port.PanelHandle { return p.h }

func sizeLines(points float64) []string {
	return []string{"", "Current size: [ " + entity.FormatSize(points) + " ]", ""}
}

func infoLines(settings *entity.FontSettings) []string {
	return []string{
		"Family: " + settings.Family,
		"Size:   " + settings.SizeText,
	}
}

// panelWidth sizes a panel to its widest line plus border padding.
func panelWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > widest {
			widest = n
		}
	}
	if widest == 0 {
		widest = 20
	}
	return widest + 4
}

func indexOf(items []string, target string) int {
	for i, item := range items {
		if item == target {
			return i
		}
	}
	return 0
}
