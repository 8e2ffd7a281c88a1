package entity

// FontSize represents the terminal font size in points.
type FontSize struct {
	Points float64
}

// Font size bounds in points
const (
	FontSizeMin  = 1.0
	FontSizeMax  = 512.0
	FontSizeStep = 0.5
)

// NewFontSize creates a font size clamped to the valid range.
func NewFontSize(points float64) *FontSize {
	return &FontSize{Points: clampFontSize(points)}
}

// Set updates the size, clamping to valid range.
func (s *FontSize) Set(points float64) {
	s.Points = clampFontSize(points)
}

// StepUp increases the size by one step.
func (s *FontSize) StepUp() {
	s.Set(s.Points + FontSizeStep)
}

// StepDown decreases the size by one step.
func (s *FontSize) StepDown() {
	s.Set(s.Points - FontSizeStep)
}

// Text renders the size as it is written to kitty.conf.
func (s *FontSize) Text() string {
	return FormatSize(s.Points)
}

// clampFontSize constrains a size to the valid range.
func clampFontSize(points float64) float64 {
	if points < FontSizeMin {
		return FontSizeMin
	}
	if points > FontSizeMax {
		return FontSizeMax
	}
	return points
}
