package entity

import (
	"strconv"
	"strings"
	"unicode"
)

// SizeUnknown is the size text reported when kitty.conf carries no parseable
// font_size directive. Kitty falls back to its built-in default in that case.
const SizeUnknown = "default"

// FontSettings is a snapshot of the font directives in kitty.conf.
// Family is empty when no font_family line exists. SizeText holds the raw
// size value, or SizeUnknown when the directive is missing or malformed.
type FontSettings struct {
	Family   string
	SizeText string
}

// Size parses SizeText as points. ok is false for SizeUnknown or garbage.
func (s *FontSettings) Size() (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s.SizeText), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// NormalizeFamily strips all whitespace from a family name, producing the
// lookup key used by the catalog ("Fira Code" and "FiraCode" collapse to the
// same key).
func NormalizeFamily(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)
}

// FormatSize renders a size in points the way kitty.conf expects: minimal
// digits, no trailing zeros (13, 12.5).
func FormatSize(points float64) string {
	return strconv.FormatFloat(points, 'f', -1, 64)
}
