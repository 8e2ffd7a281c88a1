package nav

import (
	"strings"
	"unicode/utf8"
)

const columnGutter = 2

// formatColumns lays names out column-major in as many columns as fit the
// target width, like ls. Every name appears exactly once; a name wider than
// the target gets a line of its own.
func formatColumns(names []string, width int) []string {
	if len(names) == 0 {
		return nil
	}

	widest := 0
	for _, name := range names {
		if n := utf8.RuneCountInString(name); n > widest {
			widest = n
		}
	}

	cols := (width + columnGutter) / (widest + columnGutter)
	if cols < 1 {
		cols = 1
	}
	if cols > len(names) {
		cols = len(names)
	}
	rows := (len(names) + cols - 1) / cols

	lines := make([]string, 0, rows)
	var b strings.Builder
	for row := 0; row < rows; row++ {
		b.Reset()
		for col := 0; col < cols; col++ {
			i := col*rows + row
			if i >= len(names) {
				break
			}
			name := names[i]
			b.WriteString(name)
			if col < cols-1 && (col+1)*rows+row < len(names) {
				b.WriteString(strings.Repeat(" ", widest-utf8.RuneCountInString(name)+columnGutter))
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}
