// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"errors"
	"fmt"
)

// ErrSizeUnknown indicates kitty.conf carries no parseable font_size value,
// so relative size adjustments have no base to work from.
var ErrSizeUnknown = errors.New("current font size is not a number")

// FontNotInstalledError indicates a requested font family is not in the
// compatible-font catalog. Suggestion carries the closest catalog entry when
// one is close enough to look like a typo.
type FontNotInstalledError struct {
	Family     string
	Suggestion string
}

func (e *FontNotInstalledError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("font %q is not installed or not usable by kitty (did you mean %q?)", e.Family, e.Suggestion)
	}
	return fmt.Sprintf("font %q is not installed or not usable by kitty", e.Family)
}
