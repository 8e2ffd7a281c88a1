package repository

import (
	"context"

	"github.com/kittyfont/kittyfont/internal/domain/entity"
)

// FontSettingsRepository defines operations against the font directives in
// kitty's configuration file.
type FontSettingsRepository interface {
	// Current reads the font directives as they stand on disk.
	// Missing directives yield zero values, not errors.
	Current(ctx context.Context) (*entity.FontSettings, error)

	// ReplaceFamily rewrites the font_family directive to the given
	// installed display name, leaving every other line untouched.
	ReplaceFamily(ctx context.Context, display string) error

	// ReplaceSize rewrites the font_size directive.
	ReplaceSize(ctx context.Context, points float64) error
}
