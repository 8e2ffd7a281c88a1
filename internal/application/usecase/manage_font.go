package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/kittyfont/kittyfont/internal/application/resolver"
	"github.com/kittyfont/kittyfont/internal/domain/entity"
	"github.com/kittyfont/kittyfont/internal/domain/repository"
	"github.com/kittyfont/kittyfont/internal/logging"
)

// suggestionRatio is the maximum normalized edit distance for a catalog entry
// to be offered as a typo correction.
const suggestionRatio = 0.4

// ManageFontUseCase handles reading and changing kitty's font settings.
type ManageFontUseCase struct {
	settingsRepo repository.FontSettingsRepository
	fonts        *resolver.Resolver
}

// NewManageFontUseCase creates a new font management use case.
func NewManageFontUseCase(settingsRepo repository.FontSettingsRepository, fonts *resolver.Resolver) *ManageFontUseCase {
	return &ManageFontUseCase{
		settingsRepo: settingsRepo,
		fonts:        fonts,
	}
}

// Current reads the font settings as they stand in kitty.conf.
func (uc *ManageFontUseCase) Current(ctx context.Context) (*entity.FontSettings, error) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("reading current font settings")

	settings, err := uc.settingsRepo.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read font settings: %w", err)
	}
	return settings, nil
}

// SetFamily resolves name against the compatible-font catalog and rewrites
// the font_family directive to the installed display name. An unknown name
// returns FontNotInstalledError before any file access.
func (uc *ManageFontUseCase) SetFamily(ctx context.Context, name string) (string, error) {
	log := logging.FromContext(ctx)

	display, ok, err := uc.fonts.Resolve(ctx, name)
	if err != nil {
		return "", fmt.Errorf("failed to resolve font: %w", err)
	}
	if !ok {
		return "", &FontNotInstalledError{
			Family:     name,
			Suggestion: uc.suggest(ctx, name),
		}
	}

	if err := uc.settingsRepo.ReplaceFamily(ctx, display); err != nil {
		return "", fmt.Errorf("failed to set font family: %w", err)
	}

	log.Info().Str("family", display).Msg("font family saved")
	return display, nil
}

// SetSize clamps points to the valid range and rewrites the font_size
// directive. Returns the size actually applied.
func (uc *ManageFontUseCase) SetSize(ctx context.Context, points float64) (float64, error) {
	log := logging.FromContext(ctx)

	size := entity.NewFontSize(points)
	if err := uc.settingsRepo.ReplaceSize(ctx, size.Points); err != nil {
		return 0, fmt.Errorf("failed to set font size: %w", err)
	}

	log.Info().Float64("size", size.Points).Msg("font size saved")
	return size.Points, nil
}

// SizeUp increases the current size by one step and writes it back.
// Returns ErrSizeUnknown when kitty.conf carries no parseable size.
func (uc *ManageFontUseCase) SizeUp(ctx context.Context) (*entity.FontSize, error) {
	return uc.adjustSize(ctx, entity.FontSizeStep)
}

// SizeDown decreases the current size by one step and writes it back.
// Returns ErrSizeUnknown when kitty.conf carries no parseable size.
func (uc *ManageFontUseCase) SizeDown(ctx context.Context) (*entity.FontSize, error) {
	return uc.adjustSize(ctx, -entity.FontSizeStep)
}

// adjustSize reads the current size, applies delta and writes the result.
func (uc *ManageFontUseCase) adjustSize(ctx context.Context, delta float64) (*entity.FontSize, error) {
	log := logging.FromContext(ctx)

	settings, err := uc.settingsRepo.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read font settings: %w", err)
	}

	current, ok := settings.Size()
	if !ok {
		return nil, ErrSizeUnknown
	}

	size := entity.NewFontSize(current + delta)
	log.Debug().
		Float64("from", current).
		Float64("to", size.Points).
		Msg("adjusting font size")

	if err := uc.settingsRepo.ReplaceSize(ctx, size.Points); err != nil {
		return nil, fmt.Errorf("failed to save font size: %w", err)
	}

	return size, nil
}

// suggest returns the catalog entry closest to name, or empty when nothing
// is close enough.
func (uc *ManageFontUseCase) suggest(ctx context.Context, name string) string {
	catalog, err := uc.fonts.Catalog(ctx)
	if err != nil || len(catalog) == 0 {
		return ""
	}

	query := strings.ToUpper(entity.NormalizeFamily(name))
	if query == "" {
		return ""
	}

	best := ""
	bestRatio := suggestionRatio
	for key, display := range catalog {
		candidate := strings.ToUpper(key)
		dist := levenshtein.ComputeDistance(query, candidate)
		maxlen := len(query)
		if len(candidate) > maxlen {
			maxlen = len(candidate)
		}
		ratio := float64(dist) / float64(maxlen)
		if ratio < bestRatio {
			bestRatio = ratio
			best = display
		}
	}
	return best
}
