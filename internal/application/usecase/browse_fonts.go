package usecase

import (
	"context"
	"fmt"

	"github.com/kittyfont/kittyfont/internal/application/resolver"
	"github.com/kittyfont/kittyfont/internal/domain/entity"
	"github.com/kittyfont/kittyfont/internal/logging"
)

// BrowseFontsUseCase exposes the compatible-font catalog for listing and
// completion.
type BrowseFontsUseCase struct {
	fonts *resolver.Resolver
}

// NewBrowseFontsUseCase creates a new font browsing use case.
func NewBrowseFontsUseCase(fonts *resolver.Resolver) *BrowseFontsUseCase {
	return &BrowseFontsUseCase{fonts: fonts}
}

// Compatible returns the installed display names kitty can use, sorted.
func (uc *BrowseFontsUseCase) Compatible(ctx context.Context) ([]string, error) {
	catalog, err := uc.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Names(), nil
}

// Catalog returns the full compatible-font catalog.
func (uc *BrowseFontsUseCase) Catalog(ctx context.Context) (entity.Catalog, error) {
	log := logging.FromContext(ctx)

	catalog, err := uc.fonts.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build font catalog: %w", err)
	}

	log.Debug().Int("count", len(catalog)).Msg("retrieved font catalog")
	return catalog, nil
}

// Refresh drops the cached catalog so the next read re-enumerates.
func (uc *BrowseFontsUseCase) Refresh() {
	uc.fonts.Invalidate()
}
