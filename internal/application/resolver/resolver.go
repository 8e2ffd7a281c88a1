// Package resolver computes which installed fonts the kitty terminal can
// actually use, and memoizes the result for the process lifetime.
package resolver

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kittyfont/kittyfont/internal/application/port"
	"github.com/kittyfont/kittyfont/internal/domain/entity"
	"github.com/kittyfont/kittyfont/internal/logging"
)

// Resolver builds the compatible-font catalog: installed families intersected
// with the families kitty reports as usable, keyed by whitespace-stripped
// name. Enumeration is expensive (two external processes) so the catalog is
// built once and cached until Invalidate.
type Resolver struct {
	enumerator port.FontEnumerator
	lister     port.TerminalFontLister
	timeout    time.Duration

	mu      sync.RWMutex
	catalog entity.Catalog
	built   bool
}

// New creates a resolver. timeout bounds the combined enumeration calls;
// zero means no bound.
func New(enumerator port.FontEnumerator, lister port.TerminalFontLister, timeout time.Duration) *Resolver {
	return &Resolver{
		enumerator: enumerator,
		lister:     lister,
		timeout:    timeout,
	}
}

// Catalog returns the compatible-font catalog, building it on first use.
// A failing enumeration degrades to an empty catalog rather than aborting
// the interaction; only context cancellation is reported as an error.
func (r *Resolver) Catalog(ctx context.Context) (entity.Catalog, error) {
	r.mu.RLock()
	if r.built {
		catalog := r.catalog
		r.mu.RUnlock()
		return catalog, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock.
	if r.built {
		return r.catalog, nil
	}

	catalog, err := r.build(ctx)
	if err != nil {
		return nil, err
	}

	r.catalog = catalog
	r.built = true
	return catalog, nil
}

// Resolve normalizes name and looks it up in the catalog, returning the
// installed display name.
func (r *Resolver) Resolve(ctx context.Context, name string) (string, bool, error) {
	catalog, err := r.Catalog(ctx)
	if err != nil {
		return "", false, err
	}
	display, ok := catalog.Resolve(name)
	return display, ok, nil
}

// Invalidate drops the cached catalog so the next call re-enumerates.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.catalog = nil
	r.built = false
}

// build runs both enumerations concurrently and intersects the results.
func (r *Resolver) build(ctx context.Context) (entity.Catalog, error) {
	log := logging.FromContext(ctx)

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var installed, usable []string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fonts, err := r.enumerator.InstalledFamilies(gctx)
		if err != nil {
			log.Warn().Err(err).Msg("font enumeration failed, treating as empty")
			return nil
		}
		installed = fonts
		return nil
	})
	g.Go(func() error {
		fonts, err := r.lister.UsableFamilies(gctx)
		if err != nil {
			log.Warn().Err(err).Msg("kitty font probe failed, treating as empty")
			return nil
		}
		usable = fonts
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	usableSet := make(map[string]struct{}, len(usable))
	for _, f := range usable {
		usableSet[f] = struct{}{}
	}

	// An installed font is compatible when kitty knows it under its exact
	// name or its whitespace-stripped name. The first installed spelling of
	// a key wins.
	catalog := make(entity.Catalog, len(installed))
	for _, font := range installed {
		key := entity.NormalizeFamily(font)
		if key == "" {
			continue
		}
		if _, taken := catalog[key]; taken {
			continue
		}
		if _, ok := usableSet[font]; ok {
			catalog[key] = font
			continue
		}
		if _, ok := usableSet[key]; ok {
			catalog[key] = font
		}
	}

	log.Debug().
		Int("installed", len(installed)).
		Int("usable", len(usable)).
		Int("compatible", len(catalog)).
		Msg("built font catalog")

	return catalog, nil
}
