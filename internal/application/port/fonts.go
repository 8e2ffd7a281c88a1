package port

import "context"

// FontEnumerator lists the font families installed on the system.
type FontEnumerator interface {
	// InstalledFamilies returns installed family names, one per face,
	// deduplicated, in discovery order.
	// Returns an error if enumeration is not available (e.g., fc-list missing).
	InstalledFamilies(ctx context.Context) ([]string, error)
}

// TerminalFontLister reports the font families the terminal itself can use.
// Not every installed font qualifies; kitty rejects faces its renderer
// cannot shape.
type TerminalFontLister interface {
	// UsableFamilies returns the family names kitty reports as usable.
	UsableFamilies(ctx context.Context) ([]string, error)
}
