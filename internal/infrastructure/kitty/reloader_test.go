package kitty

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReloader_IsAvailable(t *testing.T) {
	ctx := testContext()
	reloader := NewReloader()

	available := reloader.IsAvailable(ctx)
	t.Logf("pgrep available: %v", available)
}

func TestReloader_Reload(t *testing.T) {
	ctx := testContext()
	reloader := NewReloader()

	if !reloader.IsAvailable(ctx) {
		t.Skip("pgrep not available on this system")
	}

	// Succeeds whether kitty is running (signal delivered, config re-read)
	// or not (silent no-op).
	require.NoError(t, reloader.Reload(ctx))
}
