package fontconfig

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := zerolog.Nop()
	return logger.WithContext(context.Background())
}

func TestParseFamilies(t *testing.T) {
	output := strings.Join([]string{
		"Fira Code",
		"DejaVu Sans,DejaVu Sans Book",
		"",
		"  Noto Sans  ",
		"Fira Code",
		"Iosevka, Iosevka Light",
	}, "\n")

	families, err := parseFamilies(strings.NewReader(output))
	require.NoError(t, err)

	assert.Equal(t, []string{"Fira Code", "DejaVu Sans", "Noto Sans", "Iosevka"}, families)
}

func TestParseFamilies_Empty(t *testing.T) {
	families, err := parseFamilies(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, families)
}

func TestEnumerator_IsAvailable(t *testing.T) {
	ctx := testContext()
	enum := NewEnumerator()

	// fc-list should be available on most Linux systems
	// This test documents the behavior rather than asserting a specific value
	available := enum.IsAvailable(ctx)
	t.Logf("fc-list available: %v", available)
}

func TestEnumerator_InstalledFamilies(t *testing.T) {
	ctx := testContext()
	enum := NewEnumerator()

	if !enum.IsAvailable(ctx) {
		t.Skip("fc-list not available on this system")
	}

	families, err := enum.InstalledFamilies(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, families, "expected at least some fonts to be installed")

	t.Logf("Found %d font families", len(families))
}
