// Package fontconfig enumerates installed font families via fc-list.
package fontconfig

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"

	"github.com/kittyfont/kittyfont/internal/logging"
)

// Enumerator implements port.FontEnumerator using fontconfig's fc-list
// command.
type Enumerator struct{}

// NewEnumerator creates a new font enumerator.
func NewEnumerator() *Enumerator {
	return &Enumerator{}
}

// IsAvailable returns true if the fc-list command is available on the system.
func (*Enumerator) IsAvailable(_ context.Context) bool {
	_, err := exec.LookPath("fc-list")
	return err == nil
}

// InstalledFamilies implements port.FontEnumerator.
// Returns installed family names, deduplicated, in discovery order.
func (e *Enumerator) InstalledFamilies(ctx context.Context) ([]string, error) {
	log := logging.FromContext(ctx)

	cmd := exec.CommandContext(ctx, "fc-list", ":", "family")
	output, err := cmd.Output()
	if err != nil {
		log.Debug().Err(err).Msg("fc-list failed")
		return nil, err
	}

	families, err := parseFamilies(bytes.NewReader(output))
	if err != nil {
		return nil, err
	}

	log.Debug().Int("count", len(families)).Msg("enumerated installed fonts")
	return families, nil
}

// parseFamilies reads fc-list output, one face per line. Faces with aliases
// list several comma-separated names ("DejaVu Sans,DejaVu Sans Book"); only
// the first is the canonical family.
func parseFamilies(r io.Reader) ([]string, error) {
	seen := make(map[string]struct{})
	families := make([]string, 0, 64)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		family, _, _ := strings.Cut(line, ",")
		family = strings.TrimSpace(family)
		if family == "" {
			continue
		}
		if _, ok := seen[family]; ok {
			continue
		}
		seen[family] = struct{}{}
		families = append(families, family)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return families, nil
}
