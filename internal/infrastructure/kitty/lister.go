// Package kitty talks to the kitty terminal: probing which fonts its renderer
// accepts and signaling running instances to reload their configuration.
package kitty

import (
	"context"
	"os/exec"
	"sort"

	"github.com/tidwall/gjson"

	"github.com/kittyfont/kittyfont/internal/logging"
)

// fontMapScript dumps kitty's internal monospace font map as JSON: an object
// keyed by family name whose entries describe the individual faces.
const fontMapScript = `from kitty.fonts.common import all_fonts_map; import json; print(json.dumps(all_fonts_map(True), indent=2))`

// FontLister implements port.TerminalFontLister by asking kitty itself which
// families it can shape.
type FontLister struct{}

// NewFontLister creates a new kitty font lister.
func NewFontLister() *FontLister {
	return &FontLister{}
}

// IsAvailable returns true if the kitty binary is available on the system.
func (*FontLister) IsAvailable(_ context.Context) bool {
	_, err := exec.LookPath("kitty")
	return err == nil
}

// UsableFamilies implements port.TerminalFontLister.
func (l *FontLister) UsableFamilies(ctx context.Context) ([]string, error) {
	log := logging.FromContext(ctx)

	cmd := exec.CommandContext(ctx, "kitty", "+runpy", fontMapScript)
	output, err := cmd.Output()
	if err != nil {
		log.Debug().Err(err).Msg("kitty font map probe failed")
		return nil, err
	}

	families := extractFamilies(string(output))
	log.Debug().Int("count", len(families)).Msg("probed kitty font map")
	return families, nil
}

// extractFamilies collects every family name in the font map document: the
// top-level keys plus each face's "family" field. Malformed input yields an
// empty list.
func extractFamilies(doc string) []string {
	parsed := gjson.Parse(doc)
	if !parsed.IsObject() {
		return nil
	}

	set := make(map[string]struct{})
	parsed.ForEach(func(key, value gjson.Result) bool {
		if key.String() != "" {
			set[key.String()] = struct{}{}
		}
		collectFamilyFields(value, set)
		return true
	})

	families := make([]string, 0, len(set))
	for f := range set {
		families = append(families, f)
	}
	sort.Strings(families)
	return families
}

// collectFamilyFields walks arbitrarily nested objects and arrays, gathering
// the values of every "family" key. The font map's exact nesting varies
// between kitty releases.
func collectFamilyFields(value gjson.Result, set map[string]struct{}) {
	switch {
	case value.IsObject():
		value.ForEach(func(key, v gjson.Result) bool {
			if key.String() == "family" && v.Type == gjson.String && v.String() != "" {
				set[v.String()] = struct{}{}
			}
			collectFamilyFields(v, set)
			return true
		})
	case value.IsArray():
		value.ForEach(func(_, v gjson.Result) bool {
			collectFamilyFields(v, set)
			return true
		})
	}
}
