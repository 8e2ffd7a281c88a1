package command

import (
	"context"
	"strings"
)

// Complete returns completion candidates for a partially typed command line.
// With no action chosen yet it offers the action tokens; after set_font it
// offers compatible font keys filtered by case-insensitive containment. The
// candidate computation rides the resolver's memoized catalog, so repeated
// tab presses do not re-enumerate fonts.
func (r *Router) Complete(ctx context.Context, args []string, toComplete string) []string {
	if len(args) == 0 {
		var actions []string
		for _, action := range Actions() {
			if strings.HasPrefix(action, toComplete) {
				actions = append(actions, action)
			}
		}
		return actions
	}

	if args[0] == ActionSetFont && len(args) == 1 {
		catalog, err := r.browser.Catalog(ctx)
		if err != nil {
			return nil
		}

		search := strings.ToLower(toComplete)
		var keys []string
		for _, key := range catalog.Keys() {
			if strings.Contains(strings.ToLower(key), search) {
				keys = append(keys, key)
			}
		}
		return keys
	}

	return nil
}
