package entity

import "sort"

// Catalog maps normalized family keys to installed display names. It holds
// only fonts that are both installed locally and usable by kitty.
type Catalog map[string]string

// Resolve normalizes name and looks it up, returning the installed display
// name kitty.conf should carry.
func (c Catalog) Resolve(name string) (string, bool) {
	display, ok := c[NormalizeFamily(name)]
	return display, ok
}

// Names returns the installed display names in sorted order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for _, display := range c {
		names = append(names, display)
	}
	sort.Strings(names)
	return names
}

// Keys returns the normalized lookup keys in sorted order.
func (c Catalog) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
