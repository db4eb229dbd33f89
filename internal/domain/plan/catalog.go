package plan

import (
	"fmt"
	"strings"
)

// Label resolves a plan key to its display label. Unknown keys resolve to
// themselves.
func (c Catalog) Label(key string) string {
	for _, p := range c {
		if p.Key == key {
			return p.Label
		}
	}
	return key
}

// Contains reports whether key names a plan in the catalog.
func (c Catalog) Contains(key string) bool {
	for _, p := range c {
		if p.Key == key {
			return true
		}
	}
	return false
}

// DefaultKey returns the first plan's key, or "" for an empty catalog.
func (c Catalog) DefaultKey() string {
	if len(c) == 0 {
		return ""
	}
	return c[0].Key
}

// Validate checks that every plan has a key and that keys are unique.
func (c Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c))
	for i, p := range c {
		key := strings.TrimSpace(p.Key)
		if key == "" {
			return fmt.Errorf("plan %d: %w", i, ErrMissingKey)
		}
		if _, ok := seen[key]; ok {
			return fmt.Errorf("plan %q: %w", key, ErrDuplicateKey)
		}
		seen[key] = struct{}{}
	}
	return nil
}
