package keys

import "strings"

// NameKey produces the canonical lookup key for a character or move name.
// Behavior: trims, lower-cases and collapses inner whitespace runs to a
// single space. Catalog lookups are keyed on this so client-supplied names
// match regardless of casing or stray whitespace.
func NameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// NameKeys maps NameKey over a list, dropping entries that normalize to the
// empty string and deduplicating the rest while preserving first-seen order.
func NameKeys(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		k := NameKey(n)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
