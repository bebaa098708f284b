package search

import "slices"

// pruneFields removes the named fields from any level of a decoded JSON
// value. Objects and arrays are walked recursively; scalars pass through
// untouched.
func pruneFields(v any, names ...string) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, nested := range val {
			if slices.Contains(names, k) {
				continue
			}
			out[k] = pruneFields(nested, names...)
		}
		return out
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			out = append(out, pruneFields(item, names...))
		}
		return out
	default:
		return v
	}
}
