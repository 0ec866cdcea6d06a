// Package clone duplicates aggregate payload values.
//
// It offers an explicit choice between reference-sharing and fully
// independent copies for the common aggregate types used as payloads:
// map[string]any, map[string]string, []any, and []byte. Values of any
// other type pass through unchanged and are treated as immutable.
package clone

import (
	"bytes"
	"maps"
	"slices"
)

// Shallow returns a top-level copy of v. Nested mutable values are still
// shared with the original: mutating a top-level key or element of the
// copy leaves the original intact, mutating a nested map or slice does
// not.
func Shallow(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return maps.Clone(val)
	case map[string]string:
		return maps.Clone(val)
	case []any:
		return slices.Clone(val)
	case []byte:
		return bytes.Clone(val)
	default:
		return v
	}
}

// Deep returns a fully independent copy of v, recursing through nested
// maps and slices. The result shares no mutable state with the original.
func Deep(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Deep(item)
		}
		return out
	case map[string]string:
		return maps.Clone(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Deep(item)
		}
		return out
	case []byte:
		return bytes.Clone(val)
	default:
		return v
	}
}
