package rawval

import (
	"sort"
	"strings"
)

// maxDepth bounds recursive traversal of untrusted payload structures.
// Decoded interchange data cannot cycle, but the input is unvalidated, so
// both IsTruthy and FlattenFlags refuse to walk deeper than this.
const maxDepth = 32

// TruthyWords is the single truthy string vocabulary shared by the truthy
// interpreter and the feature-diff label extraction. Matching is
// case-insensitive after trimming.
var TruthyWords = map[string]struct{}{
	"true":      {},
	"yes":       {},
	"y":         {},
	"1":         {},
	"on":        {},
	"enabled":   {},
	"present":   {},
	"available": {},
	"supported": {},
	"has":       {},
	"✓":         {},
	"✔":         {},
	"✅":         {},
}

// truthyFlagKeys are the sub-fields consulted when an object stands in for
// a boolean, e.g. {"value": true} or {"enabled": "yes"}.
var truthyFlagKeys = []string{
	"value", "enabled", "present", "available", "supported", "has", "flag", "active",
}

// IsTruthy decides whether an arbitrary payload value represents
// "present/enabled". Booleans and the number 1 count directly; strings are
// matched against TruthyWords; objects count if any of their flag-like
// sub-fields is itself truthy. Everything else is false.
func IsTruthy(v any) bool {
	return isTruthyDepth(v, 0)
}

func isTruthyDepth(v any, depth int) bool {
	if depth > maxDepth {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t == 1
	case int:
		return t == 1
	case int64:
		return t == 1
	case string:
		_, ok := TruthyWords[strings.ToLower(strings.TrimSpace(t))]
		return ok
	case map[string]any:
		for _, key := range truthyFlagKeys {
			if sub, ok := t[key]; ok && isTruthyDepth(sub, depth+1) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// sortedKeys returns the keys of m in ascending order. Go maps iterate in
// random order; every traversal of a payload map goes through this so
// output stays deterministic.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SortedKeys exposes deterministic map-key ordering to the other
// normalization packages.
func SortedKeys(m map[string]any) []string {
	return sortedKeys(m)
}
