package rawval

import "strings"

// FlattenFlags walks a nested flag map and returns a dot-joined path label
// for every leaf the truthy interpreter accepts. Sub-maps are recursed
// into; sequences and scalars are leaves, never recursion targets, so the
// walk terminates even on adversarial structures. Sibling keys are visited
// in sorted order.
//
// Example: {"messaging": {"chat": true, "sms": "no"}, "export": 1}
// yields ["export", "messaging.chat"].
func FlattenFlags(v any) []string {
	out := flattenFlagsDepth(v, nil, 0)
	if out == nil {
		return []string{}
	}
	return out
}

func flattenFlagsDepth(v any, path []string, depth int) []string {
	if depth > maxDepth {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		// Leaf: emit the accumulated path when the value reads as truthy.
		if len(path) > 0 && IsTruthy(v) {
			return []string{strings.Join(path, ".")}
		}
		return nil
	}
	var out []string
	for _, key := range sortedKeys(m) {
		out = append(out, flattenFlagsDepth(m[key], append(path, key), depth+1)...)
	}
	return out
}
