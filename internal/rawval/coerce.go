// Package rawval provides coercion primitives for loosely-typed values
// decoded from AI-generated report payloads. The same logical field may
// arrive as a string, a list, a keyed map, or a nested flag map; every
// function here accepts any shape, never panics, and degrades to an
// empty/neutral result on mismatch.
package rawval

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Stringify renders a scalar value the way the source payload meant it:
// strings pass through, numbers drop insignificant zeros, booleans become
// "true"/"false". Returns "" for nil and for non-scalar values.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

// isFalsy mirrors the source system's notion of a skippable entry:
// nil, empty string, false, and numeric zero.
func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	case int:
		return t == 0
	case int64:
		return t == 0
	}
	return false
}

// StringList coerces an arbitrary value into a flat list of strings.
// Sequences are copied with falsy entries filtered; strings are split on
// newlines (or commas when single-line) and trimmed; any other non-nil
// scalar becomes a singleton list of its string form. Nil yields an empty
// list.
func StringList(v any) []string {
	switch t := v.(type) {
	case nil:
		return []string{}
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if isFalsy(item) {
				continue
			}
			s := strings.TrimSpace(Stringify(item))
			if s == "" {
				continue
			}
			out = append(out, s)
		}
		return out
	case string:
		sep := ","
		if strings.Contains(t, "\n") {
			sep = "\n"
		}
		parts := strings.Split(t, sep)
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			out = append(out, p)
		}
		return out
	default:
		s := strings.TrimSpace(Stringify(v))
		if s == "" {
			return []string{}
		}
		return []string{s}
	}
}

// MarkdownBlock coerces an arbitrary value into a display-ready text block.
// Strings are trimmed as-is; sequences become one "- " bullet per non-empty
// entry; maps have their scalar and sequence values flattened into bullets,
// falling back to a fenced raw dump when nothing flattens cleanly.
func MarkdownBlock(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case []any:
		return bulletList(t)
	case map[string]any:
		var bullets []string
		for _, key := range sortedKeys(t) {
			switch val := t[key].(type) {
			case []any:
				for _, item := range val {
					if s := strings.TrimSpace(Stringify(item)); s != "" {
						bullets = append(bullets, "- "+s)
					}
				}
			case map[string]any:
				// Nested maps do not flatten into bullets.
			default:
				if s := strings.TrimSpace(Stringify(val)); s != "" {
					bullets = append(bullets, "- "+s)
				}
			}
		}
		if len(bullets) == 0 {
			return fencedDump(t)
		}
		return strings.Join(bullets, "\n")
	default:
		return strings.TrimSpace(Stringify(v))
	}
}

func bulletList(items []any) string {
	var bullets []string
	for _, item := range items {
		if s := strings.TrimSpace(Stringify(item)); s != "" {
			bullets = append(bullets, "- "+s)
		}
	}
	return strings.Join(bullets, "\n")
}

// fencedDump renders an opaque map as a fenced JSON block so nothing is
// silently lost when no value flattens into bullets.
func fencedDump(m map[string]any) string {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Sprintf("```\n%v\n```", m)
	}
	return "```json\n" + string(data) + "\n```"
}

// Number coerces a value into a finite float64. Strings are stripped of
// every character except digits, '.' and '-' before parsing, so
// currency-formatted input like "$12,500.00" yields 12500. The second
// return value is false when no finite number could be recovered.
func Number(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return t, true
	case float32:
		return Number(float64(t))
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return Number(f)
	case bool:
		return 0, false
	case string:
		var b strings.Builder
		for _, r := range t {
			if (r >= '0' && r <= '9') || r == '.' || r == '-' {
				b.WriteRune(r)
			}
		}
		f, err := strconv.ParseFloat(b.String(), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
