package features

import (
	"strings"

	"github.com/jonathan/report-normalizer/internal/rawval"
)

// labelFields name the feature label inside a sequence-of-objects shape.
var labelFields = []string{"label", "name", "title", "feature"}

// presenceFields gate whether an object-shaped feature counts as present.
var presenceFields = []string{"value", "enabled", "present", "available", "supported", "has"}

// ExactLabels extracts the exact-label feature set from a retained raw
// features value. Labels are kept verbatim apart from trimming because
// cross-entity comparison requires exact source-string identity:
//
//   - sequence of strings/numbers: each entry is a label;
//   - sequence of objects: label from label|name|title|feature, counted
//     only when its presence field passes the truthy interpreter (an object
//     carrying a bare label and no presence field counts as present);
//   - map: every key whose value is truthy.
//
// Any other shape yields no labels.
func ExactLabels(v any) []string {
	switch t := v.(type) {
	case []any:
		var out []string
		for _, item := range t {
			switch entry := item.(type) {
			case map[string]any:
				if label, ok := objectLabel(entry); ok {
					out = append(out, label)
				}
			default:
				if s := strings.TrimSpace(rawval.Stringify(item)); s != "" {
					out = append(out, s)
				}
			}
		}
		if out == nil {
			return []string{}
		}
		return out
	case map[string]any:
		out := []string{}
		for _, key := range rawval.SortedKeys(t) {
			if rawval.IsTruthy(t[key]) {
				if label := strings.TrimSpace(key); label != "" {
					out = append(out, label)
				}
			}
		}
		return out
	default:
		return []string{}
	}
}

func objectLabel(entry map[string]any) (string, bool) {
	var label string
	for _, f := range labelFields {
		if s, ok := entry[f].(string); ok && strings.TrimSpace(s) != "" {
			label = strings.TrimSpace(s)
			break
		}
	}
	if label == "" {
		return "", false
	}
	for _, f := range presenceFields {
		if gate, ok := entry[f]; ok {
			return label, rawval.IsTruthy(gate)
		}
	}
	// No presence field at all: listing the feature implies presence.
	return label, true
}
