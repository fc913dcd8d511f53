// Package features harvests feature/capability labels from loosely-typed
// competitor records. Two extraction modes exist: a heuristic union used
// for free-text display (Extract) and an exact-label set used for
// cross-entity comparison (ExactLabels). They share one truthy vocabulary
// via the rawval package.
package features

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/report-normalizer/internal/rawval"
)

// verbatimListFields are copied first, before any heuristic rule runs.
var verbatimListFields = []string{"notable_features", "features_flat", "feature_list"}

// knownMapFields are field names that always denote a feature container,
// whatever their shape.
var knownMapFields = map[string]struct{}{
	"features":        {},
	"features_map":    {},
	"feature_flags":   {},
	"capabilities":    {},
	"capability_map":  {},
	"attributes":      {},
	"attribute_flags": {},
	"options":         {},
	"options_map":     {},
}

// looseFieldPattern is the last-resort rule: any field whose name merely
// mentions feature-like vocabulary. Matches through this rule are logged as
// ambiguous because it can absorb unrelated prose (e.g. "service_area").
var looseFieldPattern = regexp.MustCompile(`(?i)feature|capabil|function|flag|option|service`)

// Extract harvests every field of an entity record that looks like a
// feature/capability/flag list. Rules run top to bottom over a consumed-key
// set so no field contributes twice:
//
//  1. verbatim copy of known list fields that hold sequences;
//  2. known container names, flattened (maps) or copied (sequences);
//  3. loose name matches, coerced by shape.
//
// The logger may be nil; ambiguous loose matches are then dropped silently.
func Extract(entity map[string]any, log *zap.Logger) []string {
	if entity == nil {
		return []string{}
	}
	if log == nil {
		log = zap.NewNop()
	}

	consumed := make(map[string]struct{})
	var out []string

	for _, field := range verbatimListFields {
		seq, ok := entity[field].([]any)
		if !ok {
			continue
		}
		out = append(out, rawval.StringList(seq)...)
		consumed[field] = struct{}{}
	}

	for _, field := range rawval.SortedKeys(entity) {
		if _, done := consumed[field]; done {
			continue
		}
		val := entity[field]
		if val == nil {
			continue
		}

		if _, known := knownMapFields[field]; known {
			out = append(out, harvest(val)...)
			consumed[field] = struct{}{}
			continue
		}

		if looseFieldPattern.MatchString(field) {
			log.Debug("loose feature field match",
				zap.String("field", field))
			out = append(out, harvest(val)...)
			consumed[field] = struct{}{}
		}
	}

	// Dedupe on exact identity so feeding an already-normalized record back
	// through (its flattened list plus the retained raw features) does not
	// double every label.
	filtered := make([]string, 0, len(out))
	seen := make(map[string]struct{})
	for _, s := range out {
		if strings.TrimSpace(s) == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		filtered = append(filtered, s)
	}
	return filtered
}

// harvest coerces one qualifying field value by shape: maps go through the
// flag flattener, sequences are copied, scalars fall back to the string
// list coercer.
func harvest(v any) []string {
	switch t := v.(type) {
	case map[string]any:
		return rawval.FlattenFlags(t)
	case []any:
		return rawval.StringList(t)
	default:
		return rawval.StringList(v)
	}
}
