// Package recommendations buckets free-form advisory content from a report
// payload into recommendations and next steps. The payload may be a map
// with English or Arabic key aliases, a plain sequence, or prose with
// bilingual section headings.
package recommendations

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jonathan/report-normalizer/internal/rawval"
	"github.com/jonathan/report-normalizer/internal/types"
)

// maxBucketEntries caps each bucket; anything past this is noise for a
// rendered report.
const maxBucketEntries = 12

type bucket int

const (
	bucketRecommendations bucket = iota
	bucketNextSteps
)

// Classify buckets an arbitrary payload into recommendations vs next
// steps. Map inputs dispatch on key aliases (English then Arabic, with
// timeline horizon buckets folded into next steps); sequences are treated
// entirely as recommendations; strings are scanned line by line for
// bilingual section headings. If every rule comes up empty on a map, all
// extractable values become recommendations so content is never dropped
// wholesale. Both buckets are deduplicated case-insensitively (first
// occurrence wins) and capped at 12 entries.
func Classify(raw any) types.RecommendationBucket {
	var recs, next []string

	switch t := raw.(type) {
	case map[string]any:
		classifyMap(t, &recs, &next)
		if len(recs) == 0 && len(next) == 0 {
			recs = collect(t)
		}
	case []any:
		for _, item := range t {
			recs = append(recs, collect(item)...)
		}
	case string:
		scanText(t, bucketRecommendations, &recs, &next)
	}

	return types.RecommendationBucket{
		Recommendations: dedupeCap(recs),
		NextSteps:       dedupeCap(next),
	}
}

// HasRecognizedKeys reports whether the map carries any recommendation,
// next-step, or timeline alias key. Callers use this to decide whether a
// whole payload is worth classifying or only a sub-field is.
func HasRecognizedKeys(m map[string]any) bool {
	for _, key := range recommendationKeys {
		if _, ok := m[key]; ok {
			return true
		}
	}
	for _, key := range nextStepKeys {
		if _, ok := m[key]; ok {
			return true
		}
	}
	for _, key := range timelineBucketKeys {
		if _, ok := m[key]; ok {
			return true
		}
	}
	return false
}

func classifyMap(m map[string]any, recs, next *[]string) {
	for _, key := range recommendationKeys {
		if v, ok := m[key]; ok && v != nil {
			addValue(v, bucketRecommendations, recs, next)
		}
	}
	for _, key := range nextStepKeys {
		if v, ok := m[key]; ok && v != nil {
			addValue(v, bucketNextSteps, recs, next)
		}
	}
	for _, key := range timelineBucketKeys {
		if v, ok := m[key]; ok && v != nil {
			addValue(v, bucketNextSteps, recs, next)
		}
	}
}

// addValue routes one alias-keyed value. Strings go through the heading
// scanner seeded with the key's bucket, so a string under next_steps that
// itself contains a "Recommendations:" section still splits correctly.
func addValue(v any, active bucket, recs, next *[]string) {
	if s, ok := v.(string); ok {
		scanText(s, active, recs, next)
		return
	}
	if active == bucketNextSteps {
		*next = append(*next, collect(v)...)
		return
	}
	*recs = append(*recs, collect(v)...)
}

// scanText walks prose line by line. Heading-like lines matching the
// bilingual vocabulary switch the active bucket and are not appended;
// everything else lands in the active bucket after markup stripping.
func scanText(s string, active bucket, recs, next *[]string) {
	for _, line := range strings.Split(s, "\n") {
		cleaned := cleanLine(line)
		if cleaned == "" {
			continue
		}
		if isHeading(line) {
			if target, ok := headingBucket(cleaned); ok {
				active = target
				continue
			}
		}
		if active == bucketNextSteps {
			*next = append(*next, cleaned)
		} else {
			*recs = append(*recs, cleaned)
		}
	}
}

func headingBucket(heading string) (bucket, bool) {
	lower := strings.ToLower(heading)
	for _, word := range recommendationHeadingWords {
		if strings.Contains(lower, word) {
			return bucketRecommendations, true
		}
	}
	for _, word := range nextStepHeadingWords {
		if strings.Contains(lower, word) {
			return bucketNextSteps, true
		}
	}
	return bucketRecommendations, false
}

// isHeading recognizes section markers: trailing colon (either script),
// markdown heading, or a fully bold line.
func isHeading(line string) bool {
	trimmed := strings.TrimSpace(norm.NFC.String(line))
	if trimmed == "" {
		return false
	}
	if strings.HasSuffix(trimmed, ":") || strings.HasSuffix(trimmed, "：") {
		return true
	}
	if strings.HasPrefix(trimmed, "#") {
		return true
	}
	return strings.HasPrefix(trimmed, "**") && strings.HasSuffix(trimmed, "**") && len(trimmed) > 4
}

var (
	numberingPattern = regexp.MustCompile(`^\d+[.)\-:]\s*`)
	checkboxPattern  = regexp.MustCompile(`^\[[ xX✓]?\]\s*`)
)

// cleanLine strips leading bullet/numbering/checkbox markup, markdown
// emphasis, and collapses whitespace. Input is NFC-normalized first since
// Arabic content arrives in mixed normalization forms.
func cleanLine(line string) string {
	s := strings.TrimSpace(norm.NFC.String(line))

	for {
		trimmed := strings.TrimLeft(s, "-*•–—>#: \t")
		trimmed = numberingPattern.ReplaceAllString(trimmed, "")
		trimmed = checkboxPattern.ReplaceAllString(trimmed, "")
		if trimmed == s {
			break
		}
		s = trimmed
	}

	s = strings.TrimSuffix(s, "：")
	s = strings.TrimSuffix(s, ":")
	if strings.HasPrefix(s, "**") && strings.HasSuffix(s, "**") && len(s) > 4 {
		s = s[2 : len(s)-2]
	}
	return strings.Join(strings.Fields(s), " ")
}

// collect flattens any value into cleaned lines: strings split on
// newlines, sequences and maps recurse (maps in sorted key order), scalars
// stringify.
func collect(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		var out []string
		for _, line := range strings.Split(t, "\n") {
			if cleaned := cleanLine(line); cleaned != "" {
				out = append(out, cleaned)
			}
		}
		return out
	case []any:
		var out []string
		for _, item := range t {
			out = append(out, collect(item)...)
		}
		return out
	case map[string]any:
		var out []string
		for _, key := range rawval.SortedKeys(t) {
			out = append(out, collect(t[key])...)
		}
		return out
	default:
		if s := cleanLine(rawval.Stringify(v)); s != "" {
			return []string{s}
		}
		return nil
	}
}

// dedupeCap removes case-insensitive duplicates, keeping first-seen order,
// and caps the list at maxBucketEntries.
func dedupeCap(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{})
	for _, item := range items {
		key := strings.ToLower(item)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
		if len(out) == maxBucketEntries {
			break
		}
	}
	return out
}
