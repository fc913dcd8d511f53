// Package timeline normalizes the "timeline & pricing" section of a report
// payload into tabular rows. The section arrives in any of five shapes:
// a sequence of row records, a map exposing phases/rows, a generic map of
// row maps, a JSON-encoded string of any of those, or plain prose.
package timeline

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/report-normalizer/internal/rawval"
	"github.com/jonathan/report-normalizer/internal/types"
)

// Normalize extracts pricing rows from whatever shape the payload took.
// A string that decodes as JSON is re-dispatched on the decoded value;
// a string that does not decode is returned as free text instead of rows.
// Rows that are empty across all five fields are discarded; a row with any
// single populated field is retained.
func Normalize(raw any) types.TimelinePricing {
	out := types.TimelinePricing{Rows: []types.PricingRow{}}

	switch t := raw.(type) {
	case nil:
		return out
	case []any:
		out.Rows = normalizeSequence(t)
	case map[string]any:
		out.Rows = normalizeMap(t)
	case string:
		cleaned := stripCodeFence(t)
		var decoded any
		if err := json.Unmarshal([]byte(cleaned), &decoded); err == nil {
			switch decoded.(type) {
			case []any, map[string]any:
				return Normalize(decoded)
			}
		}
		out.FallbackText = strings.TrimSpace(t)
	}
	return out
}

func normalizeSequence(items []any) []types.PricingRow {
	rows := []types.PricingRow{}
	for _, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if row, keep := normalizeRow(rec, ""); keep {
			rows = append(rows, row)
		}
	}
	return rows
}

func normalizeMap(m map[string]any) []types.PricingRow {
	for _, key := range []string{"phases", "rows"} {
		if seq, ok := m[key].([]any); ok {
			return normalizeSequence(seq)
		}
	}

	// Generic map of row maps: each value is a row, keyed by its item name.
	rows := []types.PricingRow{}
	for _, key := range rawval.SortedKeys(m) {
		rec, ok := m[key].(map[string]any)
		if !ok {
			continue
		}
		if row, keep := normalizeRow(rec, key); keep {
			rows = append(rows, row)
		}
	}
	return rows
}

func normalizeRow(rec map[string]any, fallbackItem string) (types.PricingRow, bool) {
	row := types.PricingRow{
		Item:             firstString(rec, "item", "phase", "name"),
		Level:            firstString(rec, "level", "stage"),
		DurationWeeks:    firstNumber(rec, "duration_weeks", "weeks", "duration"),
		EstimatedCostUSD: firstNumber(rec, "estimated_cost_usd", "cost_usd", "estimated_cost"),
		Notes:            firstString(rec, "notes", "description"),
	}
	if row.Item == "" {
		row.Item = strings.TrimSpace(fallbackItem)
	}
	return row, !row.Empty()
}

func firstString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		v, ok := m[key]
		if !ok || v == nil {
			continue
		}
		if s := strings.TrimSpace(rawval.Stringify(v)); s != "" {
			return s
		}
	}
	return ""
}

// firstNumber resolves the alias chain with currency-tolerant coercion.
func firstNumber(m map[string]any, keys ...string) *float64 {
	for _, key := range keys {
		v, ok := m[key]
		if !ok || v == nil {
			continue
		}
		if n, ok := rawval.Number(v); ok {
			return &n
		}
	}
	return nil
}

// stripCodeFence removes a markdown code block wrapper when present.
// Generators often fence JSON in ```json blocks even when asked not to.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if idx := strings.Index(text, "\n"); idx >= 0 {
		firstLine := text[:idx]
		if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
			text = text[idx+1:]
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
