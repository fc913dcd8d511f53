package competitors

import (
	"strings"

	"github.com/jonathan/report-normalizer/internal/rawval"
)

// statusFields are checked, in order, for a human-readable status string.
// status_text is included so an already-normalized record resolves to the
// same status on a second pass.
var statusFields = []string{"status", "app_status", "availability", "state", "status_text"}

// inactiveMarkers are case-insensitive substrings that mark a status string
// as inactive.
var inactiveMarkers = []string{
	"inactive", "closed", "discontinued", "shutdown", "shut down",
	"dead", "offline", "unavailable",
}

// statusFlagKeys are the nested status_flags sub-fields that mark a record
// inactive when truthy.
var statusFlagKeys = []string{"inactive", "closed", "discontinued"}

// detectInactive decides whether a competitor record describes a defunct
// product, and returns the first status string found for display. A record
// is inactive when a status-like field contains an inactive marker, an
// explicit inactive flag is truthy, an explicit active flag is explicitly
// false, or a nested status_flags entry is truthy.
func detectInactive(rec map[string]any) (bool, string) {
	inactive := false
	statusText := ""

	for _, field := range statusFields {
		s, ok := rec[field].(string)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		if statusText == "" {
			statusText = strings.TrimSpace(s)
		}
		lower := strings.ToLower(s)
		for _, marker := range inactiveMarkers {
			if strings.Contains(lower, marker) {
				inactive = true
				break
			}
		}
	}

	if rawval.IsTruthy(rec["inactive"]) || rawval.IsTruthy(rec["is_inactive"]) {
		inactive = true
	}
	if explicitlyFalse(rec["active"]) || explicitlyFalse(rec["is_active"]) {
		inactive = true
	}

	if flags, ok := rec["status_flags"].(map[string]any); ok {
		for _, key := range statusFlagKeys {
			if rawval.IsTruthy(flags[key]) {
				inactive = true
				break
			}
		}
	}

	return inactive, statusText
}

// explicitlyFalse reports whether a value is an affirmative "no": the
// boolean false or an unambiguous negative string. Absent fields and
// unrecognized shapes are not explicit.
func explicitlyFalse(v any) bool {
	switch t := v.(type) {
	case bool:
		return !t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "false", "no", "0":
			return true
		}
	case float64:
		return t == 0
	}
	return false
}
