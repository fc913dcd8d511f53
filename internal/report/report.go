// Package report assembles a full normalized report from one decoded
// payload, wiring the competitor, feature-diff, recommendation, and
// timeline normalizers together and validating the combined output.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/report-normalizer/internal/competitors"
	"github.com/jonathan/report-normalizer/internal/recommendations"
	"github.com/jonathan/report-normalizer/internal/timeline"
	"github.com/jonathan/report-normalizer/internal/types"
)

// competitorKeys are the top-level payload keys that may carry the
// competitor section, checked in order.
var competitorKeys = []string{
	"syrian_competitors", "competitors_syrian", "user_supplied_competitors", "competitors",
}

// Options configure one normalization run.
type Options struct {
	// DefaultCategory is assigned to competitors lacking one; the payload's
	// industry_name takes precedence when present.
	DefaultCategory string
	// CategoryFilter restricts the feature-diff matrix; an unmatched filter
	// falls back to comparing all competitors.
	CategoryFilter string
	// Logger receives ambiguity and fallback flags. Nil means silent.
	Logger *zap.Logger
}

var validate = validator.New()

// Normalize produces the presentation-ready report for one decoded
// payload. The inner normalizers never fail; the only error surface here
// is the final invariant check on the assembled output.
func Normalize(payload any, opts Options) (types.NormalizedReport, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	m, _ := payload.(map[string]any)

	industry := firstString(m, "industry_name", "industry")
	defaultCategory := industry
	if defaultCategory == "" {
		defaultCategory = opts.DefaultCategory
	}

	entities := competitors.Normalize(firstPresent(m, competitorKeys...), defaultCategory, log)

	rep := types.NormalizedReport{
		Meta: types.ReportMeta{
			RunID:           uuid.NewString(),
			IndustryName:    industry,
			CompetitorCount: len(entities),
			GeneratedAt:     time.Now().UTC(),
		},
		Competitors:                    entities,
		FeatureDiff:                    competitors.BuildDiffMatrix(entities, opts.CategoryFilter, log),
		Recommendations:                classifySection(m),
		TimelinePricing:                timeline.Normalize(valueOf(m, "timeline_pricing")),
		DifferentiationRecommendations: differentiation(m),
	}

	if err := validate.Struct(&rep); err != nil {
		return rep, fmt.Errorf("normalized report failed invariant check: %w", err)
	}
	return rep, nil
}

// classifySection prefers recognized alias keys anywhere at the top level;
// otherwise only the recommendation_summary sub-value is classified, so the
// object-flatten fallback cannot absorb the entire payload.
func classifySection(m map[string]any) types.RecommendationBucket {
	if m == nil {
		return types.RecommendationBucket{Recommendations: []string{}, NextSteps: []string{}}
	}
	if recommendations.HasRecognizedKeys(m) {
		return recommendations.Classify(m)
	}
	return recommendations.Classify(m["recommendation_summary"])
}

// differentiation passes syrian_competitors_meta.differentiation_recommendations
// through unmodified when it is a plain sequence of strings.
func differentiation(m map[string]any) []string {
	meta, ok := valueOf(m, "syrian_competitors_meta").(map[string]any)
	if !ok {
		return nil
	}
	seq, ok := meta["differentiation_recommendations"].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(seq))
	for _, item := range seq {
		s, ok := item.(string)
		if !ok {
			continue
		}
		out = append(out, s)
	}
	return out
}

func valueOf(m map[string]any, key string) any {
	if m == nil {
		return nil
	}
	return m[key]
}

func firstPresent(m map[string]any, keys ...string) any {
	if m == nil {
		return nil
	}
	for _, key := range keys {
		if v, ok := m[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

func firstString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := valueOf(m, key).(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}
