package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullPayload() map[string]any {
	return map[string]any{
		"industry_name": "E-Commerce",
		"syrian_competitors": []any{
			map[string]any{
				"name":     "Shopline",
				"features": map[string]any{"chat": true, "export": "yes"},
			},
			map[string]any{
				"name":     "SouqGo",
				"features": map[string]any{"chat": false, "sms": float64(1)},
			},
		},
		"recommendation_summary": "Recommendations:\n- Focus on mobile\nNext Steps:\n- Ship the beta",
		"timeline_pricing": []any{
			map[string]any{"item": "MVP", "duration_weeks": float64(6), "estimated_cost_usd": "$12,500"},
		},
		"syrian_competitors_meta": map[string]any{
			"differentiation_recommendations": []any{"Offer COD", float64(42), "Arabic-first UX"},
		},
	}
}

func TestNormalizeAssemblesFullReport(t *testing.T) {
	rep, err := Normalize(fullPayload(), Options{})
	require.NoError(t, err)

	assert.Equal(t, "E-Commerce", rep.Meta.IndustryName)
	assert.Equal(t, 2, rep.Meta.CompetitorCount)
	assert.NotEmpty(t, rep.Meta.RunID)
	assert.False(t, rep.Meta.GeneratedAt.IsZero())

	require.Len(t, rep.Competitors, 2)
	assert.Equal(t, "Shopline", rep.Competitors[0].Name)
	assert.Equal(t, "E-Commerce", rep.Competitors[0].Category,
		"industry_name seeds the competitor category")

	assert.Equal(t, []string{"chat", "export", "sms"}, rep.FeatureDiff.Labels)
	assert.Equal(t, []string{"Focus on mobile"}, rep.Recommendations.Recommendations)
	assert.Equal(t, []string{"Ship the beta"}, rep.Recommendations.NextSteps)

	require.Len(t, rep.TimelinePricing.Rows, 1)
	require.NotNil(t, rep.TimelinePricing.Rows[0].EstimatedCostUSD)
	assert.Equal(t, float64(12500), *rep.TimelinePricing.Rows[0].EstimatedCostUSD)

	assert.Equal(t, []string{"Offer COD", "Arabic-first UX"}, rep.DifferentiationRecommendations,
		"non-string entries are skipped")
}

func TestNormalizeRunIDsAreUnique(t *testing.T) {
	a, err := Normalize(fullPayload(), Options{})
	require.NoError(t, err)
	b, err := Normalize(fullPayload(), Options{})
	require.NoError(t, err)
	assert.NotEqual(t, a.Meta.RunID, b.Meta.RunID)
}

func TestNormalizeCompetitorKeyAliases(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"syrian_competitors", "syrian_competitors"},
		{"competitors_syrian", "competitors_syrian"},
		{"user_supplied_competitors", "user_supplied_competitors"},
		{"competitors", "competitors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := map[string]any{
				tt.key: []any{map[string]any{"name": "Only"}},
			}
			rep, err := Normalize(payload, Options{})
			require.NoError(t, err)
			require.Len(t, rep.Competitors, 1)
			assert.Equal(t, "Only", rep.Competitors[0].Name)
		})
	}
}

func TestNormalizeFirstCompetitorKeyWins(t *testing.T) {
	payload := map[string]any{
		"syrian_competitors": []any{map[string]any{"name": "Primary"}},
		"competitors":        []any{map[string]any{"name": "Shadowed"}},
	}
	rep, err := Normalize(payload, Options{})
	require.NoError(t, err)
	require.Len(t, rep.Competitors, 1)
	assert.Equal(t, "Primary", rep.Competitors[0].Name)
}

func TestNormalizeDefaultCategoryOption(t *testing.T) {
	payload := map[string]any{
		"competitors": []any{map[string]any{"name": "NoCat"}},
	}
	rep, err := Normalize(payload, Options{DefaultCategory: "Retail"})
	require.NoError(t, err)
	require.Len(t, rep.Competitors, 1)
	assert.Equal(t, "Retail", rep.Competitors[0].Category,
		"option applies when the payload has no industry")

	payload["industry_name"] = "Food Delivery"
	rep, err = Normalize(payload, Options{DefaultCategory: "Retail"})
	require.NoError(t, err)
	assert.Equal(t, "Food Delivery", rep.Competitors[0].Category,
		"payload industry wins over the option")
}

func TestNormalizeRecognizedKeysAtTopLevel(t *testing.T) {
	payload := map[string]any{
		"recommendations": []any{"Do A"},
		"next_steps":      []any{"Do B"},
	}
	rep, err := Normalize(payload, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Do A"}, rep.Recommendations.Recommendations)
	assert.Equal(t, []string{"Do B"}, rep.Recommendations.NextSteps)
}

func TestNormalizeUnrecognizedPayloadIsNotFlattened(t *testing.T) {
	// Without recognized alias keys only recommendation_summary is classified,
	// so unrelated sections must not leak into the buckets.
	payload := map[string]any{
		"industry_name": "Retail",
		"competitors":   []any{map[string]any{"name": "X"}},
	}
	rep, err := Normalize(payload, Options{})
	require.NoError(t, err)
	assert.Empty(t, rep.Recommendations.Recommendations)
	assert.Empty(t, rep.Recommendations.NextSteps)
}

func TestNormalizeCategoryFilterPassesThrough(t *testing.T) {
	payload := map[string]any{
		"competitors": []any{
			map[string]any{"name": "A", "category": "Retail", "features": map[string]any{"chat": true}},
			map[string]any{"name": "B", "category": "Food", "features": map[string]any{"sms": true}},
		},
	}
	rep, err := Normalize(payload, Options{CategoryFilter: "Food"})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, rep.FeatureDiff.Entities)
	assert.Equal(t, 2, rep.Meta.CompetitorCount, "the filter narrows the matrix, not the report")
}

func TestNormalizeDifferentiationAbsent(t *testing.T) {
	for _, payload := range []map[string]any{
		{"syrian_competitors_meta": map[string]any{}},
		{"syrian_competitors_meta": "not a map"},
		{},
	} {
		rep, err := Normalize(payload, Options{})
		require.NoError(t, err)
		assert.Nil(t, rep.DifferentiationRecommendations)
	}
}

func TestNormalizeNonMapPayload(t *testing.T) {
	for _, payload := range []any{nil, "free text", []any{"a"}, float64(3)} {
		rep, err := Normalize(payload, Options{})
		require.NoError(t, err)
		assert.Empty(t, rep.Competitors)
		assert.Empty(t, rep.FeatureDiff.Labels)
		assert.Empty(t, rep.Recommendations.Recommendations)
		assert.Empty(t, rep.TimelinePricing.Rows)
	}
}
