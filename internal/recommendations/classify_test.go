package recommendations

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyHeadingScanning(t *testing.T) {
	got := Classify("Recommendations:\n- Do X\n- Do X\nNext Steps:\n1. Do Y")
	assert.Equal(t, []string{"Do X"}, got.Recommendations)
	assert.Equal(t, []string{"Do Y"}, got.NextSteps)
}

func TestClassifyLinesBeforeHeadingDefaultToRecommendations(t *testing.T) {
	got := Classify("Focus on mobile first\nNext Steps:\n- Ship the beta")
	assert.Equal(t, []string{"Focus on mobile first"}, got.Recommendations)
	assert.Equal(t, []string{"Ship the beta"}, got.NextSteps)
}

func TestClassifyMarkdownHeadings(t *testing.T) {
	got := Classify("## Recommendations\n* Invest in SEO\n## Action Plan\n* Hire two engineers")
	assert.Equal(t, []string{"Invest in SEO"}, got.Recommendations)
	assert.Equal(t, []string{"Hire two engineers"}, got.NextSteps)
}

func TestClassifyArabicHeadings(t *testing.T) {
	got := Classify("التوصيات:\n- ركز على السوق المحلي\nالخطوات التالية:\n- أطلق النسخة التجريبية")
	assert.Equal(t, []string{"ركز على السوق المحلي"}, got.Recommendations)
	assert.Equal(t, []string{"أطلق النسخة التجريبية"}, got.NextSteps)
}

func TestClassifyMapAliases(t *testing.T) {
	tests := []struct {
		name      string
		input     map[string]any
		recs      []string
		nextSteps []string
	}{
		{
			name: "english aliases",
			input: map[string]any{
				"suggestions":  []any{"Do A"},
				"action_items": []any{"Do B"},
			},
			recs:      []string{"Do A"},
			nextSteps: []string{"Do B"},
		},
		{
			name: "arabic aliases",
			input: map[string]any{
				"توصيات":   []any{"افعل أ"},
				"الخطوات": []any{"افعل ب"},
			},
			recs:      []string{"افعل أ"},
			nextSteps: []string{"افعل ب"},
		},
		{
			name: "timeline buckets fold into next steps",
			input: map[string]any{
				"recommendations": []any{"Do A"},
				"short_term":      []any{"Now"},
				"long_term":       []any{"Later"},
			},
			recs:      []string{"Do A"},
			nextSteps: []string{"Now", "Later"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.input)
			assert.Equal(t, tt.recs, got.Recommendations)
			assert.Equal(t, tt.nextSteps, got.NextSteps)
		})
	}
}

func TestClassifyStringValueUnderAliasIsScanned(t *testing.T) {
	// A string under next_steps containing a recommendations section still
	// splits across buckets.
	got := Classify(map[string]any{
		"next_steps": "Launch the pilot\nRecommendations:\n- Keep pricing simple",
	})
	assert.Equal(t, []string{"Keep pricing simple"}, got.Recommendations)
	assert.Equal(t, []string{"Launch the pilot"}, got.NextSteps)
}

func TestClassifySequenceInput(t *testing.T) {
	got := Classify([]any{"First", "Second", float64(3)})
	assert.Equal(t, []string{"First", "Second", "3"}, got.Recommendations)
	assert.Empty(t, got.NextSteps)
}

func TestClassifyObjectFlattenFallback(t *testing.T) {
	got := Classify(map[string]any{
		"misc":  []any{"Something useful"},
		"other": "Another thought",
	})
	assert.ElementsMatch(t, []string{"Something useful", "Another thought"}, got.Recommendations)
	assert.Empty(t, got.NextSteps)
}

func TestClassifyDedupeIsCaseInsensitive(t *testing.T) {
	got := Classify([]any{"Do X", "do x", "DO X", "Do Y"})
	assert.Equal(t, []string{"Do X", "Do Y"}, got.Recommendations)
}

func TestClassifyCapsAtTwelve(t *testing.T) {
	var items []any
	for i := 0; i < 20; i++ {
		items = append(items, fmt.Sprintf("item %d", i))
	}
	got := Classify(items)
	require.Len(t, got.Recommendations, 12)
	assert.Equal(t, "item 0", got.Recommendations[0])
	assert.Equal(t, "item 11", got.Recommendations[11])
}

func TestClassifyStripsBulletMarkup(t *testing.T) {
	got := Classify("Recommendations:\n  - [x] done thing\n2) numbered thing\n• dotted   thing")
	assert.Equal(t, []string{"done thing", "numbered thing", "dotted thing"}, got.Recommendations)
}

func TestClassifyEmptyInputs(t *testing.T) {
	for _, input := range []any{nil, "", []any{}, map[string]any{}} {
		got := Classify(input)
		assert.Empty(t, got.Recommendations)
		assert.Empty(t, got.NextSteps)
	}
}
