package schemas

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/report-normalizer/internal/report"
)

func schemaPath(t *testing.T) string {
	t.Helper()
	path := ResolveSchemaPath(ReportSchemaFile)
	require.NotEmpty(t, path, "report schema must be resolvable from the test directory")
	return path
}

func TestResolveSchemaPathMissing(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.schema.json"))
}

func TestValidateReportBytesAcceptsNormalizedOutput(t *testing.T) {
	payload := map[string]any{
		"industry_name": "E-Commerce",
		"competitors": []any{
			map[string]any{
				"name":     "Shopline",
				"features": map[string]any{"chat": true},
			},
			map[string]any{
				"name":     "SouqGo",
				"features": map[string]any{"sms": true},
			},
		},
		"recommendation_summary": "Recommendations:\n- Focus on mobile",
		"timeline_pricing": []any{
			map[string]any{"item": "MVP", "estimated_cost_usd": float64(5000)},
		},
	}

	rep, err := report.Normalize(payload, report.Options{})
	require.NoError(t, err)
	doc, err := json.Marshal(rep)
	require.NoError(t, err)

	assert.NoError(t, ValidateReportBytes(schemaPath(t), doc))
}

func TestValidateReportBytesAcceptsEmptyPayloadOutput(t *testing.T) {
	rep, err := report.Normalize(map[string]any{}, report.Options{})
	require.NoError(t, err)
	doc, err := json.Marshal(rep)
	require.NoError(t, err)

	assert.NoError(t, ValidateReportBytes(schemaPath(t), doc))
}

func TestValidateReportBytesRejectsEmptyName(t *testing.T) {
	doc := []byte(`{
		"meta": {"run_id": "r", "competitor_count": 1, "generated_at": "2026-08-30T00:00:00Z"},
		"competitors": [{
			"name": "", "category": "", "description": "",
			"notable_features": [], "strengths": [], "weaknesses": [],
			"inactive": false
		}],
		"feature_diff": {"labels": [], "entities": [], "presence": [], "counts": []},
		"recommendations": {"recommendations": [], "next_steps": []},
		"timeline_pricing": {"rows": []}
	}`)

	err := ValidateReportBytes(schemaPath(t), doc)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateReportBytesSchemaLoadError(t *testing.T) {
	err := ValidateReportBytes(filepath.Join(t.TempDir(), "missing.schema.json"), []byte(`{}`))
	require.Error(t, err)

	var sle *SchemaLoadError
	assert.True(t, errors.As(err, &sle))
}

func TestValidateJSONFiles(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "report.json")

	rep, err := report.Normalize(map[string]any{}, report.Options{})
	require.NoError(t, err)
	doc, err := json.Marshal(rep)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(docPath, doc, 0o644))

	assert.NoError(t, ValidateJSON(schemaPath(t), docPath))

	err = ValidateJSON(schemaPath(t), filepath.Join(dir, "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")
}
