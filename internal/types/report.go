// Package types provides type definitions for the normalized report structures
// shared throughout the report-normalizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// SocialLinks holds per-network profile URLs for a competitor.
// Empty string means the network was not present in the source payload.
type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty"`
	Telegram  string `json:"telegram,omitempty"`
}

// AppLinks holds store/web distribution links for a competitor.
type AppLinks struct {
	Android string `json:"android,omitempty"`
	IOS     string `json:"ios,omitempty"`
	Website string `json:"website,omitempty"`
}

// CanonicalEntity is a fully normalized competitor record. Name is always
// non-empty; records without a resolvable name are dropped during
// normalization rather than constructed with an empty name.
//
// Features retains the original raw sub-structure from the payload (not the
// flattened NotableFeatures list) because the feature-diff matrix needs
// exact-label fidelity.
type CanonicalEntity struct {
	Name            string      `json:"name" validate:"required"`
	Category        string      `json:"category"`
	Description     string      `json:"description"`
	NotableFeatures []string    `json:"notable_features"`
	Strengths       []string    `json:"strengths"`
	Weaknesses      []string    `json:"weaknesses"`
	Notes           string      `json:"notes"`
	WebsiteURL      string      `json:"website_url"`
	Social          SocialLinks `json:"social"`
	AppLinks        AppLinks    `json:"app_links"`
	Inactive        bool        `json:"inactive"`
	StatusText      string      `json:"status_text"`
	Features        any         `json:"features,omitempty"`
}

// DiffMatrix is the cross-competitor feature comparison. Presence is indexed
// as Presence[labelIdx][entityIdx]. FallbackAllLabels is set when no label
// was informative (present in some but not all entities) and the full label
// union was used instead.
type DiffMatrix struct {
	Labels            []string `json:"labels"`
	Entities          []string `json:"entities"`
	Presence          [][]bool `json:"presence"`
	Counts            []int    `json:"counts"`
	FallbackAllLabels bool     `json:"fallback_all_labels,omitempty"`
}

// Present reports whether the label at labelIdx is present for the entity at
// entityIdx. Out-of-range indexes report false.
func (m DiffMatrix) Present(labelIdx, entityIdx int) bool {
	if labelIdx < 0 || labelIdx >= len(m.Presence) {
		return false
	}
	row := m.Presence[labelIdx]
	if entityIdx < 0 || entityIdx >= len(row) {
		return false
	}
	return row[entityIdx]
}

// RecommendationBucket splits free-form advisory content into
// recommendations and next steps. Both lists are deduplicated
// case-insensitively, kept in first-seen order, and capped at 12 entries.
type RecommendationBucket struct {
	Recommendations []string `json:"recommendations" validate:"max=12"`
	NextSteps       []string `json:"next_steps" validate:"max=12"`
}

// PricingRow is one normalized timeline/pricing entry. DurationWeeks and
// EstimatedCostUSD are nil when the source had no parsable number.
type PricingRow struct {
	Item             string   `json:"item"`
	Level            string   `json:"level"`
	DurationWeeks    *float64 `json:"duration_weeks,omitempty"`
	EstimatedCostUSD *float64 `json:"estimated_cost_usd,omitempty"`
	Notes            string   `json:"notes"`
}

// Empty reports whether all five fields of the row are empty/absent.
// Fully empty rows are discarded from normalizer output.
func (r PricingRow) Empty() bool {
	return r.Item == "" && r.Level == "" && r.Notes == "" &&
		r.DurationWeeks == nil && r.EstimatedCostUSD == nil
}

// TimelinePricing is the normalized timeline & pricing section. When the
// source was plain prose that did not decode into rows, FallbackText carries
// it verbatim and Rows is empty.
type TimelinePricing struct {
	Rows         []PricingRow `json:"rows"`
	FallbackText string       `json:"fallback_text,omitempty"`
}

// ReportMeta carries bookkeeping about one normalization run.
type ReportMeta struct {
	RunID           string    `json:"run_id"`
	IndustryName    string    `json:"industry_name,omitempty"`
	CompetitorCount int       `json:"competitor_count"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// NormalizedReport is the full presentation-ready output for one report
// payload. Everything here is derived; it is recomputed on every call and
// has no identity beyond the current render cycle.
type NormalizedReport struct {
	Meta                           ReportMeta           `json:"meta"`
	Competitors                    []CanonicalEntity    `json:"competitors" validate:"dive"`
	FeatureDiff                    DiffMatrix           `json:"feature_diff"`
	Recommendations                RecommendationBucket `json:"recommendations"`
	TimelinePricing                TimelinePricing      `json:"timeline_pricing"`
	DifferentiationRecommendations []string             `json:"differentiation_recommendations,omitempty"`
}
