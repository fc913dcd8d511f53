// Package competitors normalizes the raw competitor payload into canonical
// entities and builds the cross-competitor feature-diff matrix.
package competitors

import (
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/report-normalizer/internal/features"
	"github.com/jonathan/report-normalizer/internal/rawval"
	"github.com/jonathan/report-normalizer/internal/types"
)

// Normalize converts the raw competitors payload into canonical entities.
// The payload may be a sequence of records or a keyed map of records; for a
// keyed map the key serves as the fallback name and records are visited in
// sorted key order so output is deterministic. Records without a resolvable
// name are dropped. The logger may be nil.
func Normalize(raw any, fallbackCategory string, log *zap.Logger) []types.CanonicalEntity {
	if log == nil {
		log = zap.NewNop()
	}

	out := []types.CanonicalEntity{}
	switch t := raw.(type) {
	case []any:
		for _, item := range t {
			rec, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if entity, ok := normalizeRecord(rec, "", fallbackCategory, log); ok {
				out = append(out, entity)
			}
		}
	case map[string]any:
		for _, key := range rawval.SortedKeys(t) {
			rec, ok := t[key].(map[string]any)
			if !ok {
				// A keyed scalar still identifies a competitor by name.
				if s, isStr := t[key].(string); isStr && strings.TrimSpace(key) != "" {
					out = append(out, types.CanonicalEntity{
						Name:            strings.TrimSpace(key),
						Category:        fallbackCategory,
						Description:     strings.TrimSpace(s),
						NotableFeatures: []string{},
						Strengths:       []string{},
						Weaknesses:      []string{},
					})
				}
				continue
			}
			if entity, ok := normalizeRecord(rec, key, fallbackCategory, log); ok {
				out = append(out, entity)
			}
		}
	}
	return out
}

func normalizeRecord(rec map[string]any, fallbackName, fallbackCategory string, log *zap.Logger) (types.CanonicalEntity, bool) {
	name := firstString(rec, "name", "appName")
	if name == "" {
		name = strings.TrimSpace(fallbackName)
	}
	if name == "" {
		log.Debug("dropping competitor record without resolvable name")
		return types.CanonicalEntity{}, false
	}

	category := firstString(rec, "category", "industry")
	if category == "" {
		category = fallbackCategory
	}

	inactive, statusText := detectInactive(rec)

	appLinks := resolveAppLinks(rec)
	websiteURL := firstString(rec, "website_url", "website", "url", "link")
	if websiteURL == "" {
		websiteURL = appLinks.Website
	}

	return types.CanonicalEntity{
		Name:            name,
		Category:        category,
		Description:     firstString(rec, "description", "summary"),
		NotableFeatures: features.Extract(rec, log),
		Strengths:       rawval.StringList(firstPresent(rec, "strengths", "pros")),
		Weaknesses:      rawval.StringList(firstPresent(rec, "weaknesses", "cons")),
		Notes:           rawval.MarkdownBlock(firstPresent(rec, "notes", "note", "comments")),
		WebsiteURL:      websiteURL,
		Social:          resolveSocial(rec),
		AppLinks:        appLinks,
		Inactive:        inactive,
		StatusText:      statusText,
		Features:        rec["features"],
	}, true
}

// resolveSocial pulls per-network links from a nested social sub-object,
// tolerating either key casing, with top-level fields as a last fallback.
func resolveSocial(rec map[string]any) types.SocialLinks {
	sub, _ := firstPresent(rec, "social", "social_links", "social_media").(map[string]any)
	pick := func(keys ...string) string {
		if s := firstString(sub, keys...); s != "" {
			return s
		}
		return firstString(rec, keys...)
	}
	return types.SocialLinks{
		Facebook:  pick("facebook", "Facebook"),
		Instagram: pick("instagram", "Instagram"),
		LinkedIn:  pick("linkedin", "LinkedIn"),
		WhatsApp:  pick("whatsapp", "WhatsApp"),
		Telegram:  pick("telegram", "Telegram"),
	}
}

func resolveAppLinks(rec map[string]any) types.AppLinks {
	sub, _ := firstPresent(rec, "app_links", "apps", "links").(map[string]any)
	pick := func(keys ...string) string {
		return firstString(sub, keys...)
	}
	return types.AppLinks{
		Android: pick("android", "android_url", "play_store"),
		IOS:     pick("ios", "ios_url", "app_store"),
		Website: pick("website", "website_url", "url"),
	}
}

// firstString walks the alias chain and returns the first non-empty
// trimmed string value. Non-string values are skipped, not coerced;
// identity fields must arrive as text to count.
func firstString(m map[string]any, keys ...string) string {
	if m == nil {
		return ""
	}
	for _, key := range keys {
		if s, ok := m[key].(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

// firstPresent returns the first non-nil value along the alias chain.
func firstPresent(m map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := m[key]; ok && v != nil {
			return v
		}
	}
	return nil
}
