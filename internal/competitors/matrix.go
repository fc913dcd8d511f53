package competitors

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/report-normalizer/internal/features"
	"github.com/jonathan/report-normalizer/internal/types"
)

// maxDiffLabels caps the comparison table at the most differentiating rows.
const maxDiffLabels = 20

// BuildDiffMatrix compares entities on exact feature labels taken from each
// entity's retained raw features value. Labels present in some but not all
// entities are "informative"; only those are ranked (presence count
// descending, then label ascending) unless nothing is informative, in which
// case the full label union is used. When the category filter matches no
// entity the unfiltered set is compared instead, so a comparison is never
// empty while entities exist. The logger may be nil.
func BuildDiffMatrix(entities []types.CanonicalEntity, categoryFilter string, log *zap.Logger) types.DiffMatrix {
	if log == nil {
		log = zap.NewNop()
	}

	selected := filterByCategory(entities, categoryFilter)
	if len(selected) == 0 && len(entities) > 0 {
		log.Warn("category filter matched no competitors, comparing all",
			zap.String("category", categoryFilter))
		selected = entities
	}

	matrix := types.DiffMatrix{
		Labels:   []string{},
		Entities: make([]string, 0, len(selected)),
		Presence: [][]bool{},
		Counts:   []int{},
	}
	for _, e := range selected {
		matrix.Entities = append(matrix.Entities, e.Name)
	}
	if len(selected) == 0 {
		return matrix
	}

	sets := make([]map[string]struct{}, len(selected))
	var union []string
	counts := make(map[string]int)
	for i, e := range selected {
		set := make(map[string]struct{})
		for _, label := range features.ExactLabels(e.Features) {
			if _, seen := set[label]; seen {
				continue
			}
			set[label] = struct{}{}
			if counts[label] == 0 {
				union = append(union, label)
			}
			counts[label]++
		}
		sets[i] = set
	}

	total := len(selected)
	labels := make([]string, 0, len(union))
	for _, label := range union {
		if c := counts[label]; c > 0 && c < total {
			labels = append(labels, label)
		}
	}
	if len(labels) == 0 {
		// Entities are identical (or featureless); show everything rather
		// than an empty table.
		labels = union
		matrix.FallbackAllLabels = len(union) > 0
	}
	if labels == nil {
		labels = []string{}
	}

	sort.SliceStable(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return strings.Compare(labels[i], labels[j]) < 0
	})
	if len(labels) > maxDiffLabels {
		labels = labels[:maxDiffLabels]
	}

	matrix.Labels = labels
	for _, label := range labels {
		row := make([]bool, total)
		for i := range selected {
			_, row[i] = sets[i][label]
		}
		matrix.Presence = append(matrix.Presence, row)
		matrix.Counts = append(matrix.Counts, counts[label])
	}
	return matrix
}

func filterByCategory(entities []types.CanonicalEntity, category string) []types.CanonicalEntity {
	category = strings.TrimSpace(category)
	if category == "" {
		return entities
	}
	var out []types.CanonicalEntity
	for _, e := range entities {
		if strings.EqualFold(strings.TrimSpace(e.Category), category) {
			out = append(out, e)
		}
	}
	return out
}
