// Package ranking filters and orders suggestion candidates by confidence.
package ranking

import (
	"sort"

	"ideaforge/internal/models"
)

// Rank keeps candidates with confidence >= minConfidence, orders them by
// confidence descending and truncates to limit. Ties keep generator order.
// A non-positive limit yields an empty result. candidates is not modified.
func Rank(candidates []models.Suggestion, minConfidence float64, limit int) []models.Suggestion {
	if limit <= 0 {
		return []models.Suggestion{}
	}
	kept := make([]models.Suggestion, 0, len(candidates))
	for _, c := range candidates {
		if c.Confidence >= minConfidence {
			kept = append(kept, c)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Confidence > kept[j].Confidence
	})
	if len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}
