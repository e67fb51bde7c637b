package categorizer

import (
	"ideaforge/internal/models"
)

// CategoryScore is one category with its score and the keywords that matched.
type CategoryScore struct {
	Category string
	Score    float64
	Matched  []string
}

// ContentCategorizer scores an analysis against a set of categories.
type ContentCategorizer interface {
	ScoreCategories(analysis models.ContentAnalysis) map[string]float64
	TopCategories(analysis models.ContentAnalysis, n int) []CategoryScore
}
