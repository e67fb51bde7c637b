package strategies

import (
	"fmt"
	"strings"

	"ideaforge/internal/models"
	"ideaforge/pkg/analyzer"
	"ideaforge/pkg/categorizer"
)

const maxCategorySuggestions = 3

// CategoryGenerator suggests the best matching categories for the input.
type CategoryGenerator struct {
	builder
	analyzer    analyzer.ContentAnalyzer
	categorizer categorizer.ContentCategorizer
}

func NewCategoryGenerator(deps Deps) *CategoryGenerator {
	deps = deps.withDefaults()
	return &CategoryGenerator{
		builder:     builder{kind: models.SuggestionTypeCategory, now: deps.Now},
		analyzer:    deps.Analyzer,
		categorizer: deps.Categorizer,
	}
}

func (g *CategoryGenerator) Type() models.SuggestionType { return models.SuggestionTypeCategory }

// Generate returns the top three categories with confidence equal to score.
func (g *CategoryGenerator) Generate(uctx models.UserContext, input string) []models.Suggestion {
	if !hasInput(input) {
		return nil
	}
	a := g.analyzer.Analyze(input)
	top := g.categorizer.TopCategories(a, maxCategorySuggestions)

	out := make([]models.Suggestion, 0, len(top))
	for _, cs := range top {
		fit := 0.5
		if containsFold(uctx.PreferredCategories, cs.Category) {
			fit = 1
		}
		out = append(out, g.build(
			cs.Category,
			cs.Score,
			fmt.Sprintf("Palavras-chave relacionadas: %s", strings.Join(cs.Matched, ", ")),
			models.SourcePatternAnalysis,
			models.SuggestionMetadata{
				RelevanceScore:      cs.Score,
				ContextualFit:       fit,
				OriginalityScore:    a.Originality,
				EngagementPotential: a.EngagementPotential,
			},
		))
	}
	return out
}
