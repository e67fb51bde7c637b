package strategies

import (
	"fmt"
	"strings"

	"ideaforge/internal/models"
	"ideaforge/internal/templates"
	"ideaforge/pkg/analyzer"
)

const (
	titleBaseConfidence  = 0.8
	titleSpecificitySpan = 0.15
)

// TitleGenerator fills title templates from the current input.
type TitleGenerator struct {
	builder
	analyzer  analyzer.ContentAnalyzer
	templates *templates.Engine
}

func NewTitleGenerator(deps Deps) *TitleGenerator {
	deps = deps.withDefaults()
	return &TitleGenerator{
		builder:   builder{kind: models.SuggestionTypeTitle, now: deps.Now},
		analyzer:  deps.Analyzer,
		templates: deps.Templates,
	}
}

func (g *TitleGenerator) Type() models.SuggestionType { return models.SuggestionTypeTitle }

// Generate returns nothing without input. Confidence is
// 0.8 + 0.15*specificity, which stays inside [0.8, 0.95).
func (g *TitleGenerator) Generate(uctx models.UserContext, input string) []models.Suggestion {
	if !hasInput(input) {
		return nil
	}
	a := g.analyzer.Analyze(input)
	filled := g.templates.Fill(a, uctx)

	fit := averageFit(a, uctx.Platforms)
	out := make([]models.Suggestion, 0, len(filled))
	for _, f := range filled {
		specificity := f.Specificity()
		out = append(out, g.build(
			f.Text,
			titleBaseConfidence+titleSpecificitySpan*specificity,
			titleReasoning(f, a),
			models.SourcePatternAnalysis,
			models.SuggestionMetadata{
				RelevanceScore:      specificity,
				ContextualFit:       fit,
				OriginalityScore:    a.Originality,
				EngagementPotential: a.EngagementPotential,
			},
		))
	}
	return out
}

func titleReasoning(f templates.Filled, a models.ContentAnalysis) string {
	reason := fmt.Sprintf("Modelo com %d elemento(s) extraído(s) do seu texto", len(f.Template.Placeholders))
	if n := len(a.Keywords); n > 0 {
		if n > 3 {
			n = 3
		}
		reason += " (palavras-chave: " + strings.Join(a.Keywords[:n], ", ") + ")"
	}
	return reason
}
