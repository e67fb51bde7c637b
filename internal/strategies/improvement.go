package strategies

import (
	"fmt"

	"ideaforge/internal/models"
	"ideaforge/pkg/analyzer"
)

// Thresholds below which the improvement generator speaks up.
const (
	minReadability = 0.6
	minKeywords    = 3
	minEngagement  = 0.7
	minOriginality = 0.6
)

// ImprovementGenerator emits one suggestion per failed quality heuristic.
type ImprovementGenerator struct {
	builder
	analyzer analyzer.ContentAnalyzer
}

func NewImprovementGenerator(deps Deps) *ImprovementGenerator {
	deps = deps.withDefaults()
	return &ImprovementGenerator{
		builder:  builder{kind: models.SuggestionTypeImprovement, now: deps.Now},
		analyzer: deps.Analyzer,
	}
}

func (g *ImprovementGenerator) Type() models.SuggestionType { return models.SuggestionTypeImprovement }

func (g *ImprovementGenerator) Generate(_ models.UserContext, input string) []models.Suggestion {
	if !hasInput(input) {
		return nil
	}
	a := g.analyzer.Analyze(input)
	meta := models.SuggestionMetadata{
		RelevanceScore:      0.9,
		ContextualFit:       averageFit(a, nil),
		OriginalityScore:    a.Originality,
		EngagementPotential: a.EngagementPotential,
	}

	var out []models.Suggestion
	if a.Readability < minReadability {
		out = append(out, g.build(
			"Simplifique o texto: use frases e palavras mais curtas",
			0.85,
			fmt.Sprintf("Legibilidade estimada em %.0f%%, abaixo de 60%%", a.Readability*100),
			models.SourcePatternAnalysis, meta,
		))
	}
	if len(a.Keywords) < minKeywords {
		out = append(out, g.build(
			"Adicione mais palavras-chave relevantes ao conteúdo",
			0.8,
			fmt.Sprintf("Apenas %d palavra(s)-chave identificada(s); o ideal são pelo menos 3", len(a.Keywords)),
			models.SourcePatternAnalysis, meta,
		))
	}
	if a.EngagementPotential < minEngagement {
		out = append(out, g.build(
			"Adicione elementos envolventes: perguntas, exclamações ou fale diretamente com o público",
			0.9,
			fmt.Sprintf("Potencial de engajamento em %.0f%%, abaixo de 70%%", a.EngagementPotential*100),
			models.SourcePatternAnalysis, meta,
		))
	}
	if a.Originality < minOriginality {
		out = append(out, g.build(
			"Aumente a originalidade evitando expressões muito usadas",
			0.75,
			fmt.Sprintf("Originalidade em %.0f%%; o texto usa expressões clichê", a.Originality*100),
			models.SourcePatternAnalysis, meta,
		))
	}
	return out
}
