package strategies

import (
	"fmt"

	"ideaforge/internal/models"
)

const (
	manyRecentIdeas    = 5
	longSessionSeconds = 1800
	busySessionActions = 20
)

// NextActionGenerator suggests what to do next from session behavior alone.
// The current input is ignored.
type NextActionGenerator struct {
	builder
}

func NewNextActionGenerator(deps Deps) *NextActionGenerator {
	deps = deps.withDefaults()
	return &NextActionGenerator{
		builder: builder{kind: models.SuggestionTypeNextAction, now: deps.Now},
	}
}

func (g *NextActionGenerator) Type() models.SuggestionType { return models.SuggestionTypeNextAction }

func (g *NextActionGenerator) Generate(uctx models.UserContext, _ string) []models.Suggestion {
	ideas := len(uctx.RecentIdeas)
	behavior := uctx.UserBehavior
	meta := models.SuggestionMetadata{RelevanceScore: 0.8, ContextualFit: 0.9, OriginalityScore: 0.5, EngagementPotential: 0.6}

	var out []models.Suggestion
	if ideas > manyRecentIdeas {
		out = append(out, g.build(
			"Organize suas ideias em categorias",
			0.8,
			fmt.Sprintf("Você tem %d ideias recentes; agrupá-las facilita encontrar padrões", ideas),
			models.SourceUserHistory, meta,
		))
	}
	if behavior.SessionTime > longSessionSeconds {
		out = append(out, g.build(
			"Faça uma pausa e salve seu progresso",
			0.75,
			fmt.Sprintf("Sua sessão está ativa há %d minutos", behavior.SessionTime/60),
			models.SourceUserHistory, meta,
		))
	}
	if behavior.ActionsPerSession > busySessionActions {
		out = append(out, g.build(
			"Revise suas ideias recentes em busca de padrões",
			0.85,
			fmt.Sprintf("%d ações nesta sessão; vale consolidar o que foi produzido", behavior.ActionsPerSession),
			models.SourceUserHistory, meta,
		))
	}
	if ideas == 0 {
		out = append(out, g.build(
			"Crie sua primeira ideia ou explore os modelos disponíveis para começar",
			0.9,
			"Você ainda não tem ideias registradas",
			models.SourceUserHistory, meta,
		))
	}
	return out
}
