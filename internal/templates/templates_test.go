package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideaforge/internal/models"
)

func fixedNow() time.Time { return time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC) }

func TestNewTemplate_Placeholders(t *testing.T) {
	tpl := NewTemplate("{number} Erros de {topic} que Todo {audience} Comete com {topic}")
	assert.Equal(t, []string{"number", "topic", "audience"}, tpl.Placeholders)
}

func TestEngine_FillAllResolvable(t *testing.T) {
	e := NewEngine(nil, fixedNow)
	analysis := models.ContentAnalysis{
		Keywords: []string{"tutorial", "programação", "python", "iniciantes"},
		Topics:   []string{"tecnologia", "educação"},
	}

	filled := e.Fill(analysis, models.UserContext{})

	require.Len(t, filled, 7)
	assert.Equal(t, "3 Dicas de Tutorial que Você Precisa Conhecer", filled[0].Text)
	assert.Equal(t, "Como Dominar Tutorial em 2026", filled[1].Text)
	assert.Equal(t, "O Guia Completo de Tecnologia para Desenvolvedor", filled[2].Text)
	assert.Equal(t, "Tutorial: Automatize Tarefas e Ganhe Tempo em Poucos Passos", filled[3].Text)
	assert.Equal(t, "Por que Programação Não Precisa Ser um Problema: Tutorial na Prática", filled[4].Text)
	assert.Equal(t, "Dominar Tutorial com o Método Python", filled[5].Text)
}

func TestEngine_SkipsUnresolvable(t *testing.T) {
	e := NewEngine(nil, fixedNow)
	// One keyword, no topic, no preferred categories.
	analysis := models.ContentAnalysis{Keywords: []string{"receita"}}

	filled := e.Fill(analysis, models.UserContext{})

	var texts []string
	for _, f := range filled {
		texts = append(texts, f.Text)
	}
	assert.Equal(t, []string{
		"5 Dicas de Receita que Você Precisa Conhecer",
		"Como Dominar Receita em 2026",
	}, texts)
}

func TestEngine_TopicFallsBackToPreferredCategory(t *testing.T) {
	e := NewEngine(nil, fixedNow)
	analysis := models.ContentAnalysis{Keywords: []string{"receita"}}

	vars := e.Resolve(analysis, models.UserContext{PreferredCategories: []string{" Saúde "}})

	assert.Equal(t, "Saúde", vars[Topic])
	assert.Equal(t, "Melhorar", vars[Action])
	assert.Equal(t, "Mais Energia no Dia a Dia", vars[Benefit])
}

func TestEngine_NothingResolvesWithoutKeywordsOrTopic(t *testing.T) {
	e := NewEngine(nil, fixedNow)
	assert.Empty(t, e.Fill(models.ContentAnalysis{}, models.UserContext{}))
}

func TestFilled_Specificity(t *testing.T) {
	one := Filled{Template: NewTemplate("{keyword}")}
	three := Filled{Template: NewTemplate("{a} {b} {c}")}

	assert.InDelta(t, 0.5, one.Specificity(), 1e-9)
	assert.InDelta(t, 0.75, three.Specificity(), 1e-9)
	assert.Less(t, three.Specificity(), 1.0)
}
