package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideaforge/internal/models"
)

func TestAnalyze_EmptyText(t *testing.T) {
	a := New().Analyze("")

	assert.Equal(t, models.SentimentNeutral, a.Sentiment)
	assert.Empty(t, a.Keywords)
	assert.Empty(t, a.Topics)
	assert.Equal(t, 1.0, a.Readability)
	assert.Equal(t, 0.5, a.EngagementPotential)
	assert.Equal(t, 1.0, a.Originality)
	assert.Equal(t, 0.7, a.PlatformFit["youtube"])
	assert.Equal(t, 0.6, a.PlatformFit["instagram"])
	assert.Equal(t, 0.8, a.PlatformFit["tiktok"])
	assert.Equal(t, 0.5, a.PlatformFit["linkedin"])
}

func TestAnalyze_PunctuationOnly(t *testing.T) {
	a := New().Analyze("   ?!  ...  ")
	assert.Empty(t, a.Keywords)
	assert.Equal(t, 1.0, a.Readability)
	// "?" and "!" still count as engagement patterns.
	assert.Equal(t, 0.7, a.EngagementPotential)
}

func TestAnalyze_Sentiment(t *testing.T) {
	an := New()
	testCases := []struct {
		name string
		text string
		want models.Sentiment
	}{
		{name: "positive", text: "Um resultado excelente e um curso ótimo", want: models.SentimentPositive},
		{name: "negative", text: "Foi um fracasso terrível, pior dia", want: models.SentimentNegative},
		{name: "tie", text: "excelente mas ruim", want: models.SentimentNeutral},
		{name: "no hits", text: "receita de bolo de cenoura", want: models.SentimentNeutral},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, an.Analyze(tc.text).Sentiment)
		})
	}
}

func TestAnalyze_KeywordsRankedByFrequencyThenFirstSeen(t *testing.T) {
	a := New().Analyze("python dados python, receita dados PYTHON! bolo para de")

	require.NotEmpty(t, a.Keywords)
	assert.Equal(t, []string{"python", "dados", "receita", "bolo"}, a.Keywords)
}

func TestAnalyze_KeywordsCappedAtTen(t *testing.T) {
	words := []string{"alpha", "bravo", "charlie", "delta", "echoes", "foxtrot", "golfe", "hotel", "india", "juliett", "kilos", "limao"}
	a := New().Analyze(strings.Join(words, " "))

	assert.Len(t, a.Keywords, 10)
	assert.Equal(t, words[:10], a.Keywords)
}

func TestAnalyze_TopicsFromKeywords(t *testing.T) {
	a := New().Analyze("Tutorial de programação Python para iniciantes")

	assert.Equal(t, []string{"tutorial", "programação", "python", "iniciantes"}, a.Keywords)
	assert.Equal(t, []string{"tecnologia", "educação"}, a.Topics)
}

func TestAnalyze_Readability(t *testing.T) {
	an := New()

	short := an.Analyze("um dia de sol bom")
	assert.Equal(t, 1.0, short.Readability)

	long := an.Analyze(strings.Repeat("internacionalização desenvolvimento ", 5))
	assert.Equal(t, 0.0, long.Readability)

	// average length 8 => 1 - 3/10
	mid := an.Analyze("abcdefgh abcdefgh")
	assert.InDelta(t, 0.7, mid.Readability, 1e-9)
}

func TestAnalyze_EngagementPatterns(t *testing.T) {
	an := New()

	all := an.Analyze("Você sabe como descobrir o segredo? Descubra agora!")
	assert.Equal(t, 1.0, all.EngagementPotential)

	question := an.Analyze("isso funciona?")
	assert.Equal(t, 0.6, question.EngagementPotential)

	pronoun := an.Analyze("feito para você")
	assert.Equal(t, 0.6, pronoun.EngagementPotential)

	// "voceira" must not count as the pronoun.
	none := an.Analyze("voceira comum")
	assert.Equal(t, 0.5, none.EngagementPotential)
}

func TestAnalyze_OriginalityFloor(t *testing.T) {
	an := New()

	one := an.Analyze("Neste vídeo mostro meu setup")
	assert.Equal(t, 0.8, one.Originality)

	many := an.Analyze("neste vídeo, não perca, clique aqui, se inscreva e deixe seu like")
	assert.Equal(t, 0.3, many.Originality)
}

func TestAnalyze_PlatformFitCapped(t *testing.T) {
	a := New().Analyze("trend desafio rápido viral dança humor")

	assert.Equal(t, 1.0, a.PlatformFit["tiktok"])
	assert.Equal(t, 0.5, a.PlatformFit["linkedin"])
}

func TestAnalyze_Pure(t *testing.T) {
	an := New()
	text := "Como aprender Python rápido? Guia incrível para você!"

	first := an.Analyze(text)
	second := an.Analyze(text)
	assert.Equal(t, first, second)
}

func TestAnalyze_ScoresInRange(t *testing.T) {
	an := New()
	inputs := []string{
		"", "a", "?!?!?!", strings.Repeat("x", 500),
		"neste vídeo não perca clique aqui o melhor de todos você não vai acreditar",
	}
	for _, in := range inputs {
		a := an.Analyze(in)
		for name, v := range map[string]float64{
			"readability": a.Readability,
			"engagement":  a.EngagementPotential,
			"originality": a.Originality,
		} {
			assert.GreaterOrEqual(t, v, 0.0, name)
			assert.LessOrEqual(t, v, 1.0, name)
		}
		for p, v := range a.PlatformFit {
			assert.GreaterOrEqual(t, v, 0.0, p)
			assert.LessOrEqual(t, v, 1.0, p)
		}
	}
}
