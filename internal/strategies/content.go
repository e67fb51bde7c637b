package strategies

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"ideaforge/internal/models"
	"ideaforge/pkg/analyzer"
)

const (
	maxPatternKeywords = 3
	maxLeadRunes       = 80
	unknownPlatformFit = 0.7
)

// Trend is one entry of the trending-topics table.
type Trend struct {
	Topic    string
	Category string
	Score    float64
}

// DefaultTrends is the fixed trending-topics table.
func DefaultTrends() []Trend {
	return []Trend{
		{Topic: "inteligência artificial no dia a dia", Category: "tecnologia", Score: 0.85},
		{Topic: "finanças pessoais para jovens", Category: "negócios", Score: 0.8},
		{Topic: "rotinas de produtividade", Category: "lifestyle", Score: 0.78},
		{Topic: "saúde mental no trabalho", Category: "saúde", Score: 0.75},
		{Topic: "sustentabilidade em casa", Category: "lifestyle", Score: 0.72},
	}
}

const preferredTrendBoost = 0.05

var platformIdeas = map[string]string{
	"youtube":   "Grave um vídeo tutorial detalhado sobre %s para o YouTube",
	"instagram": "Crie um carrossel visual sobre %s para o Instagram",
	"tiktok":    "Faça um vídeo curto de até 60 segundos sobre %s para o TikTok",
	"linkedin":  "Escreva um artigo profissional sobre %s para o LinkedIn",
}

// ContentGenerator mines successful content, trending topics, the current
// input and the user's platforms for content ideas.
type ContentGenerator struct {
	builder
	analyzer  analyzer.ContentAnalyzer
	sentences analyzer.SentenceSplitter
	trends    []Trend
}

func NewContentGenerator(deps Deps) *ContentGenerator {
	deps = deps.withDefaults()
	return &ContentGenerator{
		builder:   builder{kind: models.SuggestionTypeContent, now: deps.Now},
		analyzer:  deps.Analyzer,
		sentences: deps.Sentences,
		trends:    deps.Trends,
	}
}

func (g *ContentGenerator) Type() models.SuggestionType { return models.SuggestionTypeContent }

func (g *ContentGenerator) Generate(uctx models.UserContext, input string) []models.Suggestion {
	var out []models.Suggestion
	out = append(out, g.fromSuccessfulContent(uctx)...)
	out = append(out, g.fromTrends(uctx)...)

	var inputAnalysis *models.ContentAnalysis
	if hasInput(input) {
		a := g.analyzer.Analyze(input)
		inputAnalysis = &a
		out = append(out, g.fromInput(input, a))
	}
	out = append(out, g.forPlatforms(uctx, inputAnalysis)...)
	return out
}

func (g *ContentGenerator) fromSuccessfulContent(uctx models.UserContext) []models.Suggestion {
	var items []string
	for _, c := range uctx.SuccessfulContent {
		if hasInput(c) {
			items = append(items, c)
		}
	}
	if len(items) == 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	var engagement float64
	for _, item := range items {
		a := g.analyzer.Analyze(item)
		engagement += a.EngagementPotential
		for _, k := range a.Keywords {
			if counts[k] == 0 {
				order = append(order, k)
			}
			counts[k]++
		}
	}
	engagement /= float64(len(items))
	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > maxPatternKeywords {
		order = order[:maxPatternKeywords]
	}

	out := make([]models.Suggestion, 0, len(order))
	for i, k := range order {
		share := float64(counts[k]) / float64(len(items))
		out = append(out, g.build(
			fmt.Sprintf("Crie uma continuação explorando \"%s\", tema recorrente nos seus conteúdos de sucesso", k),
			0.85-0.05*float64(i),
			fmt.Sprintf("\"%s\" aparece em %d de %d conteúdos com bom desempenho", k, counts[k], len(items)),
			models.SourceUserHistory,
			models.SuggestionMetadata{
				RelevanceScore:      share,
				ContextualFit:       0.8,
				OriginalityScore:    0.6,
				EngagementPotential: engagement,
			},
		))
	}
	return out
}

func (g *ContentGenerator) fromTrends(uctx models.UserContext) []models.Suggestion {
	out := make([]models.Suggestion, 0, len(g.trends))
	for _, t := range g.trends {
		confidence := t.Score
		reasoning := fmt.Sprintf("Tema em alta na categoria %s", t.Category)
		fit := 0.5
		if containsFold(uctx.PreferredCategories, t.Category) {
			confidence += preferredTrendBoost
			reasoning += ", uma das suas categorias preferidas"
			fit = 0.9
		}
		out = append(out, g.build(
			fmt.Sprintf("Produza um conteúdo sobre %s", t.Topic),
			confidence,
			reasoning,
			models.SourceTrending,
			models.SuggestionMetadata{
				RelevanceScore:      t.Score,
				ContextualFit:       fit,
				OriginalityScore:    0.5,
				EngagementPotential: t.Score,
			},
		))
	}
	return out
}

func (g *ContentGenerator) fromInput(input string, a models.ContentAnalysis) models.Suggestion {
	lead := strings.TrimSpace(input)
	if sents := g.sentences.Split(input); len(sents) > 0 {
		lead = sents[0]
	}
	lead = truncateRunes(lead, maxLeadRunes)

	content := fmt.Sprintf("Desenvolva a ideia \"%s\" em um conteúdo passo a passo", lead)
	if len(a.Keywords) > 0 {
		content = fmt.Sprintf("Desenvolva a ideia \"%s\" em uma série aprofundando \"%s\"", lead, a.Keywords[0])
	}
	return g.build(
		content,
		0.6+0.3*a.EngagementPotential,
		fmt.Sprintf("Baseado no seu texto atual, com engajamento estimado em %.0f%%", a.EngagementPotential*100),
		models.SourcePatternAnalysis,
		models.SuggestionMetadata{
			RelevanceScore:      0.9,
			ContextualFit:       averageFit(a, nil),
			OriginalityScore:    a.Originality,
			EngagementPotential: a.EngagementPotential,
		},
	)
}

func (g *ContentGenerator) forPlatforms(uctx models.UserContext, inputAnalysis *models.ContentAnalysis) []models.Suggestion {
	if len(uctx.Platforms) == 0 {
		return nil
	}

	var a models.ContentAnalysis
	switch {
	case inputAnalysis != nil:
		a = *inputAnalysis
	case len(uctx.RecentIdeas) > 0:
		a = g.analyzer.Analyze(uctx.RecentIdeas[0])
	default:
		a = g.analyzer.Analyze("")
	}
	subject := "seu nicho"
	if len(a.Keywords) > 0 {
		subject = a.Keywords[0]
	}

	seen := make(map[string]bool)
	var out []models.Suggestion
	for _, raw := range uctx.Platforms {
		p := normalize(raw)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true

		fit, known := a.PlatformFit[p]
		if !known {
			fit = unknownPlatformFit
		}
		content := fmt.Sprintf("Adapte um conteúdo sobre %s ao formato do %s", subject, strings.TrimSpace(raw))
		if pattern, ok := platformIdeas[p]; ok {
			content = fmt.Sprintf(pattern, subject)
		}
		out = append(out, g.build(
			content,
			fit,
			fmt.Sprintf("Formato nativo de %s, com aderência estimada em %.0f%%", strings.TrimSpace(raw), fit*100),
			models.SourcePatternAnalysis,
			models.SuggestionMetadata{
				RelevanceScore:      0.7,
				ContextualFit:       fit,
				OriginalityScore:    a.Originality,
				EngagementPotential: a.EngagementPotential,
			},
		))
	}
	return out
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n])) + "…"
}
