package categorizer

import (
	"sort"

	"ideaforge/internal/models"
)

// Category is a label plus the keywords that vote for it.
type Category struct {
	Name     string
	Keywords []string
}

// DefaultCategories is the fixed keyword-to-category table.
func DefaultCategories() []Category {
	return []Category{
		{Name: "tecnologia", Keywords: []string{"tecnologia", "programação", "python", "software", "código"}},
		{Name: "educação", Keywords: []string{"tutorial", "curso", "aprender", "aula", "iniciantes"}},
		{Name: "negócios", Keywords: []string{"negócios", "empreendedorismo", "marketing", "vendas", "investimento"}},
		{Name: "entretenimento", Keywords: []string{"filme", "música", "jogo", "série", "humor"}},
		{Name: "saúde", Keywords: []string{"saúde", "exercício", "treino", "dieta", "fitness"}},
		{Name: "lifestyle", Keywords: []string{"viagem", "moda", "receita", "decoração", "rotina"}},
	}
}

// KeywordCategorizer scores a category by the fraction of its keywords found
// among the analysis keywords.
type KeywordCategorizer struct {
	categories []Category
}

var _ ContentCategorizer = (*KeywordCategorizer)(nil)

// NewKeywordCategorizer uses DefaultCategories when categories is empty.
func NewKeywordCategorizer(categories []Category) *KeywordCategorizer {
	if len(categories) == 0 {
		categories = DefaultCategories()
	}
	return &KeywordCategorizer{categories: categories}
}

// ScoreCategories returns only categories with a score above zero.
func (c *KeywordCategorizer) ScoreCategories(analysis models.ContentAnalysis) map[string]float64 {
	scores := make(map[string]float64)
	for _, cs := range c.score(analysis) {
		scores[cs.Category] = cs.Score
	}
	return scores
}

// TopCategories returns at most n categories by score, ties in table order.
func (c *KeywordCategorizer) TopCategories(analysis models.ContentAnalysis, n int) []CategoryScore {
	ranked := c.score(analysis)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func (c *KeywordCategorizer) score(analysis models.ContentAnalysis) []CategoryScore {
	present := make(map[string]struct{}, len(analysis.Keywords))
	for _, k := range analysis.Keywords {
		present[k] = struct{}{}
	}

	var out []CategoryScore
	for _, cat := range c.categories {
		if len(cat.Keywords) == 0 {
			continue
		}
		var matched []string
		for _, k := range cat.Keywords {
			if _, ok := present[k]; ok {
				matched = append(matched, k)
			}
		}
		if len(matched) == 0 {
			continue
		}
		out = append(out, CategoryScore{
			Category: cat.Name,
			Score:    float64(len(matched)) / float64(len(cat.Keywords)),
			Matched:  matched,
		})
	}
	return out
}
