package categorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideaforge/internal/models"
	"ideaforge/pkg/analyzer"
)

func TestKeywordCategorizer_ScoreCategories(t *testing.T) {
	c := NewKeywordCategorizer(nil)
	analysis := analyzer.New().Analyze("Tutorial de programação Python para iniciantes")

	scores := c.ScoreCategories(analysis)

	require.Len(t, scores, 2)
	assert.InDelta(t, 0.4, scores["tecnologia"], 1e-9)
	assert.InDelta(t, 0.4, scores["educação"], 1e-9)
}

func TestKeywordCategorizer_TopCategoriesTiesKeepTableOrder(t *testing.T) {
	c := NewKeywordCategorizer(nil)
	analysis := analyzer.New().Analyze("Tutorial de programação Python para iniciantes")

	top := c.TopCategories(analysis, 3)

	require.Len(t, top, 2)
	assert.Equal(t, "tecnologia", top[0].Category)
	assert.Equal(t, []string{"programação", "python"}, top[0].Matched)
	assert.Equal(t, "educação", top[1].Category)
}

func TestKeywordCategorizer_TopCategoriesTruncates(t *testing.T) {
	c := NewKeywordCategorizer([]Category{
		{Name: "a", Keywords: []string{"alfa"}},
		{Name: "b", Keywords: []string{"beta", "gama"}},
		{Name: "c", Keywords: []string{"delta", "zeta", "teta"}},
		{Name: "d", Keywords: []string{"alfa", "beta", "delta", "omega"}},
	})
	analysis := models.ContentAnalysis{Keywords: []string{"alfa", "beta", "delta"}}

	top := c.TopCategories(analysis, 3)

	require.Len(t, top, 3)
	assert.Equal(t, "a", top[0].Category)
	assert.Equal(t, "d", top[1].Category)
	assert.Equal(t, "b", top[2].Category)
}

func TestKeywordCategorizer_NoMatches(t *testing.T) {
	c := NewKeywordCategorizer(nil)
	assert.Empty(t, c.ScoreCategories(models.ContentAnalysis{}))
	assert.Empty(t, c.TopCategories(models.ContentAnalysis{Keywords: []string{"nada"}}, 3))
}
