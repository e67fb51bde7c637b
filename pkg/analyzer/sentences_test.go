package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPunktSplitter_Split(t *testing.T) {
	s := NewSentenceSplitter()

	got := s.Split("Aprenda Python hoje. Depois pratique todos os dias!")

	require.Len(t, got, 2)
	assert.Equal(t, "Aprenda Python hoje.", got[0])
}

func TestPunktSplitter_Empty(t *testing.T) {
	assert.Empty(t, NewSentenceSplitter().Split("   "))
}

func TestSplitOnPunctuation(t *testing.T) {
	got := splitOnPunctuation("Primeira frase. Segunda frase?  Terceira")
	assert.Equal(t, []string{"Primeira frase", "Segunda frase", "Terceira"}, got)
}
