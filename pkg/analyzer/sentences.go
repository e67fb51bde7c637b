package analyzer

import (
	"regexp"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	log "github.com/sirupsen/logrus"
)

// SentenceSplitter breaks text into sentences.
type SentenceSplitter interface {
	Split(text string) []string
}

// PunktSplitter uses the neurosnap/sentences punkt tokenizer, falling back to
// punctuation splitting if the tokenizer could not be loaded.
type PunktSplitter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewSentenceSplitter never fails; a missing tokenizer only degrades quality.
func NewSentenceSplitter() *PunktSplitter {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		log.Warnf("Failed to load sentence tokenizer, falling back to punctuation splitting: %v", err)
		return &PunktSplitter{}
	}
	return &PunktSplitter{tokenizer: tokenizer}
}

// Split returns trimmed, non-empty sentences.
func (s *PunktSplitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if s.tokenizer == nil {
		return splitOnPunctuation(text)
	}
	var out []string
	for _, sent := range s.tokenizer.Tokenize(text) {
		if t := strings.TrimSpace(sent.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}

var sentenceEnd = regexp.MustCompile(`[.!?]+\s+`)

func splitOnPunctuation(text string) []string {
	var out []string
	for _, part := range sentenceEnd.Split(text, -1) {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
