package models

import (
	"fmt"
	"strings"
)

/*
Suggestion type, source and sentiment constants for use throughout the codebase.
Centralizing these avoids magic strings in the generators and the API layer.
*/

// SuggestionType selects exactly one suggestion strategy.
type SuggestionType string

const (
	SuggestionTypeContent     SuggestionType = "content"
	SuggestionTypeTitle       SuggestionType = "title"
	SuggestionTypeCategory    SuggestionType = "category"
	SuggestionTypeImprovement SuggestionType = "improvement"
	SuggestionTypeNextAction  SuggestionType = "next_action"
)

// SuggestionTypes lists every known type in a stable order.
var SuggestionTypes = []SuggestionType{
	SuggestionTypeContent,
	SuggestionTypeTitle,
	SuggestionTypeCategory,
	SuggestionTypeImprovement,
	SuggestionTypeNextAction,
}

// Valid reports whether t is one of the closed set of suggestion types.
func (t SuggestionType) Valid() bool {
	for _, known := range SuggestionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseSuggestionType normalizes s and returns ErrUnknownSuggestionType for
// anything outside the closed set.
func ParseSuggestionType(s string) (SuggestionType, error) {
	t := SuggestionType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSuggestionType, s)
	}
	return t, nil
}

// SuggestionSource tags where a suggestion came from.
type SuggestionSource string

const (
	SourcePatternAnalysis SuggestionSource = "pattern_analysis"
	SourceUserHistory     SuggestionSource = "user_history"
	SourceTrending        SuggestionSource = "trending"
	SourceAIModel         SuggestionSource = "ai_model"
)

// Sentiment is the coarse polarity of a piece of text.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)
