package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SuggestionMetadata carries informational scores. Ranking never reads them.
type SuggestionMetadata struct {
	RelevanceScore      float64 `json:"relevanceScore"`
	ContextualFit       float64 `json:"contextualFit"`
	OriginalityScore    float64 `json:"originalityScore"`
	EngagementPotential float64 `json:"engagementPotential"`
}

// Suggestion is one produced recommendation. It is a value type and is never
// modified after NewSuggestion returns it.
type Suggestion struct {
	ID         string             `json:"id"`
	Type       SuggestionType     `json:"type"`
	Content    string             `json:"content"`
	Confidence float64            `json:"confidence"`
	Reasoning  string             `json:"reasoning"`
	Source     SuggestionSource   `json:"source"`
	Metadata   SuggestionMetadata `json:"metadata"`
	CreatedAt  time.Time          `json:"createdAt"`
}

// NewSuggestion builds a suggestion with a fresh ID, clamping every score into [0,1].
func NewSuggestion(t SuggestionType, content string, confidence float64, reasoning string, source SuggestionSource, meta SuggestionMetadata, now time.Time) Suggestion {
	return Suggestion{
		ID:         NewSuggestionID(now),
		Type:       t,
		Content:    content,
		Confidence: Clamp01(confidence),
		Reasoning:  reasoning,
		Source:     source,
		Metadata: SuggestionMetadata{
			RelevanceScore:      Clamp01(meta.RelevanceScore),
			ContextualFit:       Clamp01(meta.ContextualFit),
			OriginalityScore:    Clamp01(meta.OriginalityScore),
			EngagementPotential: Clamp01(meta.EngagementPotential),
		},
		CreatedAt: now,
	}
}

// NewSuggestionID returns "<unix millis>-<8 hex chars>".
func NewSuggestionID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}

// UserBehavior summarizes how the user works in a session.
type UserBehavior struct {
	SessionTime       int      `json:"sessionTime"` // seconds
	ActionsPerSession int      `json:"actionsPerSession"`
	PreferredFeatures []string `json:"preferredFeatures"`
}

// UserContext is the caller-supplied snapshot of user state.
type UserContext struct {
	UserID              string       `json:"userId"`
	RecentIdeas         []string     `json:"recentIdeas"`
	PreferredCategories []string     `json:"preferredCategories"`
	Platforms           []string     `json:"platforms"`
	SuccessfulContent   []string     `json:"successfulContent"`
	UserBehavior        UserBehavior `json:"userBehavior"`
}

// SuggestionRequest is the input to SuggestionService.GetSuggestions.
type SuggestionRequest struct {
	Context        UserContext    `json:"context"`
	CurrentInput   string         `json:"currentInput,omitempty"`
	SuggestionType SuggestionType `json:"suggestionType"`
	Limit          int            `json:"limit,omitempty"`
	MinConfidence  *float64       `json:"minConfidence,omitempty"`
}

// ContentAnalysis is derived per call and never persisted.
type ContentAnalysis struct {
	Sentiment           Sentiment          `json:"sentiment"`
	Keywords            []string           `json:"keywords"`
	Topics              []string           `json:"topics"`
	Readability         float64            `json:"readability"`
	EngagementPotential float64            `json:"engagementPotential"`
	Originality         float64            `json:"originality"`
	PlatformFit         map[string]float64 `json:"platformFit"`
}

// HistoryEntry is one batch of suggestions served to a user.
type HistoryEntry struct {
	UserID      string       `json:"userId"`
	Suggestions []Suggestion `json:"suggestions"`
	RecordedAt  time.Time    `json:"recordedAt"`
}

// Clamp01 bounds v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
