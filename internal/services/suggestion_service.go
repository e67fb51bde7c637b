package services

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"ideaforge/internal/models"
	"ideaforge/internal/ranking"
	"ideaforge/internal/store"
	"ideaforge/internal/strategies"
	"ideaforge/pkg/analyzer"
)

const (
	DefaultLimit         = 5
	DefaultMinConfidence = 0.7
)

type SuggestionServiceDeps struct {
	Profiles store.ProfileStore
	History  store.HistoryWriter
	// HistoryReader backs History listing; nil when History is write-only.
	HistoryReader store.HistoryStore
	Registry      *strategies.Registry
	Analyzer      analyzer.ContentAnalyzer

	DefaultLimit int
	// DefaultMinConfidence applies when a request sets none; nil means 0.7.
	DefaultMinConfidence *float64
	Logger               log.FieldLogger
}

// SuggestionService is the engine's entry point. It is safe for concurrent use.
type SuggestionService struct {
	profiles      store.ProfileStore
	history       store.HistoryWriter
	historyReader store.HistoryStore
	registry      *strategies.Registry
	analyzer      analyzer.ContentAnalyzer
	limit         int
	minConfidence float64
	log           log.FieldLogger
}

func NewSuggestionService(deps SuggestionServiceDeps) (*SuggestionService, error) {
	if deps.Profiles == nil {
		return nil, errors.New("profile store is required")
	}
	if deps.History == nil {
		return nil, errors.New("history writer is required")
	}
	if deps.Analyzer == nil {
		deps.Analyzer = analyzer.New()
	}
	if deps.Registry == nil {
		deps.Registry = strategies.DefaultRegistry(strategies.Deps{Analyzer: deps.Analyzer})
	}
	if deps.DefaultLimit <= 0 {
		deps.DefaultLimit = DefaultLimit
	}
	minConfidence := DefaultMinConfidence
	if deps.DefaultMinConfidence != nil {
		minConfidence = models.Clamp01(*deps.DefaultMinConfidence)
	}
	if deps.Logger == nil {
		deps.Logger = log.StandardLogger()
	}
	return &SuggestionService{
		profiles:      deps.Profiles,
		history:       deps.History,
		historyReader: deps.HistoryReader,
		registry:      deps.Registry,
		analyzer:      deps.Analyzer,
		limit:         deps.DefaultLimit,
		minConfidence: minConfidence,
		log:           deps.Logger,
	}, nil
}

// GetSuggestions stores the request context as the user's profile, runs the
// generator for the requested type, ranks the candidates and records what was
// served. Storage failures are logged and never returned; an unknown
// suggestion type is returned as models.ErrUnknownSuggestionType before
// anything is stored.
func (s *SuggestionService) GetSuggestions(ctx context.Context, req models.SuggestionRequest) ([]models.Suggestion, error) {
	gen, err := s.registry.Lookup(req.SuggestionType)
	if err != nil {
		return nil, err
	}
	limit, minConfidence := s.effectiveBounds(req)
	uctx := req.Context
	logger := s.log.WithFields(log.Fields{"user_id": uctx.UserID, "type": req.SuggestionType})

	if uctx.UserID != "" {
		if err := s.profiles.Put(ctx, uctx); err != nil {
			logger.WithError(err).WithField("op", "profile.put").Warn("Failed to persist user profile")
		}
	}

	candidates := gen.Generate(uctx, req.CurrentInput)
	ranked := ranking.Rank(candidates, minConfidence, limit)
	logger.WithFields(log.Fields{"candidates": len(candidates), "served": len(ranked)}).Debug("Generated suggestions")

	if uctx.UserID != "" && len(ranked) > 0 {
		if err := s.history.Append(ctx, uctx.UserID, ranked); err != nil {
			logger.WithError(err).WithField("op", "history.append").Warn("Failed to record suggestion history")
		}
	}
	return ranked, nil
}

func (s *SuggestionService) effectiveBounds(req models.SuggestionRequest) (int, float64) {
	limit := req.Limit
	if limit <= 0 {
		limit = s.limit
	}
	minConfidence := s.minConfidence
	if req.MinConfidence != nil {
		minConfidence = models.Clamp01(*req.MinConfidence)
	}
	return limit, minConfidence
}

// Analyze runs the content analyzer on text.
func (s *SuggestionService) Analyze(text string) models.ContentAnalysis {
	return s.analyzer.Analyze(text)
}

// Profile returns the stored context for userID or store.ErrNotFound.
func (s *SuggestionService) Profile(ctx context.Context, userID string) (models.UserContext, error) {
	if userID == "" {
		return models.UserContext{}, fmt.Errorf("%w: user id is required", models.ErrValidation)
	}
	return s.profiles.Get(ctx, userID)
}

// History lists what was served to userID, oldest first.
func (s *SuggestionService) History(ctx context.Context, userID string) ([]models.HistoryEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", models.ErrValidation)
	}
	if s.historyReader == nil {
		return nil, errors.New("history is not readable with the configured recorder")
	}
	return s.historyReader.List(ctx, userID)
}
