package apihandlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"ideaforge/internal/app"
	"ideaforge/internal/models"
	"ideaforge/internal/store"
	"ideaforge/internal/util"
)

// SuggestionAPI is the part of services.SuggestionService served over HTTP.
type SuggestionAPI interface {
	GetSuggestions(ctx context.Context, req models.SuggestionRequest) ([]models.Suggestion, error)
	Analyze(text string) models.ContentAnalysis
	Profile(ctx context.Context, userID string) (models.UserContext, error)
	History(ctx context.Context, userID string) ([]models.HistoryEntry, error)
}

type APIHandler struct {
	Service SuggestionAPI
	// Ping reports backend health; nil means always healthy.
	Ping func(ctx context.Context) error
}

func NewAPIHandler(a *app.App) *APIHandler {
	return &APIHandler{Service: a.SuggestionService, Ping: a.KV.Ping}
}

// RegisterRoutes mounts every endpoint on router.
func (h *APIHandler) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	{
		v1.POST("/suggestions", h.SuggestionsHandler)
		v1.POST("/analyze", h.AnalyzeHandler)

		users := v1.Group("/users/:id")
		{
			users.GET("/profile", h.ProfileHandler)
			users.GET("/history", h.HistoryHandler)
		}
	}
	router.GET("/health", h.HealthHandler)
}

type suggestionsRequest struct {
	Context        models.UserContext `json:"context"`
	CurrentInput   string             `json:"currentInput"`
	SuggestionType string             `json:"suggestionType" binding:"required"`
	Limit          int                `json:"limit"`
	MinConfidence  *float64           `json:"minConfidence"`
}

func (h *APIHandler) SuggestionsHandler(c *gin.Context) {
	var req suggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	kind, err := models.ParseSuggestionType(req.SuggestionType)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	if req.Limit < 0 {
		BadRequest(c, "limit must not be negative")
		return
	}
	if req.MinConfidence != nil && (*req.MinConfidence < 0 || *req.MinConfidence > 1) {
		BadRequest(c, "minConfidence must be within [0,1]")
		return
	}

	suggestions, err := h.Service.GetSuggestions(c.Request.Context(), models.SuggestionRequest{
		Context:        req.Context,
		CurrentInput:   util.CleanText([]byte(req.CurrentInput), "request"),
		SuggestionType: kind,
		Limit:          req.Limit,
		MinConfidence:  req.MinConfidence,
	})
	if err != nil {
		if errors.Is(err, models.ErrUnknownSuggestionType) {
			BadRequest(c, err.Error())
			return
		}
		Internal(c, fmt.Sprintf("SuggestionsHandler: %v", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": suggestions})
}

type analyzeRequest struct {
	Text string `json:"text"`
}

func (h *APIHandler) AnalyzeHandler(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.Service.Analyze(util.CleanText([]byte(req.Text), "request"))})
}

func (h *APIHandler) ProfileHandler(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("id"))
	profile, err := h.Service.Profile(c.Request.Context(), userID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		NotFound(c, fmt.Sprintf("no profile for user %q", userID))
	case errors.Is(err, models.ErrValidation):
		BadRequest(c, err.Error())
	case err != nil:
		Internal(c, fmt.Sprintf("ProfileHandler: %v", err))
	default:
		c.JSON(http.StatusOK, gin.H{"data": profile})
	}
}

func (h *APIHandler) HistoryHandler(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("id"))
	entries, err := h.Service.History(c.Request.Context(), userID)
	switch {
	case errors.Is(err, models.ErrValidation):
		BadRequest(c, err.Error())
	case err != nil:
		Internal(c, fmt.Sprintf("HistoryHandler: %v", err))
	default:
		if entries == nil {
			entries = []models.HistoryEntry{}
		}
		c.JSON(http.StatusOK, gin.H{"data": entries})
	}
}

func (h *APIHandler) HealthHandler(c *gin.Context) {
	if h.Ping != nil {
		if err := h.Ping(c.Request.Context()); err != nil {
			log.WithError(err).Warn("Health check failed")
			JSONError(c, http.StatusServiceUnavailable, "unavailable", "storage backend unreachable")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
