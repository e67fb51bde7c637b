package apihandlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideaforge/internal/models"
	"ideaforge/internal/services"
	"ideaforge/internal/store"
	"ideaforge/internal/store/memory"
)

func newRouter(t *testing.T, ping func(context.Context) error) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	kv := memory.New()
	hist := store.NewKVHistoryStore(kv, 0, nil)
	svc, err := services.NewSuggestionService(services.SuggestionServiceDeps{
		Profiles:      store.NewKVProfileStore(kv),
		History:       hist,
		HistoryReader: hist,
	})
	require.NoError(t, err)

	router := gin.New()
	(&APIHandler{Service: svc, Ping: ping}).RegisterRoutes(router)
	return router
}

func do(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSuggestionsHandler_NewUser(t *testing.T) {
	router := newRouter(t, nil)

	w := do(t, router, http.MethodPost, "/api/v1/suggestions", gin.H{
		"context":        gin.H{"userId": "u1"},
		"suggestionType": "next_action",
		"limit":          5,
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []models.Suggestion `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 0.9, resp.Data[0].Confidence)

	w = do(t, router, http.MethodGet, "/api/v1/users/u1/profile", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":"u1"`)

	w = do(t, router, http.MethodGet, "/api/v1/users/u1/history", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), resp.Data[0].ID)
}

func TestSuggestionsHandler_BadRequests(t *testing.T) {
	router := newRouter(t, nil)

	tests := []struct {
		name string
		body any
	}{
		{"unknown type", gin.H{"suggestionType": "hashtags"}},
		{"missing type", gin.H{"context": gin.H{"userId": "u1"}}},
		{"negative limit", gin.H{"suggestionType": "title", "limit": -1}},
		{"confidence out of range", gin.H{"suggestionType": "title", "minConfidence": 1.5}},
		{"malformed", "not an object"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, http.MethodPost, "/api/v1/suggestions", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"code":"bad_request"`)
		})
	}
}

func TestAnalyzeHandler(t *testing.T) {
	router := newRouter(t, nil)

	w := do(t, router, http.MethodPost, "/api/v1/analyze", gin.H{"text": "Tutorial de programação Python para iniciantes"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data models.ContentAnalysis `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Data.Topics, "tecnologia")
}

func TestProfileHandler_Unknown(t *testing.T) {
	w := do(t, newRouter(t, nil), http.MethodGet, "/api/v1/users/ghost/profile", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHistoryHandler_EmptyIsList(t *testing.T) {
	w := do(t, newRouter(t, nil), http.MethodGet, "/api/v1/users/ghost/history", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[]}`, w.Body.String())
}

func TestHealthHandler(t *testing.T) {
	w := do(t, newRouter(t, nil), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	down := func(context.Context) error { return errors.New("refused") }
	w = do(t, newRouter(t, down), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
