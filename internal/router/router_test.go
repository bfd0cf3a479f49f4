package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-chef/backend/config"
	"github.com/pageza/recipe-chef/backend/internal/api"
	"github.com/pageza/recipe-chef/backend/internal/middleware"
	"github.com/pageza/recipe-chef/backend/internal/mocks"
	"github.com/pageza/recipe-chef/backend/internal/types"
)

func newTestRouter(svc *mocks.MockLLMService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Env:            config.Test,
		AllowedOrigins: []string{"http://localhost:5173"},
		LLMModel:       "gemini-2.5-flash",
		GeminiAPIKey:   "test-key",
	}
	return SetupRouter(cfg, api.NewHealthHandler(cfg), api.NewLLMHandler(svc, 0))
}

func TestSetupRouter_Health(t *testing.T) {
	r := newTestRouter(new(mocks.MockLLMService))

	for _, path := range []string{"/health", "/api/health"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), `"status":"healthy"`)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	}
}

func TestSetupRouter_Generate(t *testing.T) {
	svc := new(mocks.MockLLMService)
	svc.On("GenerateRecipe", mock.Anything, "food").Return(types.NewClarificationResult("Please specify a cuisine."), nil)
	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/generate", strings.NewReader(`{"desire":"food"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set(middleware.RequestIDHeader, "trace-me")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "trace-me", w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.JSONEq(t, `{"needsClarification":true,"clarificationMessage":"Please specify a cuisine."}`, w.Body.String())
}

func TestSetupRouter_PanicRecovered(t *testing.T) {
	svc := new(mocks.MockLLMService)
	svc.On("GenerateRecipe", mock.Anything, "boom").Run(func(mock.Arguments) {
		panic("unexpected")
	})
	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/generate", strings.NewReader(`{"desire":"boom"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
}

func TestSetupRouter_GinMode(t *testing.T) {
	defer gin.SetMode(gin.TestMode)

	tests := []struct {
		env  config.Environment
		mode string
	}{
		{config.Production, gin.ReleaseMode},
		{config.Development, gin.DebugMode},
		{config.Test, gin.TestMode},
		{config.CI, gin.TestMode},
	}

	for _, tt := range tests {
		t.Run(string(tt.env), func(t *testing.T) {
			cfg := &config.Config{Env: tt.env, AllowedOrigins: []string{"http://localhost:5173"}}
			SetupRouter(cfg, api.NewHealthHandler(cfg), api.NewLLMHandler(new(mocks.MockLLMService), 0))

			assert.Equal(t, tt.mode, gin.Mode())
		})
	}
}
