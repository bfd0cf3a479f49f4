package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-chef/backend/config"
	"github.com/pageza/recipe-chef/backend/internal/api"
	"github.com/pageza/recipe-chef/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(cfg *config.Config, healthHandler *api.HealthHandler, llmHandler *api.LLMHandler) *gin.Engine {
	switch {
	case cfg.IsProduction():
		gin.SetMode(gin.ReleaseMode)
	case cfg.IsDevelopment():
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.TestMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
		middleware.CORS(cfg.AllowedOrigins),
	)

	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/api/health", healthHandler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	llmHandler.RegisterRoutes(v1)

	return router
}
