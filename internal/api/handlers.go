package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-chef/backend/config"
)

// HealthHandler reports liveness and whether generation is usable.
type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"message":       "Recipe Chef API is running",
		"model":         h.cfg.LLMModel,
		"apiConfigured": h.cfg.HasAPIKey(),
	})
}
