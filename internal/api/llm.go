package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-chef/backend/internal/middleware"
	"github.com/pageza/recipe-chef/backend/internal/service"
	"github.com/pageza/recipe-chef/backend/internal/types"
)

// LLMHandler handles recipe generation requests
type LLMHandler struct {
	llmService service.LLMServiceInterface
	timeout    time.Duration
}

// NewLLMHandler creates a new LLMHandler. A positive timeout bounds each
// generation on top of the request context.
func NewLLMHandler(llmService service.LLMServiceInterface, timeout time.Duration) *LLMHandler {
	return &LLMHandler{
		llmService: llmService,
		timeout:    timeout,
	}
}

// RegisterRoutes registers the recipe generation routes
func (h *LLMHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.POST("/generate", h.GenerateRecipe)
	}
}

// GenerateRecipe handles POST /recipes/generate
func (h *LLMHandler) GenerateRecipe(c *gin.Context) {
	var req types.GenerateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: err.Error(), Kind: "bad_request"})
		return
	}

	// The desire goes to the model untouched; trimming only decides blankness.
	if strings.TrimSpace(req.Desire) == "" {
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: "desire must not be blank", Kind: "bad_request"})
		return
	}

	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	result, err := h.llmService.GenerateRecipe(ctx, req.Desire)
	if err != nil {
		status := statusForError(err)
		slog.WarnContext(ctx, "recipe generation failed", "status", status, "kind", service.ErrorKind(err), "error", err)
		c.JSON(status, middleware.ErrorResponse{Error: err.Error(), Kind: service.ErrorKind(err)})
		return
	}

	c.JSON(http.StatusOK, result)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrConfiguration):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, service.ErrUpstream),
		errors.Is(err, service.ErrDecode),
		errors.Is(err, service.ErrSchema):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
