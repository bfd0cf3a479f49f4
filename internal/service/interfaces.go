package service

import (
	"context"

	"github.com/pageza/recipe-chef/backend/internal/types"
)

// LLMServiceInterface is the seam the HTTP handlers and the CLI depend on.
type LLMServiceInterface interface {
	GenerateRecipe(ctx context.Context, desire string) (*types.RecipeResult, error)
}

var _ LLMServiceInterface = (*LLMService)(nil)
