package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-chef/backend/internal/types"
)

// MockLLMService is a testify mock of service.LLMServiceInterface.
type MockLLMService struct {
	mock.Mock
}

func (m *MockLLMService) GenerateRecipe(ctx context.Context, desire string) (*types.RecipeResult, error) {
	args := m.Called(ctx, desire)
	result, _ := args.Get(0).(*types.RecipeResult)
	return result, args.Error(1)
}
