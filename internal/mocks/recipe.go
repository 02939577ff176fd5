package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/diet-recipe/backend/internal/types"
)

// MockRecipeGenerator is a mock implementation of service.RecipeGenerator
type MockRecipeGenerator struct {
	mock.Mock
}

// GenerateRecipe mocks the GenerateRecipe method
func (m *MockRecipeGenerator) GenerateRecipe(ctx context.Context, diet types.DietType, apiKey string) (string, error) {
	args := m.Called(ctx, diet, apiKey)
	return args.String(0), args.Error(1)
}
