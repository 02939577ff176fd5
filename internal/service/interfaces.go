package service

import (
	"context"

	"github.com/pageza/diet-recipe/backend/internal/types"
)

// RecipeGenerator produces recipe text for a diet type using a caller-supplied
// upstream credential.
type RecipeGenerator interface {
	GenerateRecipe(ctx context.Context, diet types.DietType, apiKey string) (string, error)
}
