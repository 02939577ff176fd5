package service

import (
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/pageza/diet-recipe/backend/internal/types"
)

const systemPrompt = "You are a helpful chef assistant that provides simple, practical recipes."

const recipePromptTemplate = `Generate a simple and delicious %s dinner recipe.
Include:
- Recipe name
- Cooking time
- Ingredients list
- Step-by-step instructions

Keep it simple and practical for home cooking.`

// RecipePrompt returns the user instruction sent for the given diet type.
func RecipePrompt(diet types.DietType) string {
	return fmt.Sprintf(recipePromptTemplate, diet)
}

func recipeMessages(diet types.DietType) []openai.ChatCompletionMessage {
	return []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: RecipePrompt(diet),
		},
	}
}
