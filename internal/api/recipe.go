package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pageza/diet-recipe/backend/internal/middleware"
	"github.com/pageza/diet-recipe/backend/internal/service"
	"github.com/pageza/diet-recipe/backend/internal/types"
)

const redacted = "[REDACTED]"

// Keys shorter than this are left in the error text.
const minRedactedKeyLen = 8

func redactCredential(msg, apiKey string) string {
	if len(apiKey) < minRedactedKeyLen {
		return msg
	}
	return strings.ReplaceAll(msg, apiKey, redacted)
}

// RecipeHandler handles recipe generation requests
type RecipeHandler struct {
	generator service.RecipeGenerator
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(generator service.RecipeGenerator) *RecipeHandler {
	return &RecipeHandler{generator: generator}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router gin.IRoutes) {
	router.POST("/api/recipe", h.GenerateRecipe)
}

// GenerateRecipe validates the request and relays one upstream completion.
// Validation failures never reach the generator.
func (h *RecipeHandler) GenerateRecipe(c *gin.Context) {
	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithDetail(c, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return
	}

	diet, err := types.ParseDietType(req.DietType)
	if err != nil {
		middleware.AbortWithDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if req.APIKey == "" {
		middleware.AbortWithDetail(c, http.StatusBadRequest, "OpenAI API key is required")
		return
	}

	recipe, err := h.generator.GenerateRecipe(c.Request.Context(), diet, req.APIKey)
	if err != nil {
		msg := redactCredential(err.Error(), req.APIKey)
		slog.Error("recipe generation failed",
			"requestID", middleware.GetRequestID(c),
			"dietType", diet,
			"error", msg,
		)
		middleware.AbortWithDetail(c, http.StatusInternalServerError, "Error generating recipe: "+msg)
		return
	}

	c.JSON(http.StatusOK, types.RecipeResponse{
		Recipe:   recipe,
		DietType: diet,
	})
}
