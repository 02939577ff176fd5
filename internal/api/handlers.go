package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/diet-recipe/backend/internal/service"
	"github.com/pageza/diet-recipe/backend/internal/types"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{Status: "healthy"})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router gin.IRoutes, generator service.RecipeGenerator) {
	router.GET("/", Index)
	router.GET("/health", HealthCheck)

	NewRecipeHandler(generator).RegisterRoutes(router)
}
