package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pageza/diet-recipe/backend/config"
	"github.com/pageza/diet-recipe/backend/internal/api"
	"github.com/pageza/diet-recipe/backend/internal/middleware"
	"github.com/pageza/diet-recipe/backend/internal/service"
)

// SetupRouter configures the application routes
func SetupRouter(cfg *config.Config, generator service.RecipeGenerator) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Metrics first so recovered panics and CORS rejections are counted.
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics())
	}
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	router.NoRoute(middleware.NotFound)
	router.NoMethod(middleware.MethodNotAllowed)

	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Page, health and recipe routes
	api.RegisterRoutes(router, generator)

	return router
}
