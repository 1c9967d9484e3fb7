package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/recipedex/backend/internal/api"
	"github.com/recipedex/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	recipeHandler *api.RecipeHandler,
	resolver middleware.TokenResolver,
	db *gorm.DB,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	router.GET("/health", api.HealthCheck(db))

	// Anonymous auth routes
	authHandler.RegisterRoutes(router.Group(""))

	// Everything under /recipes requires a valid token
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(resolver))
	recipeHandler.RegisterRoutes(protected)

	return router
}
