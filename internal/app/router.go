package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"pedala/internal/handler"
	"pedala/internal/middleware"
	"pedala/internal/service"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	AuthService    *service.AuthService
	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	BikeHandler    *handler.BikeHandler
	RentalHandler  *handler.RentalHandler
	RideHandler    *handler.RideHandler
	RankingHandler *handler.RankingHandler
	ExportHandler  *handler.ExportHandler
	RedisClient    *redis.Client
	NewRelicApp    *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Public routes.
		auth := v1.Group("/auth")
		{
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/login", deps.AuthHandler.Login)
		}

		v1.GET("/ranking", deps.RankingHandler.Get)

		// Authenticated routes.
		authed := v1.Group("")
		authed.Use(middleware.AuthMiddleware(deps.AuthService))
		{
			authed.GET("/profile", deps.ProfileHandler.Get)
			authed.PUT("/profile", deps.ProfileHandler.Update)

			authed.GET("/bikes/nearby", deps.BikeHandler.Nearby)

			authed.POST("/rentals", deps.RentalHandler.Rent)
			authed.GET("/rentals", deps.RentalHandler.History)
			authed.POST("/rentals/:index/return", deps.RentalHandler.Return)

			authed.POST("/rides", deps.RideHandler.Schedule)
			authed.GET("/rides", deps.RideHandler.List)
			authed.DELETE("/rides/:id", deps.RideHandler.Cancel)

			authed.GET("/export/powerbi", deps.ExportHandler.Get)
		}
	}

	return router
}
