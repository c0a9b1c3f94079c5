package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/robocue/backend/internal/api/handlers"
	"github.com/robocue/backend/internal/config"
	"github.com/robocue/backend/internal/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *sqlx.DB, rdb *redis.Client, cfg *config.Config) {
	router.Use(middleware.CORSMiddleware(cfg))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.HealthCheck)
		v1.POST("/auth/login", handlers.Login(db, cfg))

		// Live shot feed for the dashboard
		v1.GET("/ws", handlers.HandleShotFeed())

		// Operator-only endpoints
		authed := v1.Group("", handlers.RequireOperator(cfg))
		{
			authed.POST("/plan", handlers.PlanShot(db, rdb, cfg))
			authed.GET("/shots", handlers.ListShots(db))
			authed.GET("/shots/latest", handlers.LatestShot(db, rdb))
		}
	}
}
