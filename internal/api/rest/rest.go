package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/tokentrack/burn-tracker/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth)
	router.GET("/health", handler.HealthCheck)

	api := router.Group("/api")
	{
		// Public dashboard reads
		api.GET("/:chain/total-burnt/:tokenName", handler.GetTotalBurnt)
		api.GET("/:chain/circulating-supply/:tokenName", handler.GetCirculatingSupply)

		// Cron routes (shared-secret auth). Both verbs are accepted because
		// external schedulers differ in what they can send.
		cron := api.Group("/cron", middleware.CronAuth(authCfg))
		{
			cron.POST("/calculate-burns/:tokenName", handler.CalculateBurns)
			cron.GET("/calculate-burns/:tokenName", handler.CalculateBurns)
			cron.GET("/update-burn-data", handler.UpdateBurnData)
			cron.POST("/update-burn-data", handler.UpdateBurnData)
		}

		// Worker routes
		workers := api.Group("/workers")
		{
			workers.GET("/refresh-active", middleware.CronAuth(authCfg), handler.RefreshActive)
			workers.POST("/track-active", handler.TrackActive)
			workers.GET("/track-active", handler.ListActive)
		}

		// Operator cache management (shared-secret auth)
		api.GET("/cache/api", middleware.CronAuth(authCfg), handler.CacheAdmin)
	}
}
