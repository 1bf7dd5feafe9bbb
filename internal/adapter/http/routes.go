package http

import (
	"taskstats/internal/adapter/http/handlers"
	"taskstats/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, statsHandler *handlers.StatsHandler) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
	}

	stats := api.Group("/stats")
	stats.Use(middleware.UserMiddleware())
	{
		stats.GET("/tasks", statsHandler.GetTaskStats)
		stats.GET("/quadrants", statsHandler.GetQuadrantStats)
		stats.GET("/categories", statsHandler.GetCategoryStats)
		stats.GET("/projects", statsHandler.GetProjectStats)
		stats.GET("/projects/tasks", statsHandler.GetProjectTaskStats)
		stats.GET("/timeseries", statsHandler.GetTimeSeries)
		stats.GET("/heatmap", statsHandler.GetYearHeatmap)
		stats.GET("/heatmap/export", statsHandler.ExportYearHeatmap)
		stats.GET("/durations", statsHandler.GetDurationRanking)
		stats.GET("/durations/export", statsHandler.ExportDurationRanking)
	}
}
