package app

import (
	"mbo_backend/docs"
	"mbo_backend/internal/config"
	"mbo_backend/internal/middleware"
	"mbo_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/login", c.auth.Login)
	}

	// 需要授权的路由（未配置口令时认证中间件直接放行）
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		// 期间
		authGroup.POST("/periods", c.period.CreatePeriod)
		authGroup.GET("/periods", c.period.ListPeriods)
		authGroup.PUT("/periods/current", c.period.SetCurrentPeriod)
		authGroup.GET("/periods/current", c.period.GetCurrentPeriod)

		// 目标与达成项目
		authGroup.POST("/goals", c.goal.AddGoal)
		authGroup.GET("/goals", c.goal.ListGoals)
		authGroup.DELETE("/goals/:goalId", c.goal.DeleteGoal)
		authGroup.POST("/goals/:goalId/items", c.achievement.AddItem)
		authGroup.GET("/goals/:goalId/items", c.achievement.ListItems)
		authGroup.PUT("/goals/:goalId/items/:itemId", c.achievement.UpdateItem)
		authGroup.DELETE("/goals/:goalId/items/:itemId", c.achievement.DeleteItem)

		// 统计
		authGroup.GET("/statistics", c.statistics.GetStatistics)
		authGroup.GET("/achievement-rate", c.statistics.GetAchievementRate)

		// 导出
		authGroup.GET("/export/csv/summary", c.export.ExportSummary)
		authGroup.GET("/export/csv/detailed", c.export.ExportDetailed)
		authGroup.GET("/export/periods", c.export.ListExportablePeriods)

		// 备份
		authGroup.GET("/backup/export", c.backup.Export)
		authGroup.POST("/backup/import", c.backup.Import)
		authGroup.POST("/backup/upload", c.backup.Upload)

		// 报告生成
		authGroup.POST("/report", c.report.GenerateReport)
		authGroup.POST("/report/goal-suggestions", c.report.GoalSuggestions)
		authGroup.POST("/report/analyze", c.report.Analyze)

		// 设置
		authGroup.GET("/settings/api-key", c.settings.GetAPIKey)
		authGroup.PUT("/settings/api-key", c.settings.SetAPIKey)
	}
}
