package api

import (
	"github.com/SlpAus/wine-journal-backend/internal/platform/backup"
	"github.com/SlpAus/wine-journal-backend/internal/platform/localstore"
	"github.com/SlpAus/wine-journal-backend/internal/scan"
	"github.com/SlpAus/wine-journal-backend/internal/wine"
	"github.com/gin-gonic/gin"
)

// Handlers 汇集各模块的控制器，由main在启动时装配。
type Handlers struct {
	Wine   *wine.Handler
	Backup *backup.Handler
	Prefs  *localstore.Handler
	Scan   *scan.Handler
}

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine, h Handlers) {
	api := router.Group("/api")
	{
		// 记录相关的路由组 /api/wines
		wineRoutes := api.Group("/wines")
		{
			wineRoutes.GET("", h.Wine.ListWines)
			wineRoutes.POST("", h.Wine.CreateWine)
			wineRoutes.DELETE("", h.Wine.ClearWines)
			wineRoutes.GET("/:id", h.Wine.GetWine)
			wineRoutes.PUT("/:id", h.Wine.UpdateWine)
			wineRoutes.DELETE("/:id", h.Wine.DeleteWine)
		}

		// 统计与数据迁移
		api.GET("/stats", h.Wine.GetStatistics)
		api.GET("/export", h.Wine.ExportData)
		api.POST("/import", h.Wine.ImportData)

		// 备份世代相关的路由 /api/backups
		backupRoutes := api.Group("/backups")
		{
			backupRoutes.GET("", h.Backup.ListBackups)
			backupRoutes.POST("/:index/restore", h.Backup.RestoreBackup)
		}

		// 偏好开关 /api/prefs
		prefRoutes := api.Group("/prefs")
		{
			prefRoutes.GET("/theme", h.Prefs.GetTheme)
			prefRoutes.PUT("/theme", h.Prefs.PutTheme)
			prefRoutes.GET("/tutorial", h.Prefs.GetTutorial)
			prefRoutes.PUT("/tutorial", h.Prefs.PutTutorial)
		}

		// 标签扫描回填
		api.POST("/scan/autofill", h.Scan.Autofill)
	}
}
