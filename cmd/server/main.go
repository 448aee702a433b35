package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SlpAus/wine-journal-backend/api"
	"github.com/SlpAus/wine-journal-backend/internal/platform/backup"
	"github.com/SlpAus/wine-journal-backend/internal/platform/config"
	"github.com/SlpAus/wine-journal-backend/internal/platform/database"
	"github.com/SlpAus/wine-journal-backend/internal/platform/localstore"
	"github.com/SlpAus/wine-journal-backend/internal/platform/shutdown"
	"github.com/SlpAus/wine-journal-backend/internal/platform/startup"
	"github.com/SlpAus/wine-journal-backend/internal/scan"
	"github.com/SlpAus/wine-journal-backend/internal/wine"
	"github.com/SlpAus/wine-journal-backend/pkg/lifecycle"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("加载配置失败: %v", err))
	}

	// 1. 打开两个独立的本地数据库文件：主记录库与本地槽位库
	mainDB, err := database.Open(cfg.Database.Sqlite.Path)
	if err != nil {
		panic(fmt.Sprintf("无法打开主记录库: %v", err))
	}
	slotDB, err := database.Open(cfg.Database.LocalStore.Path)
	if err != nil {
		panic(fmt.Sprintf("无法打开本地槽位库: %v", err))
	}

	// 2. 显式装配各组件（依赖注入，不使用环境单例）
	store := wine.NewStore(mainDB)
	if err := startup.InitializeApplication(store, slotDB); err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}

	codec := wine.NewCodec(store)
	service := wine.NewService(store)
	scheduler := backup.NewScheduler(codec, slotDB, cfg.Backup.Interval, cfg.Backup.MaxGenerations)

	// 3. 启动后台备份调度器
	gracefulManager := lifecycle.NewManager()
	forcefulManager := lifecycle.NewManager()
	backupHandle, err := gracefulManager.NewServiceHandle("auto-backup")
	if err != nil {
		panic(fmt.Sprintf("注册备份服务失败: %v", err))
	}
	go scheduler.Run(backupHandle)

	// 4. 创建Gin引擎并配置CORS
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 5. 注册API路由
	api.SetupRoutes(r, api.Handlers{
		Wine:   wine.NewHandler(store, service, codec),
		Backup: backup.NewHandler(scheduler),
		Prefs:  localstore.NewHandler(slotDB),
		Scan:   scan.NewHandler(),
	})

	// 6. 启动服务器并等待停机信号
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}
	go func() {
		fmt.Printf("服务器已准备就绪，开始监听 %s\n", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic("Failed to start server: " + err.Error())
		}
	}()

	coordinator := shutdown.NewCoordinator(gracefulManager, forcefulManager)
	coordinator.ListenForSignalsAndShutdown(server, scheduler)
}
