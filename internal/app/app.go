package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mbo_backend/internal/config"
	"mbo_backend/internal/controller"
	"mbo_backend/internal/repository"
	"mbo_backend/internal/service"
	"mbo_backend/pkg/docstore"
	"mbo_backend/pkg/logger"
	"mbo_backend/pkg/monitoring"
	"mbo_backend/pkg/security"
	"mbo_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config     *config.Config
	Router     *gin.Engine
	Store      *docstore.Store
	Repository *repository.MBORepository
	services   *services
}

type services struct {
	auth        *service.AuthService
	period      *service.PeriodService
	goal        *service.GoalService
	achievement *service.AchievementService
	statistics  *service.StatisticsService
	export      *service.ExportService
	storage     *service.StorageService
	backup      *service.BackupService
	report      *service.ReportService
	settings    *service.SettingsService
}

type controllers struct {
	auth        *controller.AuthController
	period      *controller.PeriodController
	goal        *controller.GoalController
	achievement *controller.AchievementController
	statistics  *controller.StatisticsController
	export      *controller.ExportController
	backup      *controller.BackupController
	report      *controller.ReportController
	settings    *controller.SettingsController
	health      *controller.HealthController
}

func (a *App) initServices(repo *repository.MBORepository, cfg *config.Config) *services {
	s := &services{}

	s.auth = service.NewAuthService(cfg)
	s.period = service.NewPeriodService(repo)
	s.goal = service.NewGoalService(repo)
	s.achievement = service.NewAchievementService(repo)
	s.statistics = service.NewStatisticsService(repo)
	s.export = service.NewExportService(repo)
	s.storage = service.NewStorageService(cfg)
	s.backup = service.NewBackupService(repo, s.storage)
	s.report = service.NewReportService(repo, cfg.AI)
	s.settings = service.NewSettingsService(repo)

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		period:      controller.NewPeriodController(s.period),
		goal:        controller.NewGoalController(s.goal),
		achievement: controller.NewAchievementController(s.achievement),
		statistics:  controller.NewStatisticsController(s.statistics),
		export:      controller.NewExportController(s.export),
		backup:      controller.NewBackupController(s.backup),
		report:      controller.NewReportController(s.report),
		settings:    controller.NewSettingsController(s.settings),
		health:      controller.NewHealthController(a.Store),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// ReloadConfig 配置热更新回调，把AI设置喂给报告服务
func (a *App) ReloadConfig(cfg *config.Config) {
	a.services.report.SetAIConfig(cfg.AI)
	logger.Log.Info("Config reloaded")
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)

	logger.Log.Info("Logger initialized successfully")

	store := docstore.New(cfg.Data.File)
	repo := repository.NewMBORepository(store)

	app := &App{
		Config:     cfg,
		Store:      store,
		Repository: repo,
	}

	services := app.initServices(repo, cfg)
	app.services = services
	controllers := app.initControllers(services)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		_, err := tracing.InitTracer(cfg.Tracing)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
