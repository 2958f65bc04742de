/*
 * @Description: 应用装配与生命周期管理
 * @Author: 安知鱼
 * @Date: 2026-08-17 10:35:28
 * @LastEditTime: 2026-08-31 15:02:41
 * @LastEditors: 安知鱼
 */
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mundo-tango/mundo-tango-app/internal/app/middleware"
	"github.com/mundo-tango/mundo-tango-app/internal/app/task"
	"github.com/mundo-tango/mundo-tango-app/internal/infra/persistence/database"
	"github.com/mundo-tango/mundo-tango-app/internal/infra/persistence/memory"
	"github.com/mundo-tango/mundo-tango-app/internal/infra/router"
	"github.com/mundo-tango/mundo-tango-app/internal/pkg/event"
	"github.com/mundo-tango/mundo-tango-app/pkg/config"
	content_handler "github.com/mundo-tango/mundo-tango-app/pkg/handler/content"
	moderation_handler "github.com/mundo-tango/mundo-tango-app/pkg/handler/moderation"
	notification_handler "github.com/mundo-tango/mundo-tango-app/pkg/handler/notification"
	"github.com/mundo-tango/mundo-tango-app/pkg/idgen"
	content_service "github.com/mundo-tango/mundo-tango-app/pkg/service/content"
	"github.com/mundo-tango/mundo-tango-app/pkg/service/moderation"
	notification_service "github.com/mundo-tango/mundo-tango-app/pkg/service/notification"
	parser_service "github.com/mundo-tango/mundo-tango-app/pkg/service/parser"
	"github.com/mundo-tango/mundo-tango-app/pkg/service/utility"

	"github.com/redis/go-redis/v9"
)

// App 结构体，用于封装应用的所有核心组件
type App struct {
	cfg         *config.Config
	engine      *gin.Engine
	scheduler   *task.Scheduler
	bus         *event.EventBus
	redisClient *redis.Client

	contentService      *content_service.Service
	notificationService *notification_service.Service
	cacheService        utility.CacheService
}

// NewApp 是应用的构造函数，它执行所有的初始化和依赖注入工作
func NewApp() (*App, error) {
	ctx := context.Background()

	// 1. 配置与基础设施
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}

	if err := idgen.InitSqidsEncoder(); err != nil {
		return nil, fmt.Errorf("初始化ID生成器失败: %w", err)
	}

	if !cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.ReleaseMode)
	}

	redisClient := database.NewRedisClient(ctx, cfg)
	cacheSvc := utility.NewCacheServiceWithFallback(redisClient)

	// 2. 事件总线与存储（显式构造，不使用包级单例）
	bus := event.NewEventBus()
	contentRepo := memory.NewContentRepo()
	versionRepo := memory.NewContentVersionRepo()
	eventRepo := memory.NewModerationEventRepo()

	// 3. 审核流水线
	registry := moderation.NewDefaultRegistry()
	scorer := moderation.NewScorer(
		registry,
		eventRepo,
		bus,
		cfg.GetFloat64(config.KeyModerationReviewScore),
		cfg.GetFloat64(config.KeyModerationAIConfidence),
	)
	drainDelay := time.Duration(cfg.GetInt(config.KeyModerationQueueDelayMs)) * time.Millisecond
	contentSvc := content_service.NewService(
		contentRepo, versionRepo, eventRepo,
		registry, scorer, bus, drainDelay,
	)

	// 4. 周边服务
	parserSvc := parser_service.NewService(cacheSvc)
	notificationSvc := notification_service.NewService()
	notificationSvc.RegisterListeners(bus)

	// 5. HTTP 层
	mw := middleware.NewMiddleware([]byte(cfg.GetString(config.KeyJWTSecret)))
	r := router.NewRouter(
		content_handler.NewHandler(contentSvc, parserSvc),
		moderation_handler.NewHandler(contentSvc),
		notification_handler.NewHandler(notificationSvc),
		mw,
	)

	engine := gin.Default()
	r.Setup(engine)

	// 6. 后台任务
	retention := time.Duration(cfg.GetInt(config.KeyModerationRetentionDays)) * 24 * time.Hour
	scheduler := task.NewScheduler(contentSvc, retention, cfg.GetInt(config.KeyModerationQueueWarnSize))

	return &App{
		cfg:                 cfg,
		engine:              engine,
		scheduler:           scheduler,
		bus:                 bus,
		redisClient:         redisClient,
		contentService:      contentSvc,
		notificationService: notificationSvc,
		cacheService:        cacheSvc,
	}, nil
}

// Engine 返回 gin 引擎（测试使用）。
func (a *App) Engine() *gin.Engine {
	return a.engine
}

// ContentService 返回内容服务。
func (a *App) ContentService() *content_service.Service {
	return a.contentService
}

// EventBus 返回事件总线。
func (a *App) EventBus() *event.EventBus {
	return a.bus
}

// CacheService 返回缓存服务。
func (a *App) CacheService() utility.CacheService {
	return a.cacheService
}

func (a *App) Run() error {
	a.scheduler.RegisterJobs()
	a.scheduler.Start()

	port := a.cfg.GetString(config.KeyServerPort)
	if port == "" {
		port = "8091"
	}
	fmt.Printf("应用程序启动成功，正在监听端口: %s\n", port)

	return a.engine.Run(":" + port)
}

func (a *App) Stop() {
	if a.scheduler != nil {
		a.scheduler.Stop()
		log.Println("任务调度器已停止。")
	}
	if a.bus != nil {
		a.bus.Shutdown()
		log.Println("事件总线已关闭。")
	}
	if a.redisClient != nil {
		a.redisClient.Close()
	}
}
