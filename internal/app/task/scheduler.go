/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-08-15 09:52:03
 * @LastEditTime: 2026-08-30 23:12:41
 * @LastEditors: 安知鱼
 */
package task

import (
	"log/slog"
	"os"
	"time"

	content_service "github.com/mundo-tango/mundo-tango-app/pkg/service/content"

	"github.com/robfig/cron/v3"
)

// Scheduler 封装了 cron 实例和其依赖。
// 它是整个定时任务模块的核心协调者，负责任务的注册、启动和停止。
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger

	contentSvc *content_service.Service
	retention  time.Duration
	warnSize   int
}

// NewScheduler 是 Scheduler 的构造函数。
func NewScheduler(contentSvc *content_service.Service, retention time.Duration, warnSize int) *Scheduler {
	slogHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := slog.New(slogHandler).With("system", "cron")

	c := cron.New(
		cron.WithSeconds(),
		cron.WithChain(
			NewPanicRecoveryWrapper(logger),
			NewLoggingWrapper(logger),
			cron.DelayIfStillRunning(cron.DefaultLogger),
		),
	)

	return &Scheduler{
		cron:       c,
		logger:     logger,
		contentSvc: contentSvc,
		retention:  retention,
		warnSize:   warnSize,
	}
}

// RegisterJobs 在调度器中注册所有定义好的定时任务。
func (s *Scheduler) RegisterJobs() {
	s.logger.Info("Registering all periodic jobs...")

	// --- 任务1: 每天清理长期处于 deleted 状态的内容 ---
	cleanupJob := NewContentCleanupJob(s.contentSvc, s.retention)

	_, err := s.cron.AddJob("0 0 3 * * *", cleanupJob)
	if err != nil {
		s.logger.Error("Failed to add 'ContentCleanupJob'", slog.Any("error", err))
		os.Exit(1)
	}
	s.logger.Info("-> Successfully registered 'ContentCleanupJob'", "schedule", "every day at 3:00:00 AM")

	// --- 任务2: 每10分钟检查人工审核积压 ---
	backlogJob := NewModerationBacklogJob(s.contentSvc, s.warnSize)
	_, err = s.cron.AddJob("0 */10 * * * *", backlogJob)
	if err != nil {
		s.logger.Error("Failed to add 'ModerationBacklogJob'", slog.Any("error", err))
		os.Exit(1)
	}
	s.logger.Info("-> Successfully registered 'ModerationBacklogJob'", "schedule", "every 10 minutes")

	s.logger.Info("All periodic jobs registered.")
}

// Start 启动 cron 调度器。
func (s *Scheduler) Start() {
	s.logger.Info("Cron scheduler started.")
	s.cron.Start()
}

// Stop 优雅地停止 cron 调度器。
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Cron scheduler gracefully stopped.")
}
