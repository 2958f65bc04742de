/*
 * @Description: 审核积压监控定时任务
 * @Author: 安知鱼
 * @Date: 2026-08-15 09:41:16
 * @LastEditTime: 2026-08-15 09:41:20
 * @LastEditors: 安知鱼
 */
package task

import (
	"context"
	"log"

	"github.com/mundo-tango/mundo-tango-app/pkg/domain/model"
	content_service "github.com/mundo-tango/mundo-tango-app/pkg/service/content"
)

// ModerationBacklogJob 监控人工审核积压，超过阈值时输出告警日志。
type ModerationBacklogJob struct {
	contentSvc *content_service.Service
	warnSize   int
}

// NewModerationBacklogJob 是任务的构造函数。
func NewModerationBacklogJob(contentSvc *content_service.Service, warnSize int) *ModerationBacklogJob {
	if warnSize <= 0 {
		warnSize = 100
	}
	return &ModerationBacklogJob{
		contentSvc: contentSvc,
		warnSize:   warnSize,
	}
}

// Run 是 Job 接口要求实现的方法。
func (j *ModerationBacklogJob) Run() {
	stats, err := j.contentSvc.GetSystemStats(context.Background())
	if err != nil {
		log.Printf("任务 '%s' 在执行业务逻辑时捕获到错误: %v", j.Name(), err)
		return
	}

	backlog := stats.ByModerationStatus[model.ModStatusPending] + stats.ByModerationStatus[model.ModStatusFlagged]
	if backlog > j.warnSize {
		log.Printf("任务 '%s' 告警: 待人工处理的内容积压 %d 条，超过阈值 %d。", j.Name(), backlog, j.warnSize)
	}
}

// Name 方法让日志包装器可以打印出更有意义的任务名。
func (j *ModerationBacklogJob) Name() string {
	return "ModerationBacklogJob"
}
