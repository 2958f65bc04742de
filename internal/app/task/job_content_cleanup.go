/*
 * @Description: 过期内容清理定时任务
 * @Author: 安知鱼
 * @Date: 2026-08-15 09:33:40
 * @LastEditTime: 2026-08-30 23:05:12
 * @LastEditors: 安知鱼
 */
package task

import (
	"context"
	"log"
	"time"

	content_service "github.com/mundo-tango/mundo-tango-app/pkg/service/content"
)

// ContentCleanupJob 负责物理清理长期处于 deleted 状态的内容，
// 连同其历史版本和审核审计记录一起移除。
type ContentCleanupJob struct {
	contentSvc *content_service.Service
	retention  time.Duration
}

// NewContentCleanupJob 是任务的构造函数。
func NewContentCleanupJob(contentSvc *content_service.Service, retention time.Duration) *ContentCleanupJob {
	return &ContentCleanupJob{
		contentSvc: contentSvc,
		retention:  retention,
	}
}

// Run 是 Job 接口要求实现的方法。
func (j *ContentCleanupJob) Run() {
	cleaned, err := j.contentSvc.CleanupExpired(context.Background(), j.retention)
	if err != nil {
		log.Printf("任务 '%s' 在执行业务逻辑时捕获到错误: %v", j.Name(), err)
	} else if cleaned > 0 {
		log.Printf("任务 '%s' 业务逻辑执行完毕，共清理了 %d 条过期内容。", j.Name(), cleaned)
	}
}

// Name 方法让日志包装器可以打印出更有意义的任务名。
func (j *ContentCleanupJob) Name() string {
	return "ContentCleanupJob"
}
