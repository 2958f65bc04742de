/*
 * @Description: 审核事件仓储接口
 * @Author: 安知鱼
 * @Date: 2026-08-12 11:13:28
 * @LastEditTime: 2026-08-12 11:13:33
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/mundo-tango/mundo-tango-app/pkg/domain/model"
)

// ModerationEventRepository 定义了审核审计记录仓库的接口。
// 事件按内容 ID 组织，只允许追加，顺序即创建顺序。
type ModerationEventRepository interface {
	// Append 为指定内容追加一条审计记录。
	Append(ctx context.Context, event *model.ModerationEvent) error

	// ListByContent 返回指定内容的全部审计记录，按追加顺序；没有记录时返回空切片。
	ListByContent(ctx context.Context, contentID string) ([]*model.ModerationEvent, error)

	// DeleteByContent 删除指定内容的全部审计记录（内容被物理清理时调用）。
	DeleteByContent(ctx context.Context, contentID string) error
}
