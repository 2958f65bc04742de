/*
 * @Description: 内容数据仓储接口
 * @Author: 安知鱼
 * @Date: 2026-08-12 11:05:17
 * @LastEditTime: 2026-08-27 15:48:02
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"
	"time"

	"github.com/mundo-tango/mundo-tango-app/pkg/domain/model"
)

// ContentRepository 定义了内容主数据仓库的接口。
// 当前实现为进程内存储，接口保持与持久化实现兼容的形态。
type ContentRepository interface {
	// Create 保存一条新内容并分配数据库 ID，返回分配后的公共 ID。
	Create(ctx context.Context, item *model.ContentItem) (string, error)

	// FindByID 根据公共 ID 查找内容，不存在时返回 (nil, nil)。
	FindByID(ctx context.Context, id string) (*model.ContentItem, error)

	// Update 整体替换一条已存在的内容，不存在时返回 false。
	Update(ctx context.Context, item *model.ContentItem) (bool, error)

	// FindByAuthor 返回某作者的全部内容，可按发布状态过滤，按更新时间倒序。
	FindByAuthor(ctx context.Context, authorID string, status *model.PublicationStatus) ([]*model.ContentItem, error)

	// FindForModeration 返回待人工处理（flagged/pending）的内容，
	// 按标记数量与反向评分排序，最多返回 limit 条。
	FindForModeration(ctx context.Context, limit int) ([]*model.ContentItem, error)

	// FindAll 返回全部内容（统计与清理任务使用）。
	FindAll(ctx context.Context) ([]*model.ContentItem, error)

	// DeleteExpired 物理删除在 deleted 状态停留超过 before 时间点的内容，
	// 返回被删除的内容 ID 列表（调用方负责级联清理版本与事件）。
	DeleteExpired(ctx context.Context, before time.Time) ([]string, error)
}
