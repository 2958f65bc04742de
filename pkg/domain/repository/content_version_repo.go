/*
 * @Description: 内容历史版本仓储接口
 * @Author: 安知鱼
 * @Date: 2026-08-12 11:09:44
 * @LastEditTime: 2026-08-12 11:09:50
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/mundo-tango/mundo-tango-app/pkg/domain/model"
)

// ContentVersionRepository 定义了内容历史版本数据仓库的接口。
// 版本列表按内容 ID 组织，只允许追加，版本号由仓库分配并保证连续递增。
type ContentVersionRepository interface {
	// Append 为指定内容追加一个版本快照，分配版本号（前一版本号+1，从 1 开始）。
	Append(ctx context.Context, contentID string, version *model.ContentVersion) (*model.ContentVersion, error)

	// ListByContent 返回指定内容的全部版本，按版本号升序；没有记录时返回空切片。
	ListByContent(ctx context.Context, contentID string) ([]*model.ContentVersion, error)

	// DeleteByContent 删除指定内容的全部版本（内容被物理清理时调用）。
	DeleteByContent(ctx context.Context, contentID string) error
}
