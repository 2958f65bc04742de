/*
 * @Description: 内容历史版本仓储的进程内存实现
 * @Author: 安知鱼
 * @Date: 2026-08-12 14:15:51
 * @LastEditTime: 2026-08-27 16:03:28
 * @LastEditors: 安知鱼
 */
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/mundo-tango/mundo-tango-app/pkg/domain/model"
	"github.com/mundo-tango/mundo-tango-app/pkg/domain/repository"
)

// contentVersionRepo 是 ContentVersionRepository 的内存实现。
// 每个内容 ID 对应一个只追加的版本列表，版本号 = 追加前列表长度 + 1，
// 因此同一内容的版本号连续且严格递增。
type contentVersionRepo struct {
	mu       sync.RWMutex
	versions map[string][]*model.ContentVersion
}

// NewContentVersionRepo 创建版本仓储的内存实现。
func NewContentVersionRepo() repository.ContentVersionRepository {
	return &contentVersionRepo{
		versions: make(map[string][]*model.ContentVersion),
	}
}

func (r *contentVersionRepo) Append(ctx context.Context, contentID string, version *model.ContentVersion) (*model.ContentVersion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.versions[contentID]
	v := *version
	v.ContentID = contentID
	v.Version = len(list) + 1
	v.ID = fmt.Sprintf("%s-v%d", contentID, v.Version)
	v.MediaRefs = append([]string(nil), version.MediaRefs...)

	r.versions[contentID] = append(list, &v)

	result := v
	return &result, nil
}

func (r *contentVersionRepo) ListByContent(ctx context.Context, contentID string) ([]*model.ContentVersion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.versions[contentID]
	result := make([]*model.ContentVersion, 0, len(list))
	for _, v := range list {
		c := *v
		c.MediaRefs = append([]string(nil), v.MediaRefs...)
		result = append(result, &c)
	}
	return result, nil
}

func (r *contentVersionRepo) DeleteByContent(ctx context.Context, contentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.versions, contentID)
	return nil
}
