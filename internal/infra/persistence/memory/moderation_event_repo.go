/*
 * @Description: 审核事件仓储的进程内存实现
 * @Author: 安知鱼
 * @Date: 2026-08-12 14:22:07
 * @LastEditTime: 2026-08-12 14:22:11
 * @LastEditors: 安知鱼
 */
package memory

import (
	"context"
	"sync"

	"github.com/mundo-tango/mundo-tango-app/pkg/domain/model"
	"github.com/mundo-tango/mundo-tango-app/pkg/domain/repository"
)

// moderationEventRepo 是 ModerationEventRepository 的内存实现。
// 每个内容 ID 对应一个只追加的事件列表，顺序即创建顺序。
type moderationEventRepo struct {
	mu     sync.RWMutex
	events map[string][]*model.ModerationEvent
}

// NewModerationEventRepo 创建审核事件仓储的内存实现。
func NewModerationEventRepo() repository.ModerationEventRepository {
	return &moderationEventRepo{
		events: make(map[string][]*model.ModerationEvent),
	}
}

func (r *moderationEventRepo) Append(ctx context.Context, event *model.ModerationEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := *event
	r.events[event.ContentID] = append(r.events[event.ContentID], &e)
	return nil
}

func (r *moderationEventRepo) ListByContent(ctx context.Context, contentID string) ([]*model.ModerationEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.events[contentID]
	result := make([]*model.ModerationEvent, 0, len(list))
	for _, e := range list {
		c := *e
		result = append(result, &c)
	}
	return result, nil
}

func (r *moderationEventRepo) DeleteByContent(ctx context.Context, contentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.events, contentID)
	return nil
}
