/*
 * @Description: 内容仓储的进程内存实现
 * @Author: 安知鱼
 * @Date: 2026-08-12 14:02:19
 * @LastEditTime: 2026-08-29 17:21:40
 * @LastEditors: 安知鱼
 */
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mundo-tango/mundo-tango-app/pkg/domain/model"
	"github.com/mundo-tango/mundo-tango-app/pkg/domain/repository"
	"github.com/mundo-tango/mundo-tango-app/pkg/idgen"
)

// contentRepo 是 ContentRepository 的内存实现。
// 所有读写都在互斥锁保护下进行，存储值类型副本，
// 避免调用方与审核流水线并发共享同一可变对象。
type contentRepo struct {
	mu     sync.RWMutex
	items  map[string]model.ContentItem
	nextID uint
}

// NewContentRepo 创建内容仓储的内存实现。
func NewContentRepo() repository.ContentRepository {
	return &contentRepo{
		items:  make(map[string]model.ContentItem),
		nextID: 1,
	}
}

func (r *contentRepo) Create(ctx context.Context, item *model.ContentItem) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	publicID, err := idgen.GeneratePublicID(r.nextID, idgen.EntityTypeContent)
	if err != nil {
		return "", fmt.Errorf("生成内容公共ID失败: %w", err)
	}
	r.nextID++

	item.ID = publicID
	r.items[publicID] = cloneContent(item)
	return publicID, nil
}

func (r *contentRepo) FindByID(ctx context.Context, id string) (*model.ContentItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	c := cloneContent(&item)
	return &c, nil
}

func (r *contentRepo) Update(ctx context.Context, item *model.ContentItem) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return false, nil
	}
	r.items[item.ID] = cloneContent(item)
	return true, nil
}

func (r *contentRepo) FindByAuthor(ctx context.Context, authorID string, status *model.PublicationStatus) ([]*model.ContentItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.ContentItem, 0)
	for _, item := range r.items {
		if item.AuthorID != authorID {
			continue
		}
		if status != nil && item.Status != *status {
			continue
		}
		c := cloneContent(&item)
		result = append(result, &c)
	}

	// 按更新时间倒序
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result, nil
}

func (r *contentRepo) FindForModeration(ctx context.Context, limit int) ([]*model.ContentItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.ContentItem, 0)
	for _, item := range r.items {
		if !item.NeedsReview() {
			continue
		}
		c := cloneContent(&item)
		result = append(result, &c)
	}

	// 标记多、评分低的优先
	sort.Slice(result, func(i, j int) bool {
		return result[i].ReviewPriority() > result[j].ReviewPriority()
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *contentRepo) FindAll(ctx context.Context) ([]*model.ContentItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.ContentItem, 0, len(r.items))
	for _, item := range r.items {
		c := cloneContent(&item)
		result = append(result, &c)
	}
	return result, nil
}

func (r *contentRepo) DeleteExpired(ctx context.Context, before time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := make([]string, 0)
	for id, item := range r.items {
		if item.Status == model.PubStatusDeleted && item.UpdatedAt.Before(before) {
			delete(r.items, id)
			deleted = append(deleted, id)
		}
	}
	return deleted, nil
}

// cloneContent 返回内容的深拷贝，切片字段逐一复制。
func cloneContent(src *model.ContentItem) model.ContentItem {
	dst := *src
	dst.MediaRefs = append([]string(nil), src.MediaRefs...)
	dst.Metadata.Mentions = append([]string(nil), src.Metadata.Mentions...)
	dst.Metadata.Hashtags = append([]string(nil), src.Metadata.Hashtags...)
	dst.Metadata.Links = append([]string(nil), src.Metadata.Links...)
	dst.Moderation.Flags = append([]string(nil), src.Moderation.Flags...)
	if src.PublishedAt != nil {
		t := *src.PublishedAt
		dst.PublishedAt = &t
	}
	if src.Moderation.ReviewedAt != nil {
		t := *src.Moderation.ReviewedAt
		dst.Moderation.ReviewedAt = &t
	}
	return dst
}
