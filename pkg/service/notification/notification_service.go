/*
 * @Description: 站内通知服务，消费事件总线上的审核结果
 * @Author: 安知鱼
 * @Date: 2026-08-18 10:05:26
 * @LastEditTime: 2026-08-30 22:18:09
 * @LastEditors: 安知鱼
 */
package notification

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mundo-tango/mundo-tango-app/internal/pkg/event"
	"github.com/mundo-tango/mundo-tango-app/pkg/domain/model"
)

// Service 把审核流水线的结果转化为按作者归档的站内通知。
// 消费者通过事件总线显式注册，而不是散落的全局事件名。
type Service struct {
	mu    sync.RWMutex
	inbox map[string][]*model.Notification // authorID -> 通知列表，按时间追加
}

// NewService 创建通知服务。
func NewService() *Service {
	return &Service{
		inbox: make(map[string][]*model.Notification),
	}
}

// RegisterListeners 在事件总线上订阅本服务关心的主题。
func (s *Service) RegisterListeners(bus *event.EventBus) {
	bus.Subscribe(event.ContentModerated, s.onContentModerated)
	bus.Subscribe(event.ContentReviewed, s.onContentReviewed)
}

// ListByUser 返回某用户的全部通知，按产生顺序。
func (s *Service) ListByUser(userID string) []*model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.inbox[userID]
	result := make([]*model.Notification, 0, len(list))
	for _, n := range list {
		c := *n
		result = append(result, &c)
	}
	return result
}

// MarkRead 把某用户的一条通知标记为已读，不存在时返回 false。
func (s *Service) MarkRead(userID, notificationID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.inbox[userID] {
		if n.ID == notificationID {
			n.Read = true
			return true
		}
	}
	return false
}

func (s *Service) onContentModerated(payload interface{}) {
	item, ok := payload.(*model.ContentItem)
	if !ok {
		log.Printf("[Notification] 意外的 content:moderated 事件载荷类型: %T", payload)
		return
	}
	s.append(item.AuthorID, &model.Notification{
		Kind:      model.NotifyContentModerated,
		ContentID: item.ID,
		Message:   fmt.Sprintf("你的内容已完成自动审核：%s", item.Moderation.Status),
	})
}

func (s *Service) onContentReviewed(payload interface{}) {
	item, ok := payload.(*model.ContentItem)
	if !ok {
		log.Printf("[Notification] 意外的 content:reviewed 事件载荷类型: %T", payload)
		return
	}
	s.append(item.AuthorID, &model.Notification{
		Kind:      model.NotifyContentReviewed,
		ContentID: item.ID,
		Message:   fmt.Sprintf("你的内容已由人工审核：%s", item.Moderation.Status),
	})
}

func (s *Service) append(userID string, n *model.Notification) {
	n.ID = uuid.New().String()
	n.UserID = userID
	n.CreatedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inbox[userID] = append(s.inbox[userID], n)
}
