package notification

import (
	"testing"
	"time"

	"github.com/mundo-tango/mundo-tango-app/internal/pkg/event"
	"github.com/mundo-tango/mundo-tango-app/pkg/domain/model"
)

// waitForInbox 轮询等待异步事件投递完成。
func waitForInbox(t *testing.T, svc *Service, userID string, want int) []*model.Notification {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if list := svc.ListByUser(userID); len(list) >= want {
			return list
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("等待用户 %s 的 %d 条通知超时", userID, want)
	return nil
}

func TestNotificationOnModeration(t *testing.T) {
	bus := event.NewEventBus()
	defer bus.Shutdown()

	svc := NewService()
	svc.RegisterListeners(bus)

	item := &model.ContentItem{
		ID:       "c1",
		AuthorID: "user-1",
		Moderation: model.ModerationRecord{
			Status: model.ModStatusApproved,
		},
	}
	bus.Publish(event.ContentModerated, item)

	list := waitForInbox(t, svc, "user-1", 1)
	n := list[0]
	if n.Kind != model.NotifyContentModerated {
		t.Errorf("Kind = %s, want %s", n.Kind, model.NotifyContentModerated)
	}
	if n.ContentID != "c1" || n.UserID != "user-1" {
		t.Errorf("通知归属错误: %+v", n)
	}
	if n.Read {
		t.Error("新通知应为未读")
	}
	if n.ID == "" {
		t.Error("通知应有 ID")
	}

	// 其他用户的收件箱不受影响
	if other := svc.ListByUser("user-2"); len(other) != 0 {
		t.Errorf("user-2 的通知数 = %d, want 0", len(other))
	}
}

func TestNotificationOnReview(t *testing.T) {
	bus := event.NewEventBus()
	defer bus.Shutdown()

	svc := NewService()
	svc.RegisterListeners(bus)

	bus.Publish(event.ContentReviewed, &model.ContentItem{
		ID:       "c2",
		AuthorID: "user-1",
		Moderation: model.ModerationRecord{
			Status: model.ModStatusRejected,
		},
	})

	list := waitForInbox(t, svc, "user-1", 1)
	if list[0].Kind != model.NotifyContentReviewed {
		t.Errorf("Kind = %s, want %s", list[0].Kind, model.NotifyContentReviewed)
	}
}

func TestMarkRead(t *testing.T) {
	bus := event.NewEventBus()
	defer bus.Shutdown()

	svc := NewService()
	svc.RegisterListeners(bus)

	bus.Publish(event.ContentModerated, &model.ContentItem{ID: "c3", AuthorID: "user-1"})
	list := waitForInbox(t, svc, "user-1", 1)

	if !svc.MarkRead("user-1", list[0].ID) {
		t.Fatal("MarkRead() = false, want true")
	}
	if got := svc.ListByUser("user-1"); !got[0].Read {
		t.Error("通知应已标记为已读")
	}

	// 错误的用户或 ID 返回 false
	if svc.MarkRead("user-2", list[0].ID) {
		t.Error("其他用户不应能标记该通知")
	}
	if svc.MarkRead("user-1", "no-such-id") {
		t.Error("不存在的通知应返回 false")
	}
}
