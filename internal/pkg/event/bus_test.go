package event

import (
	"sync"
	"testing"
	"time"
)

func TestEventBusPublishSubscribe(t *testing.T) {
	bus := NewEventBus()
	defer bus.Shutdown()

	var mu sync.Mutex
	received := make(map[Topic][]interface{})
	done := make(chan struct{}, 2)

	bus.Subscribe(ContentCreated, func(payload interface{}) {
		mu.Lock()
		received[ContentCreated] = append(received[ContentCreated], payload)
		mu.Unlock()
		done <- struct{}{}
	})
	bus.Subscribe(ContentModerated, func(payload interface{}) {
		mu.Lock()
		received[ContentModerated] = append(received[ContentModerated], payload)
		mu.Unlock()
		done <- struct{}{}
	})

	bus.Publish(ContentCreated, "payload-1")
	bus.Publish(ContentModerated, "payload-2")
	// 没有订阅者的主题只是被丢弃
	bus.Publish(ContentReported, "payload-3")

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("等待事件处理超时")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if len(received[ContentCreated]) != 1 || received[ContentCreated][0] != "payload-1" {
		t.Errorf("ContentCreated 收到 %v", received[ContentCreated])
	}
	if len(received[ContentModerated]) != 1 || received[ContentModerated][0] != "payload-2" {
		t.Errorf("ContentModerated 收到 %v", received[ContentModerated])
	}
}

func TestEventBusMultipleHandlers(t *testing.T) {
	bus := NewEventBus()

	var wg sync.WaitGroup
	wg.Add(3)
	for i := 0; i < 3; i++ {
		bus.Subscribe(ContentReviewed, func(_ interface{}) {
			wg.Done()
		})
	}

	bus.Publish(ContentReviewed, nil)

	waited := make(chan struct{})
	go func() {
		wg.Wait()
		close(waited)
	}()
	select {
	case <-waited:
	case <-time.After(2 * time.Second):
		t.Fatal("同一主题的全部订阅者都应收到事件")
	}

	bus.Shutdown()
}
