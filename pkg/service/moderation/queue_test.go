package moderation

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestQueueFIFO(t *testing.T) {
	var mu sync.Mutex
	var processed []string
	q := NewQueue(func(_ context.Context, id string) {
		mu.Lock()
		processed = append(processed, id)
		mu.Unlock()
	}, -1)

	want := []string{"c1", "c2", "c3", "c4"}
	for _, id := range want {
		q.Enqueue(id)
	}
	q.WaitIdle()

	mu.Lock()
	defer mu.Unlock()
	if !reflect.DeepEqual(processed, want) {
		t.Errorf("处理顺序 = %v, want %v", processed, want)
	}
}

func TestQueueSingleFlight(t *testing.T) {
	var inFlight, maxInFlight int32
	q := NewQueue(func(_ context.Context, _ string) {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			old := atomic.LoadInt32(&maxInFlight)
			if n <= old || atomic.CompareAndSwapInt32(&maxInFlight, old, n) {
				break
			}
		}
		atomic.AddInt32(&inFlight, -1)
	}, -1)

	// 从多个 goroutine 并发入队，排空仍应串行
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				q.Enqueue(fmt.Sprintf("c%d-%d", n, j))
			}
		}(i)
	}
	wg.Wait()
	q.WaitIdle()

	if got := atomic.LoadInt32(&maxInFlight); got != 1 {
		t.Errorf("并发处理数峰值 = %d, want 1", got)
	}
	if q.Len() != 0 {
		t.Errorf("排空后队列长度 = %d, want 0", q.Len())
	}
}

func TestQueueEnqueueDuringDrainExit(t *testing.T) {
	var mu sync.Mutex
	var processed []string
	q := NewQueue(func(_ context.Context, id string) {
		mu.Lock()
		processed = append(processed, id)
		mu.Unlock()
	}, -1)

	// 排空刚判定队列为空、还未返回时就有新条目入队。
	// processing 必须已在同一临界区内清除，否则该条目会
	// 滞留到下一次无关的 Enqueue 才被处理。
	var once sync.Once
	q.onEmpty = func() {
		once.Do(func() { q.Enqueue("late") })
	}

	q.Enqueue("first")

	deadline := time.Now().Add(2 * time.Second)
	for {
		q.WaitIdle()
		mu.Lock()
		n := len(processed)
		mu.Unlock()
		if n == 2 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("晚到的条目未被处理, processed = %v", processed)
		}
		time.Sleep(time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	if !reflect.DeepEqual(processed, []string{"first", "late"}) {
		t.Errorf("processed = %v, want [first late]", processed)
	}
}

func TestQueuePanicRecovery(t *testing.T) {
	var mu sync.Mutex
	var processed []string
	q := NewQueue(func(_ context.Context, id string) {
		if id == "boom" {
			panic("rule evaluation exploded")
		}
		mu.Lock()
		processed = append(processed, id)
		mu.Unlock()
	}, -1)

	q.Enqueue("c1")
	q.Enqueue("boom")
	q.Enqueue("c2")
	q.WaitIdle()

	mu.Lock()
	if !reflect.DeepEqual(processed, []string{"c1", "c2"}) {
		t.Errorf("panic 之后队列应继续排空, processed = %v", processed)
	}
	mu.Unlock()

	// 队列没有被卡死，还能接受新条目
	q.Enqueue("c3")
	q.WaitIdle()
	if q.Len() != 0 {
		t.Errorf("队列应已排空, Len = %d", q.Len())
	}
}
