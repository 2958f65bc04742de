/*
 * @Description: 审核队列，单飞(single-flight)排空
 * @Author: 安知鱼
 * @Date: 2026-08-13 11:35:26
 * @LastEditTime: 2026-08-30 15:40:18
 * @LastEditors: 安知鱼
 */
package moderation

import (
	"context"
	"log"
	"runtime/debug"
	"sync"
	"time"
)

// DefaultDrainDelay 是两次处理之间的固定节流间隔。
const DefaultDrainDelay = 50 * time.Millisecond

// ProcessFunc 处理一条排队的内容，参数为内容的公共 ID。
type ProcessFunc func(ctx context.Context, contentID string)

// Queue 按 FIFO 顺序把新建/更新的内容依次送进评分器。
// 同一时刻最多只有一个排空 goroutine 在运行：排空进行中时
// Enqueue 只追加条目，依赖在跑的排空最终消费它们。
// 互斥锁取代了原设计中仅在单线程运行时下安全的布尔标志。
type Queue struct {
	mu         sync.Mutex
	cond       *sync.Cond
	pending    []string
	processing bool

	process ProcessFunc
	delay   time.Duration

	// onEmpty 在排空判定队列为空、释放锁之后被调用，仅测试使用。
	onEmpty func()
}

// NewQueue 创建审核队列。delay 为 0 时使用默认节流间隔，
// 负值表示不节流（测试用）。
func NewQueue(process ProcessFunc, delay time.Duration) *Queue {
	if delay == 0 {
		delay = DefaultDrainDelay
	}
	if delay < 0 {
		delay = 0
	}
	q := &Queue{
		pending: make([]string, 0),
		process: process,
		delay:   delay,
	}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Enqueue 把内容加入队尾；如果当前没有排空在进行，启动一轮新的排空。
func (q *Queue) Enqueue(contentID string) {
	q.mu.Lock()
	q.pending = append(q.pending, contentID)
	start := !q.processing
	if start {
		q.processing = true
	}
	q.mu.Unlock()

	if start {
		go q.drain()
	}
}

// Len 返回当前排队的条目数。
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// WaitIdle 阻塞直到队列为空且没有排空在进行。
func (q *Queue) WaitIdle() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.processing || len(q.pending) > 0 {
		q.cond.Wait()
	}
}

// drain 循环弹出队首条目并处理，直到队列排空。
// processing 标志总是在退出路径上被清除，单条内容的
// 处理失败不会中断整轮排空，队列不可能被永久卡死。
func (q *Queue) drain() {
	// panic 兜底：若循环非正常退出，清除标志；此时队列里
	// 还有条目的话重启一轮排空，保证它们最终被处理。
	// 正常退出已在临界区内清过标志，兜底不能再动它，
	// 否则会误清后续 Enqueue 新起的那轮排空的标志。
	exited := false
	defer func() {
		if exited {
			return
		}
		q.mu.Lock()
		q.processing = false
		restart := len(q.pending) > 0
		if restart {
			q.processing = true
		}
		q.cond.Broadcast()
		q.mu.Unlock()
		if restart {
			go q.drain()
		}
	}()

	ctx := context.Background()
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			// 必须在同一临界区内清除 processing：若先解锁再清除，
			// 落在空档里的 Enqueue 会看到标志仍为真而只追加条目，
			// 该条目在下一次无关的 Enqueue 之前都不会被处理。
			q.processing = false
			q.cond.Broadcast()
			exited = true
			q.mu.Unlock()
			if q.onEmpty != nil {
				q.onEmpty()
			}
			return
		}
		contentID := q.pending[0]
		q.pending = q.pending[1:]
		q.mu.Unlock()

		q.processOne(ctx, contentID)

		if q.delay > 0 {
			time.Sleep(q.delay)
		}
	}
}

// processOne 处理单条内容，捕获 panic 并继续。
func (q *Queue) processOne(ctx context.Context, contentID string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Moderation] 处理内容 %s 时发生 panic: %v\n%s", contentID, r, debug.Stack())
		}
	}()
	q.process(ctx, contentID)
}
