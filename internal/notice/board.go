// Package notice 自动消失的一次性提示
package notice

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultDismissAfter 默认自动消失时间
const DefaultDismissAfter = 1500 * time.Millisecond

// Notice 一条提示
type Notice struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// DismissFunc 提示到期时调用
type DismissFunc func(Notice)

// Board 管理提示及其计时器。ctx 结束或 Close 返回之后不会再触发任何回调。
// 回调中不得调用 Close
type Board struct {
	fire      sync.Mutex // 回调执行期间持有
	mu        sync.Mutex
	after     time.Duration
	onDismiss DismissFunc
	active    map[string]*entry
	closed    bool
	stop      func() bool
}

type entry struct {
	notice Notice
	timer  *time.Timer
}

// NewBoard 创建提示板，生命周期与 ctx 绑定
func NewBoard(ctx context.Context, after time.Duration, onDismiss DismissFunc) *Board {
	if after <= 0 {
		after = DefaultDismissAfter
	}
	b := &Board{
		after:     after,
		onDismiss: onDismiss,
		active:    make(map[string]*entry),
	}
	b.mu.Lock()
	b.stop = context.AfterFunc(ctx, b.Close)
	b.mu.Unlock()
	return b
}

// Post 发布一条提示，返回提示内容；提示板已关闭时 ok 为 false
func (b *Board) Post(message string) (n Notice, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return Notice{}, false
	}
	n = Notice{ID: uuid.NewString(), Message: message, ExpiresAt: time.Now().Add(b.after)}
	e := &entry{notice: n}
	e.timer = time.AfterFunc(b.after, func() { b.expire(n.ID) })
	b.active[n.ID] = e
	return n, true
}

// Dismiss 提前关闭提示，不触发回调
func (b *Board) Dismiss(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.active[id]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(b.active, id)
	return true
}

// Active 当前未消失的提示
func (b *Board) Active() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Notice, 0, len(b.active))
	for _, e := range b.active {
		out = append(out, e.notice)
	}
	return out
}

// Close 取消所有未到期的计时器
func (b *Board) Close() {
	b.fire.Lock()
	defer b.fire.Unlock()
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, e := range b.active {
		e.timer.Stop()
		delete(b.active, id)
	}
	if b.stop != nil {
		b.stop()
	}
}

func (b *Board) expire(id string) {
	b.fire.Lock()
	defer b.fire.Unlock()

	b.mu.Lock()
	e, ok := b.active[id]
	if !ok || b.closed {
		b.mu.Unlock()
		return
	}
	delete(b.active, id)
	b.mu.Unlock()

	if b.onDismiss != nil {
		b.onDismiss(e.notice)
	}
}
