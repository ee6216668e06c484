// Package hub 进程内的事件广播，供 WebSocket 连接订阅
package hub

import (
	"sync"
	"sync/atomic"
	"time"

	"rentdesk/internal/store"

	"github.com/sirupsen/logrus"
)

// 事件类型
const (
	EventChange = "change" // 领域状态被替换
	EventTheme  = "theme"  // 深色模式切换
	EventNotice = "notice" // 提示发布或消失
)

// Event 推送给客户端的消息
type Event struct {
	Type string      `json:"type"`
	Time time.Time   `json:"time"`
	Data interface{} `json:"data"`
}

// ThemeData 主题事件内容
type ThemeData struct {
	DarkMode bool   `json:"darkMode"`
	Class    string `json:"class"`
}

// DefaultBuffer 每个订阅者的缓冲大小
const DefaultBuffer = 64

// Hub 广播中心。订阅者消费过慢时丢弃该订阅者的事件，不阻塞发布方
type Hub struct {
	mu      sync.RWMutex
	subs    map[int]chan Event
	nextID  int
	dropped atomic.Uint64
	log     *logrus.Logger
}

// New 创建广播中心
func New(log *logrus.Logger) *Hub {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Hub{subs: make(map[int]chan Event), log: log}
}

// Subscribe 订阅事件，返回事件通道和取消函数
func (h *Hub) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	ch := make(chan Event, buffer)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Publish 发送事件给所有订阅者
func (h *Hub) Publish(eventType string, data interface{}) {
	ev := Event{Type: eventType, Time: time.Now(), Data: data}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, ch := range h.subs {
		select {
		case ch <- ev:
		default:
			h.dropped.Add(1)
			h.log.WithFields(logrus.Fields{
				"subscriber": id,
				"event":      eventType,
			}).Warn("订阅者缓冲已满，丢弃事件")
		}
	}
}

// Subscribers 当前订阅者数量
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Dropped 因订阅者过慢而丢弃的事件数
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// ApplyTheme 广播主题切换
func (h *Hub) ApplyTheme(dark bool) {
	class := ""
	if dark {
		class = "dark"
	}
	h.Publish(EventTheme, ThemeData{DarkMode: dark, Class: class})
}

// OnStoreChange 作为 store.Listener 使用，广播领域状态变更
func (h *Hub) OnStoreChange(_ store.State, change store.Change) {
	h.Publish(EventChange, change)
}
