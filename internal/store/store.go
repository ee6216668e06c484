// Package store 应用状态控制器。
//
// 所有集合只保存在内存中。每次操作都在锁内生成新的 State：被修改的集合整体替换为新切片，
// 其余集合沿用原引用，版本号加一，然后通知订阅者。不存在批量更新或事务。
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("record not found")

// DateLayout 日期格式
const DateLayout = "2006-01-02"

// Listener 状态变更回调，在状态锁外按版本顺序同步调用。
// 回调内可以读取 Snapshot，但不能再修改 Store
type Listener func(next State, change Change)

// Option 构造选项
type Option func(*Store)

// WithIDGenerator 设置ID生成器
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.ids = gen
		}
	}
}

// WithClock 设置时钟，用于退租日期和默认付款日期
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// Store 应用状态控制器
type Store struct {
	notify    sync.Mutex // 串行化写入和通知，保证监听者按版本顺序收到变更
	mu        sync.Mutex
	state     State
	ids       IDGenerator
	clock     func() time.Time
	listeners map[int]Listener
	nextSub   int
}

// New 使用初始状态创建控制器
func New(initial State, opts ...Option) *Store {
	s := &Store{
		state:     initial,
		ids:       TimeOrderedIDs{},
		clock:     time.Now,
		listeners: make(map[int]Listener),
	}
	if s.state.Navigation.CurrentScreen == "" {
		s.state.Navigation.CurrentScreen = ScreenLogin
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot 当前状态
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe 订阅状态变更，返回取消函数
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = l
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// update 在锁内基于当前状态计算下一个状态；mutate 返回错误时状态不变
func (s *Store) update(collection, action string, mutate func(cur State) (State, string, error)) (State, error) {
	s.notify.Lock()
	defer s.notify.Unlock()

	s.mu.Lock()
	next, id, err := mutate(s.state)
	if err != nil {
		s.mu.Unlock()
		return State{}, err
	}
	next.Version = s.state.Version + 1
	s.state = next

	change := Change{Version: next.Version, Collection: collection, Action: action, ID: id}
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(next, change)
	}
	return next, nil
}

func (s *Store) today() string {
	return s.clock().Format(DateLayout)
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}

// replaceAt 复制切片并替换第 i 个元素
func replaceAt[T any](list []T, i int, v T) []T {
	out := make([]T, len(list))
	copy(out, list)
	out[i] = v
	return out
}

// appendCopy 复制切片并追加元素，不影响原切片的底层数组
func appendCopy[T any](list []T, v T) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	return append(out, v)
}

func cloneSlice[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	out := make([]T, len(list))
	copy(out, list)
	return out
}
