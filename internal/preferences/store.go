// Package preferences 跨页面的用户偏好：深色模式、语言、管理员资料。
//
// darkMode 和 language 每次修改都同步写入持久化存储；资料默认只在内存中，
// 开启 PersistProfile 后以 JSON 写入 "user" 键。
package preferences

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"rentdesk/internal/i18n"
	"rentdesk/internal/models"
	"rentdesk/pkg/kvstore"

	"github.com/sirupsen/logrus"
)

// 持久化键
const (
	KeyDarkMode = "darkMode"
	KeyLanguage = "language"
	KeyUser     = "user"
)

// State 偏好快照
type State struct {
	DarkMode bool               `json:"darkMode"`
	Language string             `json:"language"`
	User     models.UserProfile `json:"user"`
}

// ProfilePatch 资料部分更新，nil 字段保持不变
type ProfilePatch struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
}

// ThemeApplier 切换界面根节点的主题（dark class）
type ThemeApplier interface {
	ApplyTheme(dark bool)
}

// ThemeFunc 函数形式的 ThemeApplier
type ThemeFunc func(dark bool)

func (f ThemeFunc) ApplyTheme(dark bool) { f(dark) }

type nopTheme struct{}

func (nopTheme) ApplyTheme(bool) {}

// Option 构造选项
type Option func(*Store)

// WithTheme 设置主题切换回调
func WithTheme(theme ThemeApplier) Option {
	return func(s *Store) {
		if theme != nil {
			s.theme = theme
		}
	}
}

// WithCatalog 设置翻译词典
func WithCatalog(catalog *i18n.Catalog) Option {
	return func(s *Store) {
		if catalog != nil {
			s.catalog = catalog
		}
	}
}

// WithProfilePersistence 是否持久化资料
func WithProfilePersistence(enabled bool) Option {
	return func(s *Store) {
		s.persistProfile = enabled
	}
}

// WithLogger 设置日志
func WithLogger(log *logrus.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// Store 偏好存储
type Store struct {
	mu             sync.RWMutex
	storage        kvstore.Store
	catalog        *i18n.Catalog
	theme          ThemeApplier
	persistProfile bool
	log            *logrus.Logger
	state          State
}

// NewStore 创建偏好存储，初始为默认值，调用 Load 读取已保存的值
func NewStore(storage kvstore.Store, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		catalog: i18n.Default(),
		theme:   nopTheme{},
		log:     logrus.StandardLogger(),
		state:   defaultState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func defaultState() State {
	return State{
		DarkMode: false,
		Language: i18n.DefaultLanguage,
		User:     models.DefaultUserProfile(),
	}
}

// Load 读取已保存的偏好。读取失败或值缺失时使用默认值
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if raw, ok := s.read(ctx, KeyDarkMode); ok {
		if dark, err := strconv.ParseBool(raw); err == nil {
			s.state.DarkMode = dark
		} else {
			s.log.WithField("value", raw).Warn("已保存的深色模式值无法解析，使用默认值")
		}
	}

	if raw, ok := s.read(ctx, KeyLanguage); ok && raw != "" {
		s.state.Language = raw
	}

	if s.persistProfile {
		if raw, ok := s.read(ctx, KeyUser); ok {
			var user models.UserProfile
			if err := json.Unmarshal([]byte(raw), &user); err == nil {
				s.state.User = user
			} else {
				s.log.WithError(err).Warn("已保存的用户资料无法解析，使用默认资料")
			}
		}
	}

	s.theme.ApplyTheme(s.state.DarkMode)
}

// State 当前偏好
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ToggleDarkMode 切换深色模式，写入存储并切换界面主题，返回新值
func (s *Store) ToggleDarkMode(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.DarkMode = !s.state.DarkMode
	s.write(ctx, KeyDarkMode, strconv.FormatBool(s.state.DarkMode))
	s.theme.ApplyTheme(s.state.DarkMode)
	return s.state.DarkMode
}

// SetLanguage 设置语言，不校验语言代码
func (s *Store) SetLanguage(ctx context.Context, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Language = code
	s.write(ctx, KeyLanguage, code)
}

// UpdateUser 浅合并资料字段，不做校验
func (s *Store) UpdateUser(ctx context.Context, patch ProfilePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.state.User
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.Password != nil {
		user.Password = *patch.Password
	}
	s.state.User = user
	s.saveProfile(ctx)
}

// ChangePassword 旧密码完全一致时替换密码并返回 true，否则状态不变返回 false。
// 密码强度和确认一致由调用方校验
func (s *Store) ChangePassword(ctx context.Context, oldPassword, newPassword string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User.Password != oldPassword {
		return false
	}
	s.state.User.Password = newPassword
	s.saveProfile(ctx)
	return true
}

// Translate 按当前语言翻译
func (s *Store) Translate(key string) string {
	s.mu.RLock()
	lang := s.state.Language
	s.mu.RUnlock()
	return s.catalog.Translate(lang, key)
}

// Catalog 当前使用的词典
func (s *Store) Catalog() *i18n.Catalog {
	return s.catalog
}

func (s *Store) saveProfile(ctx context.Context) {
	if !s.persistProfile {
		return
	}
	data, err := json.Marshal(s.state.User)
	if err != nil {
		s.log.WithError(err).Warn("序列化用户资料失败")
		return
	}
	s.write(ctx, KeyUser, string(data))
}

func (s *Store) read(ctx context.Context, key string) (string, bool) {
	if s.storage == nil {
		return "", false
	}
	value, ok, err := s.storage.Get(ctx, key)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("读取偏好失败，使用默认值")
		return "", false
	}
	return value, ok
}

// write 写入失败只记录日志，内存状态照常生效
func (s *Store) write(ctx context.Context, key, value string) {
	if s.storage == nil {
		return
	}
	if err := s.storage.Set(ctx, key, value); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("保存偏好失败")
	}
}
