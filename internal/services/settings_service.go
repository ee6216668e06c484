package services

import (
	"context"

	"rentdesk/internal/hub"
	"rentdesk/internal/i18n"
	"rentdesk/internal/notice"
	"rentdesk/internal/preferences"
)

// PasswordChangedMessage 修改密码成功提示
const PasswordChangedMessage = "Password changed successfully!"

// SettingsService 设置页：主题、语言、资料、密码
type SettingsService struct {
	prefs   *preferences.Store
	notices *notice.Board
	events  *hub.Hub
}

// NewSettingsService 创建设置服务，notices 和 events 可为空
func NewSettingsService(prefs *preferences.Store, notices *notice.Board, events *hub.Hub) *SettingsService {
	return &SettingsService{prefs: prefs, notices: notices, events: events}
}

// State 当前偏好
func (s *SettingsService) State() preferences.State {
	return s.prefs.State()
}

// ToggleDarkMode 切换深色模式
func (s *SettingsService) ToggleDarkMode(ctx context.Context) bool {
	return s.prefs.ToggleDarkMode(ctx)
}

// SetLanguage 设置语言
func (s *SettingsService) SetLanguage(ctx context.Context, code string) preferences.State {
	s.prefs.SetLanguage(ctx, code)
	return s.prefs.State()
}

// UpdateProfile 更新资料
func (s *SettingsService) UpdateProfile(ctx context.Context, patch preferences.ProfilePatch) preferences.State {
	s.prefs.UpdateUser(ctx, patch)
	return s.prefs.State()
}

// ChangePassword 修改密码，成功时发布自动消失的提示
func (s *SettingsService) ChangePassword(ctx context.Context, oldPassword, newPassword string) (notice.Notice, bool) {
	if !s.prefs.ChangePassword(ctx, oldPassword, newPassword) {
		return notice.Notice{}, false
	}
	if s.notices == nil {
		return notice.Notice{Message: PasswordChangedMessage}, true
	}
	n, ok := s.notices.Post(PasswordChangedMessage)
	if ok && s.events != nil {
		s.events.Publish(hub.EventNotice, NoticeEvent{Notice: n, Visible: true})
	}
	return n, true
}

// Notices 当前显示中的提示
func (s *SettingsService) Notices() []notice.Notice {
	if s.notices == nil {
		return nil
	}
	return s.notices.Active()
}

// Languages 可选语言
func (s *SettingsService) Languages() []i18n.Language {
	return i18n.Languages
}

// Translations 当前语言下全部键的翻译结果
func (s *SettingsService) Translations() map[string]string {
	out := make(map[string]string, len(i18n.AllKeys))
	for _, k := range i18n.AllKeys {
		out[string(k)] = s.prefs.Translate(string(k))
	}
	return out
}

// Translate 翻译单个键
func (s *SettingsService) Translate(key string) string {
	return s.prefs.Translate(key)
}

// Coverage 各语言的词条覆盖情况
func (s *SettingsService) Coverage() []i18n.Coverage {
	return s.prefs.Catalog().Coverage()
}

// NoticeEvent 提示事件
type NoticeEvent struct {
	notice.Notice
	Visible bool `json:"visible"`
}

// NoticeDismissed 提示消失时广播，作为 notice.DismissFunc 使用
func NoticeDismissed(events *hub.Hub) notice.DismissFunc {
	return func(n notice.Notice) {
		events.Publish(hub.EventNotice, NoticeEvent{Notice: n, Visible: false})
	}
}
