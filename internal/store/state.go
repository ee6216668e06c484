package store

import "rentdesk/internal/models"

// Screen 当前页面标记，由界面层解释
type Screen string

// 已知页面，未列出的标记同样接受
const (
	ScreenLogin          Screen = "login"
	ScreenDashboard      Screen = "dashboard"
	ScreenTenants        Screen = "tenants"
	ScreenAddTenant      Screen = "add-tenant"
	ScreenEditTenant     Screen = "edit-tenant"
	ScreenTenantDetails  Screen = "tenant-details"
	ScreenRooms          Screen = "rooms"
	ScreenPayments       Screen = "payments"
	ScreenBills          Screen = "bills"
	ScreenLeftTenants    Screen = "left-tenants"
	ScreenReports        Screen = "reports"
	ScreenSettings       Screen = "settings"
	ScreenEditProfile    Screen = "edit-profile"
	ScreenChangePassword Screen = "change-password"
	ScreenLanguage       Screen = "language"
)

var screensWithoutBottomNav = map[Screen]bool{
	ScreenAddTenant:     true,
	ScreenEditTenant:    true,
	ScreenTenantDetails: true,
	ScreenLeftTenants:   true,
	ScreenReports:       true,
	ScreenSettings:      true,
}

// ShowsBottomNav 已登录且不是详情类页面时显示底部导航
func (n Navigation) ShowsBottomNav() bool {
	return n.IsAuthenticated && !screensWithoutBottomNav[n.CurrentScreen]
}

// Navigation 导航状态
type Navigation struct {
	CurrentScreen    Screen `json:"currentScreen"`
	SelectedTenantID string `json:"selectedTenantId,omitempty"`
	IsAuthenticated  bool   `json:"isAuthenticated"`
}

// State 某一版本的完整应用状态。
// 快照之间共享未修改的集合，调用方不得修改切片内容
type State struct {
	Version    uint64             `json:"version"`
	Tenants    []models.Tenant    `json:"tenants"`
	Rooms      []models.Room      `json:"rooms"`
	Payments   []models.Payment   `json:"payments"`
	LightBills []models.LightBill `json:"lightBills"`
	Navigation Navigation         `json:"navigation"`
}

// FindTenant 按ID查找租客
func (s State) FindTenant(id string) (models.Tenant, bool) {
	for _, t := range s.Tenants {
		if t.ID == id {
			return t, true
		}
	}
	return models.Tenant{}, false
}

// FindRoom 按ID查找房间
func (s State) FindRoom(id string) (models.Room, bool) {
	for _, r := range s.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return models.Room{}, false
}

// SelectedTenant 当前选中的租客
func (s State) SelectedTenant() (models.Tenant, bool) {
	if s.Navigation.SelectedTenantID == "" {
		return models.Tenant{}, false
	}
	return s.FindTenant(s.Navigation.SelectedTenantID)
}

// 集合名称，用于变更通知
const (
	CollectionTenants    = "tenants"
	CollectionRooms      = "rooms"
	CollectionPayments   = "payments"
	CollectionLightBills = "lightBills"
	CollectionNavigation = "navigation"
)

// Change 一次状态替换的描述
type Change struct {
	Version    uint64 `json:"version"`
	Collection string `json:"collection"`
	Action     string `json:"action"`
	ID         string `json:"id,omitempty"`
}
