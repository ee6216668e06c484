package services

import (
	"time"

	"rentdesk/internal/store"
	"rentdesk/pkg/jwt"
)

// Session 登录结果
type Session struct {
	Token      string           `json:"token"`
	ExpiresAt  int64            `json:"expiresAt"`
	Navigation store.Navigation `json:"navigation"`
}

// SessionService 登录和页面导航。登录不校验凭据
type SessionService struct {
	store      *store.Store
	jwtManager *jwt.JWTManager
}

// NewSessionService 创建会话服务
func NewSessionService(s *store.Store, jwtManager *jwt.JWTManager) *SessionService {
	return &SessionService{store: s, jwtManager: jwtManager}
}

// Login 任意邮箱和密码都可以登录，进入仪表盘并签发令牌
func (s *SessionService) Login(email string) (Session, error) {
	token, err := s.jwtManager.GenerateToken(email)
	if err != nil {
		return Session{}, err
	}
	st := s.store.Login()
	return Session{
		Token:      token,
		ExpiresAt:  time.Now().Add(s.jwtManager.GetTokenDuration()).Unix(),
		Navigation: st.Navigation,
	}, nil
}

// Logout 清除登录标记并回到登录页
func (s *SessionService) Logout() store.Navigation {
	return s.store.Logout().Navigation
}

// Navigation 当前导航状态
func (s *SessionService) Navigation() store.Navigation {
	return s.store.Snapshot().Navigation
}

// Navigate 切换页面，tenantID 非空时同时选中租客
func (s *SessionService) Navigate(screen store.Screen, tenantID string) store.Navigation {
	return s.store.NavigateTo(screen, tenantID).Navigation
}

// SelectTenant 选中租客
func (s *SessionService) SelectTenant(id string) store.Navigation {
	return s.store.SelectTenant(id).Navigation
}
