package handlers

import (
	"rentdesk/internal/services"
	"rentdesk/internal/store"
	"rentdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler 登录和页面导航
type AuthHandler struct {
	sessionService *services.SessionService
}

func NewAuthHandler(sessionService *services.SessionService) *AuthHandler {
	return &AuthHandler{sessionService: sessionService}
}

// LoginRequest 登录请求。任何邮箱和密码都可以登录
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 登录并进入仪表盘
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	session, err := h.sessionService.Login(req.Email)
	if err != nil {
		response.ServerError(c, "生成Token失败")
		return
	}
	response.Success(c, session)
}

// Logout 登出并回到登录页
func (h *AuthHandler) Logout(c *gin.Context) {
	response.SuccessWithMessage(c, "登出成功", h.sessionService.Logout())
}

// NavigateRequest 页面切换请求
type NavigateRequest struct {
	Screen   string `json:"screen" binding:"required"`
	TenantID string `json:"tenantId"`
}

// Navigation 当前导航状态
func (h *AuthHandler) Navigation(c *gin.Context) {
	nav := h.sessionService.Navigation()
	response.Success(c, gin.H{
		"navigation":     nav,
		"showsBottomNav": nav.ShowsBottomNav(),
	})
}

// Navigate 切换页面，可同时选中租客。未知页面同样接受
func (h *AuthHandler) Navigate(c *gin.Context) {
	var req NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	nav := h.sessionService.Navigate(store.Screen(req.Screen), req.TenantID)
	response.Success(c, gin.H{
		"navigation":     nav,
		"showsBottomNav": nav.ShowsBottomNav(),
	})
}
