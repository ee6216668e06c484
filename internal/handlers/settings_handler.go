package handlers

import (
	"rentdesk/internal/preferences"
	"rentdesk/internal/services"
	"rentdesk/pkg/errors"
	"rentdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

// LanguageRequest 切换语言
type LanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

// ProfileRequest 编辑资料，未提供的字段保持不变
type ProfileRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone" binding:"omitempty,phone"`
}

// ChangePasswordRequest 修改密码
type ChangePasswordRequest struct {
	OldPassword     string `json:"oldPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=NewPassword"`
}

type SettingsHandler struct {
	service *services.SettingsService
}

func NewSettingsHandler(service *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// ProfileView 返回给界面的资料，不包含密码
type ProfileView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// SettingsView 设置页数据
type SettingsView struct {
	DarkMode bool        `json:"darkMode"`
	Language string      `json:"language"`
	User     ProfileView `json:"user"`
}

func settingsView(st preferences.State) SettingsView {
	return SettingsView{
		DarkMode: st.DarkMode,
		Language: st.Language,
		User:     ProfileView{Name: st.User.Name, Email: st.User.Email, Phone: st.User.Phone},
	}
}

// Get 当前设置
func (h *SettingsHandler) Get(c *gin.Context) {
	response.Success(c, settingsView(h.service.State()))
}

// ToggleDarkMode 切换深色模式
func (h *SettingsHandler) ToggleDarkMode(c *gin.Context) {
	dark := h.service.ToggleDarkMode(c.Request.Context())
	response.Success(c, gin.H{"darkMode": dark})
}

// SetLanguage 切换语言，语言代码不做限制
func (h *SettingsHandler) SetLanguage(c *gin.Context) {
	var req LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	response.Success(c, settingsView(h.service.SetLanguage(c.Request.Context(), req.Language)))
}

// Languages 语言列表
func (h *SettingsHandler) Languages(c *gin.Context) {
	response.Success(c, h.service.Languages())
}

// Translations 当前语言的全部翻译
func (h *SettingsHandler) Translations(c *gin.Context) {
	if key := c.Query("key"); key != "" {
		response.Success(c, gin.H{"key": key, "value": h.service.Translate(key)})
		return
	}
	response.Success(c, gin.H{
		"language":     h.service.State().Language,
		"translations": h.service.Translations(),
	})
}

// Coverage 词典覆盖情况
func (h *SettingsHandler) Coverage(c *gin.Context) {
	response.Success(c, h.service.Coverage())
}

// UpdateProfile 编辑资料
func (h *SettingsHandler) UpdateProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	state := h.service.UpdateProfile(c.Request.Context(), preferences.ProfilePatch{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	response.Success(c, settingsView(state).User)
}

// ChangePassword 修改密码
func (h *SettingsHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	n, ok := h.service.ChangePassword(c.Request.Context(), req.OldPassword, req.NewPassword)
	if !ok {
		response.Error(c, errors.CodePasswordIncorrect, "Current password is incorrect")
		return
	}
	response.SuccessWithMessage(c, n.Message, n)
}

// Notices 当前显示中的提示
func (h *SettingsHandler) Notices(c *gin.Context) {
	response.Success(c, h.service.Notices())
}
