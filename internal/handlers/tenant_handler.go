package handlers

import (
	"rentdesk/internal/services"
	"rentdesk/internal/store"
	"rentdesk/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TenantRequest 新增/编辑租客
type TenantRequest struct {
	Name       string          `json:"name" binding:"required"`
	Phone      string          `json:"phone" binding:"required,phone"`
	RoomNumber string          `json:"roomNumber" binding:"required"`
	RentAmount decimal.Decimal `json:"rentAmount"`
	Deposit    decimal.Decimal `json:"deposit"`
	StartDate  string          `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate    string          `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Status     string          `json:"status" binding:"omitempty,oneof=active left"`
}

func (r TenantRequest) draft() store.TenantDraft {
	return store.TenantDraft{
		Name:       r.Name,
		Phone:      r.Phone,
		RoomNumber: r.RoomNumber,
		RentAmount: r.RentAmount,
		Deposit:    r.Deposit,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Status:     r.Status,
	}
}

// MarkLeftRequest 退租请求，日期为空时取今天
type MarkLeftRequest struct {
	EndDate string `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

type TenantHandler struct {
	service *services.TenantService
}

func NewTenantHandler(service *services.TenantService) *TenantHandler {
	return &TenantHandler{service: service}
}

// List 租客列表，支持 filter=all|paid|pending|left 和 q 搜索
func (h *TenantHandler) List(c *gin.Context) {
	list, err := h.service.List(c.Query("filter"), c.Query("q"))
	if err != nil {
		storeError(c, err, "查询失败")
		return
	}
	response.Success(c, list)
}

// Left 已退租租客，支持 q 搜索和 year 筛选
func (h *TenantHandler) Left(c *gin.Context) {
	left, err := h.service.Left(c.Query("q"), c.Query("year"))
	if err != nil {
		storeError(c, err, "查询失败")
		return
	}
	response.Success(c, left)
}

// Details 租客详情，tab=payments|pending|bills|documents
func (h *TenantHandler) Details(c *gin.Context) {
	details, err := h.service.Details(c.Param("id"), c.Query("tab"))
	if err != nil {
		storeError(c, err, "查询失败")
		return
	}
	response.Success(c, details)
}

// Open 选中租客并进入详情页
func (h *TenantHandler) Open(c *gin.Context) {
	details, err := h.service.Open(c.Param("id"))
	if err != nil {
		storeError(c, err, "查询失败")
		return
	}
	response.Success(c, details)
}

// Create 新增租客
func (h *TenantHandler) Create(c *gin.Context) {
	var req TenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if !validateMoney(c, req.RentAmount, "RentAmount") || !validateMoney(c, req.Deposit, "Deposit") {
		return
	}

	response.Success(c, h.service.Create(req.draft()))
}

// Update 编辑租客
func (h *TenantHandler) Update(c *gin.Context) {
	var req TenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if !validateMoney(c, req.RentAmount, "RentAmount") || !validateMoney(c, req.Deposit, "Deposit") {
		return
	}

	tenant, err := h.service.Update(c.Param("id"), req.draft())
	if err != nil {
		storeError(c, err, "更新失败")
		return
	}
	response.Success(c, tenant)
}

// MarkLeft 标记退租
func (h *TenantHandler) MarkLeft(c *gin.Context) {
	var req MarkLeftRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
	}

	tenant, err := h.service.MarkLeft(c.Param("id"), req.EndDate)
	if err != nil {
		storeError(c, err, "操作失败")
		return
	}
	response.Success(c, tenant)
}

// validateMoney 金额不能为负数
func validateMoney(c *gin.Context, v decimal.Decimal, field string) bool {
	if v.IsNegative() {
		response.BadRequest(c, fieldMessages[field])
		return false
	}
	return true
}

// validatePositive 金额必须大于0
func validatePositive(c *gin.Context, v decimal.Decimal, field string) bool {
	if !v.IsPositive() {
		response.BadRequest(c, fieldMessages[field])
		return false
	}
	return true
}
