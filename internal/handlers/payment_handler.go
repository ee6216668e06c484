package handlers

import (
	"rentdesk/internal/services"
	"rentdesk/internal/store"
	"rentdesk/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest 记录付款
type CreatePaymentRequest struct {
	TenantID string          `json:"tenantId" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Month    string          `json:"month" binding:"required"`
	Date     string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Status   string          `json:"status" binding:"omitempty,oneof=paid pending"`
	Mode     string          `json:"mode" binding:"omitempty,oneof=cash online cheque"`
}

// StatusRequest 修改付款/账单状态
type StatusRequest struct {
	Status string `json:"status" binding:"required,oneof=paid pending"`
}

type PaymentHandler struct {
	service *services.PaymentService
}

func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// List 付款页，tab=paid|pending
func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.service.List(c.Query("tab"))
	if err != nil {
		storeError(c, err, "查询失败")
		return
	}
	response.Success(c, payments)
}

// Create 记录付款
func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if !validatePositive(c, req.Amount, "Amount") {
		return
	}

	payment, err := h.service.Create(store.PaymentDraft{
		TenantID: req.TenantID,
		Amount:   req.Amount,
		Month:    req.Month,
		Date:     req.Date,
		Status:   req.Status,
		Mode:     req.Mode,
	})
	if err != nil {
		storeError(c, err, "创建失败")
		return
	}
	response.Success(c, payment)
}

// SetStatus 修改付款状态
func (h *PaymentHandler) SetStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	payment, err := h.service.SetStatus(c.Param("id"), req.Status)
	if err != nil {
		storeError(c, err, "更新失败")
		return
	}
	response.Success(c, payment)
}
