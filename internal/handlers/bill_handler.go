package handlers

import (
	"rentdesk/internal/services"
	"rentdesk/internal/store"
	"rentdesk/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CreateBillRequest 新增电费账单
type CreateBillRequest struct {
	TenantID string          `json:"tenantId" binding:"required"`
	Units    decimal.Decimal `json:"units"`
	Amount   decimal.Decimal `json:"amount"`
	Month    string          `json:"month" binding:"required"`
	Date     string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Status   string          `json:"status" binding:"omitempty,oneof=paid pending"`
}

type BillHandler struct {
	service *services.BillService
}

func NewBillHandler(service *services.BillService) *BillHandler {
	return &BillHandler{service: service}
}

// List 电费账单页，tab=thisMonth|pending|paid|all
func (h *BillHandler) List(c *gin.Context) {
	bills, err := h.service.List(c.Query("tab"))
	if err != nil {
		storeError(c, err, "查询失败")
		return
	}
	response.Success(c, bills)
}

// Create 新增电费账单
func (h *BillHandler) Create(c *gin.Context) {
	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if !validateMoney(c, req.Units, "Units") || !validatePositive(c, req.Amount, "Amount") {
		return
	}

	bill, err := h.service.Create(store.LightBillDraft{
		TenantID: req.TenantID,
		Units:    req.Units,
		Amount:   req.Amount,
		Month:    req.Month,
		Date:     req.Date,
		Status:   req.Status,
	})
	if err != nil {
		storeError(c, err, "创建失败")
		return
	}
	response.Success(c, bill)
}

// SetStatus 修改账单状态
func (h *BillHandler) SetStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	bill, err := h.service.SetStatus(c.Param("id"), req.Status)
	if err != nil {
		storeError(c, err, "更新失败")
		return
	}
	response.Success(c, bill)
}
