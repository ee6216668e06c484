package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"rentdesk/internal/reports"
	"rentdesk/internal/services"
	"rentdesk/pkg/logger"
	"rentdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Dashboard 仪表盘
func (h *ReportHandler) Dashboard(c *gin.Context) {
	response.Success(c, h.service.Dashboard())
}

// Reports 报表页
func (h *ReportHandler) Reports(c *gin.Context) {
	r, err := h.service.Reports(c.Request.Context())
	if err != nil {
		logger.GetLogger().WithError(err).Error("读取报表趋势失败")
		response.ServerError(c, "查询失败")
		return
	}
	response.Success(c, r)
}

// Export 下载 xlsx 报表
func (h *ReportHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.service.Export(&buf); err != nil {
		logger.GetLogger().WithError(err).Error("导出报表失败")
		response.ServerError(c, "导出失败")
		return
	}

	filename := fmt.Sprintf("report_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, reports.ContentType, buf.Bytes())
}

// Snapshot 立即记录一次报表快照
func (h *ReportHandler) Snapshot(c *gin.Context) {
	snap, err := h.service.RecordSnapshot(c.Request.Context())
	if err != nil {
		logger.GetLogger().WithError(err).Error("记录报表快照失败")
		response.ServerError(c, "记录快照失败")
		return
	}
	response.Success(c, snap)
}
