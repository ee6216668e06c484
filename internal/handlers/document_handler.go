package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"rentdesk/internal/documents"
	"rentdesk/internal/services"
	pkgerrors "rentdesk/pkg/errors"
	"rentdesk/pkg/logger"
	"rentdesk/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type DocumentHandler struct {
	docs    *documents.Service
	tenants *services.TenantService
}

func NewDocumentHandler(docs *documents.Service, tenants *services.TenantService) *DocumentHandler {
	return &DocumentHandler{docs: docs, tenants: tenants}
}

// List 租客的证明文件
func (h *DocumentHandler) List(c *gin.Context) {
	tenantID := c.Param("id")
	if !h.tenants.Exists(tenantID) {
		response.NotFound(c, "租客不存在")
		return
	}
	response.Success(c, h.docs.List(tenantID))
}

// Upload 上传身份证明，表单字段 file，仅接受图片和 PDF
func (h *DocumentHandler) Upload(c *gin.Context) {
	tenantID := c.Param("id")
	if !h.tenants.Exists(tenantID) {
		response.NotFound(c, "租客不存在")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "请选择要上传的文件")
		return
	}
	if fileHeader.Size > h.docs.MaxSize() {
		response.Error(c, pkgerrors.CodeFileTooLarge, fmt.Sprintf("文件不能超过 %dMB", h.docs.MaxSize()/1024/1024))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "读取上传文件失败")
		return
	}
	defer file.Close()

	doc, err := h.docs.Upload(c.Request.Context(), tenantID, fileHeader.Filename, file)
	switch {
	case errors.Is(err, documents.ErrUnsupportedType):
		response.Error(c, pkgerrors.CodeUnsupportedFile, "只支持图片和PDF文件")
		return
	case errors.Is(err, documents.ErrTooLarge):
		response.Error(c, pkgerrors.CodeFileTooLarge, fmt.Sprintf("文件不能超过 %dMB", h.docs.MaxSize()/1024/1024))
		return
	case errors.Is(err, documents.ErrEmptyFile):
		response.BadRequest(c, "文件为空")
		return
	case err != nil:
		logger.GetLogger().WithError(err).WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"filename":  fileHeader.Filename,
		}).Error("上传证明文件失败")
		response.ServerError(c, "上传失败")
		return
	}

	response.Success(c, doc)
}

// Download 下载文件，thumbnail=true 时返回缩略图
func (h *DocumentHandler) Download(c *gin.Context) {
	doc, rc, err := h.docs.Open(c.Request.Context(), c.Param("docId"), c.Query("thumbnail") == "true")
	if err != nil {
		storeError(c, err, "读取文件失败")
		return
	}
	defer rc.Close()

	contentType := doc.ContentType
	if c.Query("thumbnail") == "true" {
		contentType = "image/jpeg"
	} else {
		c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", doc.Name))
	}
	c.Status(http.StatusOK)
	c.Header("Content-Type", contentType)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		logger.GetLogger().WithError(err).WithField("document_id", doc.ID).Warn("发送文件失败")
	}
}

// Delete 删除文件
func (h *DocumentHandler) Delete(c *gin.Context) {
	if err := h.docs.Delete(c.Request.Context(), c.Param("docId")); err != nil {
		storeError(c, err, "删除失败")
		return
	}
	response.SuccessWithMessage(c, "删除成功", nil)
}
