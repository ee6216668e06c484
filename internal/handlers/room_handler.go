package handlers

import (
	"rentdesk/internal/services"
	"rentdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

// AssignRoomRequest 分配房间请求
type AssignRoomRequest struct {
	TenantID string `json:"tenantId" binding:"required"`
}

type RoomHandler struct {
	service *services.RoomService
}

func NewRoomHandler(service *services.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

// List 房间页
func (h *RoomHandler) List(c *gin.Context) {
	response.Success(c, h.service.Overview())
}

// Assign 分配房间
func (h *RoomHandler) Assign(c *gin.Context) {
	var req AssignRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	room, err := h.service.Assign(c.Param("id"), req.TenantID)
	if err != nil {
		storeError(c, err, "操作失败")
		return
	}
	response.Success(c, room)
}

// Vacate 清空房间
func (h *RoomHandler) Vacate(c *gin.Context) {
	room, err := h.service.Vacate(c.Param("id"))
	if err != nil {
		storeError(c, err, "操作失败")
		return
	}
	response.Success(c, room)
}
