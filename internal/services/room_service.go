package services

import (
	"rentdesk/internal/models"
	"rentdesk/internal/store"
	"rentdesk/internal/views"
)

// RoomService 房间业务
type RoomService struct {
	store *store.Store
	opts  views.Options
}

// NewRoomService 创建房间服务
func NewRoomService(s *store.Store, opts views.Options) *RoomService {
	return &RoomService{store: s, opts: opts}
}

// Overview 房间页
func (s *RoomService) Overview() views.Rooms {
	return views.BuildRooms(s.store.Snapshot(), s.opts)
}

// Assign 分配房间
func (s *RoomService) Assign(roomID, tenantID string) (models.Room, error) {
	return s.store.AssignRoom(roomID, tenantID)
}

// Vacate 清空房间
func (s *RoomService) Vacate(roomID string) (models.Room, error) {
	return s.store.VacateRoom(roomID)
}
