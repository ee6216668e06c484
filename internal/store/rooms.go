package store

import "rentdesk/internal/models"

// AssignRoom 将房间分配给租客，复制租客姓名和租金到房间上
func (s *Store) AssignRoom(roomID, tenantID string) (models.Room, error) {
	var updated models.Room
	_, err := s.update(CollectionRooms, "assign", func(cur State) (State, string, error) {
		tenant, ok := cur.FindTenant(tenantID)
		if !ok {
			return cur, roomID, notFound("tenant", tenantID)
		}
		for i, r := range cur.Rooms {
			if r.ID != roomID {
				continue
			}
			rent := tenant.RentAmount
			r.Status = models.RoomStatusOccupied
			r.TenantID = tenant.ID
			r.TenantName = tenant.Name
			r.RentAmount = &rent
			updated = r
			cur.Rooms = replaceAt(cur.Rooms, i, r)
			return cur, roomID, nil
		}
		return cur, roomID, notFound("room", roomID)
	})
	return updated, err
}

// VacateRoom 清空房间
func (s *Store) VacateRoom(roomID string) (models.Room, error) {
	var updated models.Room
	_, err := s.update(CollectionRooms, "vacate", func(cur State) (State, string, error) {
		for i, r := range cur.Rooms {
			if r.ID != roomID {
				continue
			}
			updated = models.Room{ID: r.ID, RoomNumber: r.RoomNumber, Status: models.RoomStatusVacant}
			cur.Rooms = replaceAt(cur.Rooms, i, updated)
			return cur, roomID, nil
		}
		return cur, roomID, notFound("room", roomID)
	})
	return updated, err
}

// SetRooms 整体替换房间集合
func (s *Store) SetRooms(rooms []models.Room) State {
	next, _ := s.update(CollectionRooms, "replace", func(cur State) (State, string, error) {
		cur.Rooms = cloneSlice(rooms)
		return cur, "", nil
	})
	return next
}
