package views

import (
	"rentdesk/internal/models"
	"rentdesk/internal/store"
)

// Rooms 房间页
type Rooms struct {
	Total    int           `json:"total"`
	Occupied int           `json:"occupied"`
	Vacant   int           `json:"vacant"`
	Items    []models.Room `json:"items"`
}

// BuildRooms 计算房间页
func BuildRooms(st store.State, opts Options) Rooms {
	name := opts.names(st)
	items := make([]models.Room, len(st.Rooms))
	for i, r := range st.Rooms {
		if r.IsOccupied() {
			r.TenantName = name(r.TenantID, r.TenantName)
		}
		items[i] = r
	}
	return Rooms{
		Total:    len(st.Rooms),
		Occupied: count(st.Rooms, models.Room.IsOccupied),
		Vacant:   count(st.Rooms, func(r models.Room) bool { return r.Status == models.RoomStatusVacant }),
		Items:    items,
	}
}
