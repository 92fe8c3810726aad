package models

import (
	"gorm.io/gorm"
)

// Room statuses. "occupied" is a cached view of reservation state: it is
// only flipped inside the same transaction as the reservation transition
// that causes it. "maintenance" is set by staff and takes the room out of
// availability entirely.
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

type Room struct {
	gorm.Model

	BuildingID uint   `json:"buildingId" gorm:"column:building_id;index:idx_building_room,unique"`
	RoomNumber string `json:"roomNumber" gorm:"column:room_number;index:idx_building_room,unique;type:varchar(5)"`

	Capacity    int    `json:"capacity"`
	Status      string `json:"status" gorm:"type:varchar(20)"`
	Facilities  string `json:"facilities" gorm:"type:varchar(255)"`
	Description string `json:"description" gorm:"type:varchar(255)"`

	Building Building `gorm:"foreignKey:BuildingID" json:"building,omitempty"`
}

func ValidRoomStatus(status string) bool {
	switch status {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance:
		return true
	}
	return false
}
