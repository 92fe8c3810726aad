package models

import (
	"time"

	"gorm.io/gorm"
)

type Building struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `json:"name" gorm:"column:name;uniqueIndex;type:varchar(100)"`
	Address string `json:"address" gorm:"type:varchar(255)"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// One-To-Many Relation: Building -> Rooms
	Rooms []Room `gorm:"foreignKey:BuildingID" json:"rooms,omitempty"`
}
