package models

import (
	"time"

	"gorm.io/gorm"
)

// Institution is a pricing tier (e.g. general public vs. government
// institution). RatePerPerson is Rupiah per person per night, stored as an
// integer so multi-night multi-person totals never accumulate float error.
// Reservations snapshot the rate at booking time; editing an Institution
// never rewrites already-booked reservations.
type Institution struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name          string `json:"name" gorm:"type:varchar(100)"`
	RatePerPerson int64  `json:"ratePerPerson" gorm:"column:rate_per_person"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
