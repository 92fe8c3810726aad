package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Reservation statuses. pending is the initial state; checked_out and
// cancelled are terminal. A checked_in reservation cannot be cancelled,
// only checked out.
const (
	ReservationPending    = "pending"
	ReservationCheckedIn  = "checked_in"
	ReservationCheckedOut = "checked_out"
	ReservationCancelled  = "cancelled"
)

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;size:16;uniqueIndex" json:"reference_code"`

	GuestName  string `gorm:"column:guest_name;size:100" json:"guest_name"`
	GuestPhone string `gorm:"column:guest_phone;size:30" json:"guest_phone,omitempty"`
	GuestEmail string `gorm:"column:guest_email;size:100" json:"guest_email,omitempty"`

	InstitutionID uint `gorm:"index;column:institution_id" json:"institution_id"`
	RoomID        uint `gorm:"index;column:room_id" json:"room_id"`

	Headcount int       `gorm:"column:headcount" json:"headcount"`
	CheckIn   time.Time `gorm:"column:check_in" json:"check_in"`
	CheckOut  time.Time `gorm:"column:check_out" json:"check_out"`
	Nights    int       `gorm:"column:nights" json:"nights"`

	Status string `gorm:"column:status;size:20;index" json:"status"`

	// Rate snapshot taken at booking time; immutable afterwards even if the
	// institution's rate changes.
	RatePerPerson int64 `gorm:"column:rate_per_person" json:"rate_per_person"`

	// Reference to the uploaded supporting document (upload handling itself
	// lives outside this service).
	DocumentRef string `gorm:"column:document_ref;size:255" json:"document_ref,omitempty"`

	// Draft list of accompanying guests as submitted with the booking form.
	GuestList datatypes.JSON `gorm:"column:guest_list" json:"guest_list,omitempty"`

	CheckedInAt  *time.Time `gorm:"column:checked_in_at" json:"checked_in_at,omitempty"`
	CheckedOutAt *time.Time `gorm:"column:checked_out_at" json:"checked_out_at,omitempty"`
	CancelledAt  *time.Time `gorm:"column:cancelled_at" json:"cancelled_at,omitempty"`

	Room        Room         `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Institution Institution  `gorm:"foreignKey:InstitutionID;references:ID" json:"institution,omitempty"`
	Transaction *Transaction `gorm:"foreignKey:ReservationID" json:"transaction,omitempty"`
}

// Active reports whether the reservation still occupies its room for
// availability purposes.
func (r Reservation) Active() bool {
	return r.Status == ReservationPending || r.Status == ReservationCheckedIn
}
