package services

import (
	"time"

	"wisma-backend/models"

	"gorm.io/gorm"
)

// AvailabilityService answers "how many rooms are free for this date
// range". A room is binary free/taken for a range: it is taken as soon as
// one pending or checked-in reservation overlaps the range, regardless of
// headcount. Occupancy is derived from the reservations table, not from
// the cached room status, so reads are always consistent with the latest
// committed reservation state.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// Overlaps reports whether two half-open date ranges conflict:
// a checkout on the same day as a new checkin does not.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// activeStatuses are the reservation states that keep a room occupied for
// availability purposes.
func activeStatuses() []string {
	return []string{models.ReservationPending, models.ReservationCheckedIn}
}

// scopedRooms builds the query for rooms with no conflicting reservation
// in the requested range. Maintenance rooms are never offered.
func (s *AvailabilityService) scopedRooms(buildingID *uint, checkIn, checkOut time.Time) *gorm.DB {
	conflicting := s.DB.Model(&models.Reservation{}).
		Select("room_id").
		Where("status IN ?", activeStatuses()).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)

	q := s.DB.Model(&models.Room{}).
		Where("status <> ?", models.RoomStatusMaintenance).
		Where("id NOT IN (?)", conflicting)
	if buildingID != nil {
		q = q.Where("building_id = ?", *buildingID)
	}
	return q
}

// CountAvailable returns the number of rooms free for [checkIn, checkOut),
// optionally limited to one building. Zero rooms registered is a zero
// count, not an error. No assumption about "now" is made; a past range is
// just a date comparison.
func (s *AvailabilityService) CountAvailable(buildingID *uint, checkIn, checkOut time.Time) (int64, error) {
	if !checkIn.Before(checkOut) {
		return 0, ErrInvalidRange
	}

	var count int64
	if err := s.scopedRooms(buildingID, checkIn, checkOut).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// AvailableRooms lists the free rooms for the range ordered by room
// number with id as tie-break across buildings, which is also the
// deterministic pick order when a reservation is created.
func (s *AvailabilityService) AvailableRooms(buildingID *uint, checkIn, checkOut time.Time) ([]models.Room, error) {
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidRange
	}

	var rooms []models.Room
	err := s.scopedRooms(buildingID, checkIn, checkOut).
		Preload("Building").
		Order("room_number ASC, id ASC").
		Find(&rooms).Error
	return rooms, err
}
