package services

import (
	"errors"
	"strings"

	"wisma-backend/models"

	"gorm.io/gorm"
)

// RoomService is the room registry: it owns the
// (building, room number) uniqueness invariant and the field constraints
// checked before any room mutation.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// checkDuplicate looks for another room with the same number in the same
// building. excludeID skips the record being updated. Runs before any
// other validation so a taken number short-circuits the whole mutation.
func (s *RoomService) checkDuplicate(buildingID uint, roomNumber string, excludeID uint) error {
	q := s.DB.Model(&models.Room{}).
		Where("building_id = ? AND room_number = ?", buildingID, roomNumber)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateRoom
	}
	return nil
}

func validateRoomFields(room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" || len(room.RoomNumber) > 5 {
		return ErrInvalidInput
	}
	if room.Capacity < 1 {
		return ErrInvalidInput
	}
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	if !models.ValidRoomStatus(room.Status) {
		return ErrInvalidInput
	}
	return nil
}

func (s *RoomService) Create(room models.Room) (models.Room, error) {
	if err := s.checkDuplicate(room.BuildingID, strings.TrimSpace(room.RoomNumber), 0); err != nil {
		return models.Room{}, err
	}
	if err := validateRoomFields(&room); err != nil {
		return models.Room{}, err
	}

	var building models.Building
	if err := s.DB.First(&building, room.BuildingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, ErrNotFound
		}
		return models.Room{}, err
	}

	if err := s.DB.Create(&room).Error; err != nil {
		return models.Room{}, err
	}
	return room, nil
}

func (s *RoomService) Update(room models.Room) (models.Room, error) {
	var existing models.Room
	if err := s.DB.First(&existing, room.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, ErrNotFound
		}
		return models.Room{}, err
	}

	if room.BuildingID == 0 {
		room.BuildingID = existing.BuildingID
	}

	if err := s.checkDuplicate(room.BuildingID, strings.TrimSpace(room.RoomNumber), room.ID); err != nil {
		return models.Room{}, err
	}
	if err := validateRoomFields(&room); err != nil {
		return models.Room{}, err
	}

	if err := s.DB.Model(&models.Room{}).Where("id = ?", room.ID).Updates(map[string]interface{}{
		"building_id": room.BuildingID,
		"room_number": room.RoomNumber,
		"capacity":    room.Capacity,
		"status":      room.Status,
		"facilities":  room.Facilities,
		"description": room.Description,
	}).Error; err != nil {
		return models.Room{}, err
	}

	var updated models.Room
	if err := s.DB.Preload("Building").First(&updated, room.ID).Error; err != nil {
		return models.Room{}, err
	}
	return updated, nil
}

// GetAll lists rooms, optionally filtered to one building, ordered by
// room number the way the admin page shows them.
func (s *RoomService) GetAll(buildingID *uint) ([]models.Room, error) {
	var rooms []models.Room
	q := s.DB.Preload("Building").Order("room_number ASC")
	if buildingID != nil {
		q = q.Where("building_id = ?", *buildingID)
	}
	err := q.Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	err := s.DB.Preload("Building").First(&room, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return room, ErrNotFound
	}
	return room, err
}

// Delete removes a room. A room still referenced by any reservation is
// never removed, only its status can change. Unreferenced rooms are hard
// deleted: a soft-deleted row would keep its (building, number) pair
// stuck in the unique index and the number could never be registered
// again.
func (s *RoomService) Delete(id uint) error {
	var refs int64
	if err := s.DB.Model(&models.Reservation{}).Where("room_id = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return ErrConflict
	}

	result := s.DB.Unscoped().Delete(&models.Room{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
