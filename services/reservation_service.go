package services

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"wisma-backend/models"
	"wisma-backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReservationService owns the reservation lifecycle:
// pending -> checked_in -> checked_out, pending -> cancelled. It ties
// together the availability check, the room pick, and the price snapshot.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

// CreateReservationInput carries the booking request. Dates are
// "2006-01-02" strings the way the booking form submits them.
type CreateReservationInput struct {
	GuestName     string
	GuestPhone    string
	GuestEmail    string
	InstitutionID uint
	BuildingID    *uint
	CheckIn       string
	CheckOut      string
	Headcount     int
	DocumentRef   string
	GuestList     []map[string]interface{}
}

// lockForUpdate adds a row lock inside a transaction. SQLite (used in
// tests) has no row locks; its transactions already serialize writers.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func parseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	ci, err := time.Parse("2006-01-02", checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	co, err := time.Parse("2006-01-02", checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	if !ci.Before(co) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	return ci, co, nil
}

// Create books the lowest-numbered free room for the range, stamps the
// rate snapshot, and opens an awaiting_payment transaction, all in one
// storage transaction. The candidate rooms are locked before the overlap
// re-check so two concurrent requests for the same range cannot both take
// the last room; the loser sees ErrNoAvailability and must not be
// retried automatically.
func (s *ReservationService) Create(input CreateReservationInput) (models.Reservation, error) {
	var result models.Reservation

	ci, co, err := parseStayDates(input.CheckIn, input.CheckOut)
	if err != nil {
		return result, err
	}

	if input.Headcount < 1 {
		return result, ErrInvalidInput
	}
	if strings.TrimSpace(input.GuestName) == "" {
		return result, ErrInvalidInput
	}

	guestListJSON, err := json.Marshal(input.GuestList)
	if err != nil {
		return result, ErrInvalidInput
	}

	nights := Nights(ci, co)

	var reservationID uint
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var institution models.Institution
		if err := tx.First(&institution, input.InstitutionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		quote, err := ComputePrice(institution.RatePerPerson, input.Headcount, nights)
		if err != nil {
			return err
		}

		// Lock the candidate rooms, then pick the lowest room number among
		// those with no overlapping active reservation. The overlap check
		// runs on the locked rows so it is atomic with the insert below.
		conflicting := tx.Model(&models.Reservation{}).
			Select("room_id").
			Where("status IN ?", activeStatuses()).
			Where("check_in < ? AND check_out > ?", co, ci)

		roomQuery := lockForUpdate(tx).
			Where("status <> ?", models.RoomStatusMaintenance).
			Where("id NOT IN (?)", conflicting).
			Order("room_number ASC, id ASC")
		if input.BuildingID != nil {
			roomQuery = roomQuery.Where("building_id = ?", *input.BuildingID)
		}

		var room models.Room
		if err := roomQuery.First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoAvailability
			}
			return err
		}

		reservation := models.Reservation{
			ReferenceCode: utils.GenerateReferenceCode(),
			GuestName:     strings.TrimSpace(input.GuestName),
			GuestPhone:    strings.TrimSpace(input.GuestPhone),
			GuestEmail:    strings.TrimSpace(input.GuestEmail),
			InstitutionID: institution.ID,
			RoomID:        room.ID,
			Headcount:     input.Headcount,
			CheckIn:       ci,
			CheckOut:      co,
			Nights:        nights,
			Status:        models.ReservationPending,
			RatePerPerson: institution.RatePerPerson,
			DocumentRef:   strings.TrimSpace(input.DocumentRef),
			GuestList:     datatypes.JSON(guestListJSON),
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}

		transaction := models.Transaction{
			ReservationID: reservation.ID,
			Subtotal:      quote.Subtotal,
			Total:         quote.Total,
			Status:        models.TransactionAwaitingPayment,
		}
		if err := tx.Create(&transaction).Error; err != nil {
			return err
		}

		reservationID = reservation.ID
		return nil
	})
	if txErr != nil {
		return result, txErr
	}

	return s.GetByID(reservationID)
}

// CheckIn moves a pending reservation to checked_in and marks the room
// occupied in the same transaction.
func (s *ReservationService) CheckIn(reservationID uint) (models.Reservation, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := lockForUpdate(tx).First(&reservation, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if reservation.Status != models.ReservationPending {
			return ErrInvalidState
		}

		now := time.Now().UTC()
		if err := tx.Model(&reservation).Updates(map[string]interface{}{
			"status":        models.ReservationCheckedIn,
			"checked_in_at": now,
		}).Error; err != nil {
			return err
		}

		return tx.Model(&models.Room{}).
			Where("id = ?", reservation.RoomID).
			Update("status", models.RoomStatusOccupied).Error
	})
	if err != nil {
		return models.Reservation{}, err
	}
	return s.GetByID(reservationID)
}

// CheckOut moves a checked_in reservation to its terminal checked_out
// state and releases the room.
func (s *ReservationService) CheckOut(reservationID uint) (models.Reservation, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := lockForUpdate(tx).First(&reservation, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if reservation.Status != models.ReservationCheckedIn {
			return ErrInvalidState
		}

		now := time.Now().UTC()
		if err := tx.Model(&reservation).Updates(map[string]interface{}{
			"status":         models.ReservationCheckedOut,
			"checked_out_at": now,
		}).Error; err != nil {
			return err
		}

		return tx.Model(&models.Room{}).
			Where("id = ?", reservation.RoomID).
			Update("status", models.RoomStatusAvailable).Error
	})
	if err != nil {
		return models.Reservation{}, err
	}
	return s.GetByID(reservationID)
}

// Cancel is allowed from pending only; a guest already checked in has to
// be checked out explicitly. A payment already taken flips to refunded in
// the same transaction.
func (s *ReservationService) Cancel(reservationID uint) (models.Reservation, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := lockForUpdate(tx).First(&reservation, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if reservation.Status != models.ReservationPending {
			return ErrInvalidState
		}

		now := time.Now().UTC()
		if err := tx.Model(&reservation).Updates(map[string]interface{}{
			"status":       models.ReservationCancelled,
			"cancelled_at": now,
		}).Error; err != nil {
			return err
		}

		return tx.Model(&models.Transaction{}).
			Where("reservation_id = ? AND status = ?", reservation.ID, models.TransactionPaid).
			Updates(map[string]interface{}{
				"status":      models.TransactionRefunded,
				"refunded_at": now,
			}).Error
	})
	if err != nil {
		return models.Reservation{}, err
	}
	return s.GetByID(reservationID)
}

func (s *ReservationService) GetByID(id uint) (models.Reservation, error) {
	var reservation models.Reservation
	err := s.DB.
		Preload("Room.Building").
		Preload("Institution").
		Preload("Transaction").
		First(&reservation, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return reservation, ErrNotFound
	}
	return reservation, err
}

func (s *ReservationService) GetAll() ([]models.Reservation, error) {
	var list []models.Reservation
	err := s.DB.
		Preload("Room.Building").
		Preload("Institution").
		Preload("Transaction").
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}
