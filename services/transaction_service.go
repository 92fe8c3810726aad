package services

import (
	"errors"
	"strings"
	"time"

	"wisma-backend/models"

	"gorm.io/gorm"
)

// TransactionService handles payment-status updates. Amounts are computed
// once at reservation time and never recomputed here.
type TransactionService struct {
	DB *gorm.DB
}

func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{DB: db}
}

func (s *TransactionService) GetAll() ([]models.Transaction, error) {
	var list []models.Transaction
	err := s.DB.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (s *TransactionService) GetByID(id uint) (models.Transaction, error) {
	var transaction models.Transaction
	err := s.DB.First(&transaction, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return transaction, ErrNotFound
	}
	return transaction, err
}

// ConfirmPayment moves awaiting_payment -> paid and records the payment
// proof reference.
func (s *TransactionService) ConfirmPayment(id uint, paymentProofRef string) (models.Transaction, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var transaction models.Transaction
		if err := lockForUpdate(tx).First(&transaction, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if transaction.Status != models.TransactionAwaitingPayment {
			return ErrInvalidState
		}

		now := time.Now().UTC()
		return tx.Model(&transaction).Updates(map[string]interface{}{
			"status":            models.TransactionPaid,
			"payment_proof_ref": strings.TrimSpace(paymentProofRef),
			"paid_at":           now,
		}).Error
	})
	if err != nil {
		return models.Transaction{}, err
	}
	return s.GetByID(id)
}

// Refund moves paid -> refunded.
func (s *TransactionService) Refund(id uint) (models.Transaction, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var transaction models.Transaction
		if err := lockForUpdate(tx).First(&transaction, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if transaction.Status != models.TransactionPaid {
			return ErrInvalidState
		}

		now := time.Now().UTC()
		return tx.Model(&transaction).Updates(map[string]interface{}{
			"status":      models.TransactionRefunded,
			"refunded_at": now,
		}).Error
	})
	if err != nil {
		return models.Transaction{}, err
	}
	return s.GetByID(id)
}
