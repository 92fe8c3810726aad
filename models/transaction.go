package models

import (
	"time"

	"gorm.io/gorm"
)

// Transaction payment statuses.
const (
	TransactionAwaitingPayment = "awaiting_payment"
	TransactionPaid            = "paid"
	TransactionRefunded        = "refunded"
)

// Transaction is the payment record for a reservation. It is created once
// the reservation price is finalized and is mutated only by payment-status
// updates. Amounts are integer Rupiah.
type Transaction struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReservationID uint `gorm:"uniqueIndex;column:reservation_id" json:"reservation_id"`

	Subtotal int64 `gorm:"column:subtotal" json:"subtotal"`
	Total    int64 `gorm:"column:total" json:"total"`

	Status          string     `gorm:"column:status;size:20" json:"status"`
	PaymentProofRef string     `gorm:"column:payment_proof_ref;size:255" json:"payment_proof_ref,omitempty"`
	PaidAt          *time.Time `gorm:"column:paid_at" json:"paid_at,omitempty"`
	RefundedAt      *time.Time `gorm:"column:refunded_at" json:"refunded_at,omitempty"`
}
