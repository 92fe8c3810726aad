package services

import (
	"errors"
	"testing"

	"wisma-backend/models"
)

func seedTransaction(t *testing.T, svc *TransactionService) models.Transaction {
	t.Helper()
	transaction := models.Transaction{
		ReservationID: 1,
		Subtotal:      100000,
		Total:         200000,
		Status:        models.TransactionAwaitingPayment,
	}
	if err := svc.DB.Create(&transaction).Error; err != nil {
		t.Fatalf("seed transaction: %v", err)
	}
	return transaction
}

func TestConfirmPayment(t *testing.T) {
	svc := NewTransactionService(openTestDB(t))
	transaction := seedTransaction(t, svc)

	paid, err := svc.ConfirmPayment(transaction.ID, "bukti-transfer.jpg")
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if paid.Status != models.TransactionPaid {
		t.Errorf("status = %s, want paid", paid.Status)
	}
	if paid.PaymentProofRef != "bukti-transfer.jpg" {
		t.Errorf("proof = %s", paid.PaymentProofRef)
	}
	if paid.PaidAt == nil {
		t.Error("paid_at not set")
	}

	// paying twice is a conflict, and the amounts never change
	if _, err := svc.ConfirmPayment(transaction.ID, "other.jpg"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("double pay: got %v, want ErrInvalidState", err)
	}
	if paid.Subtotal != 100000 || paid.Total != 200000 {
		t.Errorf("amounts changed: %d/%d", paid.Subtotal, paid.Total)
	}
}

func TestRefundTransitions(t *testing.T) {
	svc := NewTransactionService(openTestDB(t))
	transaction := seedTransaction(t, svc)

	// refund before payment is rejected
	if _, err := svc.Refund(transaction.ID); !errors.Is(err, ErrInvalidState) {
		t.Errorf("refund while awaiting: got %v, want ErrInvalidState", err)
	}

	if _, err := svc.ConfirmPayment(transaction.ID, ""); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	refunded, err := svc.Refund(transaction.ID)
	if err != nil {
		t.Fatalf("refund: %v", err)
	}
	if refunded.Status != models.TransactionRefunded {
		t.Errorf("status = %s, want refunded", refunded.Status)
	}

	if _, err := svc.Refund(transaction.ID); !errors.Is(err, ErrInvalidState) {
		t.Errorf("double refund: got %v, want ErrInvalidState", err)
	}
}

func TestTransactionNotFound(t *testing.T) {
	svc := NewTransactionService(openTestDB(t))

	if _, err := svc.GetByID(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("get: got %v, want ErrNotFound", err)
	}
	if _, err := svc.ConfirmPayment(42, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("confirm: got %v, want ErrNotFound", err)
	}
}
