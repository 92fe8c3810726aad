package controllers

import (
	"net/http"
	"strconv"

	"wisma-backend/services"
	"wisma-backend/utils"

	"github.com/gin-gonic/gin"
)

type TransactionController struct {
	TransactionSvc *services.TransactionService
}

func NewTransactionController(svc *services.TransactionService) *TransactionController {
	return &TransactionController{TransactionSvc: svc}
}

type ConfirmPaymentRequest struct {
	PaymentProofRef string `json:"payment_proof_ref"`
}

func transactionIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_id", "Transaction id must be a positive integer.")
		return 0, false
	}
	return uint(id), true
}

func (tc *TransactionController) GetTransactions(c *gin.Context) {
	list, err := tc.TransactionSvc.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (tc *TransactionController) GetTransactionByID(c *gin.Context) {
	id, ok := transactionIDParam(c)
	if !ok {
		return
	}

	transaction, err := tc.TransactionSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, transaction)
}

func (tc *TransactionController) ConfirmPayment(c *gin.Context) {
	id, ok := transactionIDParam(c)
	if !ok {
		return
	}

	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	transaction, err := tc.TransactionSvc.ConfirmPayment(id, req.PaymentProofRef)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, transaction)
}

func (tc *TransactionController) Refund(c *gin.Context) {
	id, ok := transactionIDParam(c)
	if !ok {
		return
	}

	transaction, err := tc.TransactionSvc.Refund(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, transaction)
}
