package controllers

import (
	"net/http"
	"strconv"

	"wisma-backend/services"
	"wisma-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	ReservationSvc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{ReservationSvc: svc}
}

// CreateReservationRequest mirrors the guest booking form.
type CreateReservationRequest struct {
	GuestName     string                   `json:"guest_name" binding:"required"`
	GuestPhone    string                   `json:"guest_phone"`
	GuestEmail    string                   `json:"guest_email" binding:"omitempty,email"`
	InstitutionID uint                     `json:"institution_id" binding:"required"`
	BuildingID    *uint                    `json:"building_id"`
	CheckIn       string                   `json:"check_in" binding:"required"`
	CheckOut      string                   `json:"check_out" binding:"required"`
	Headcount     int                      `json:"headcount" binding:"required,min=1"`
	DocumentRef   string                   `json:"document_ref"`
	GuestList     []map[string]interface{} `json:"guest_list,omitempty"`
}

func reservationIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_id", "Reservation id must be a positive integer.")
		return 0, false
	}
	return uint(id), true
}

func (rc *ReservationController) GetReservations(c *gin.Context) {
	list, err := rc.ReservationSvc.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, ok := reservationIDParam(c)
	if !ok {
		return
	}

	reservation, err := rc.ReservationSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	reservation, err := rc.ReservationSvc.Create(services.CreateReservationInput{
		GuestName:     req.GuestName,
		GuestPhone:    req.GuestPhone,
		GuestEmail:    req.GuestEmail,
		InstitutionID: req.InstitutionID,
		BuildingID:    req.BuildingID,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Headcount:     req.Headcount,
		DocumentRef:   req.DocumentRef,
		GuestList:     req.GuestList,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, reservation)
}

func (rc *ReservationController) CheckIn(c *gin.Context) {
	id, ok := reservationIDParam(c)
	if !ok {
		return
	}

	reservation, err := rc.ReservationSvc.CheckIn(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

func (rc *ReservationController) CheckOut(c *gin.Context) {
	id, ok := reservationIDParam(c)
	if !ok {
		return
	}

	reservation, err := rc.ReservationSvc.CheckOut(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

func (rc *ReservationController) Cancel(c *gin.Context) {
	id, ok := reservationIDParam(c)
	if !ok {
		return
	}

	reservation, err := rc.ReservationSvc.Cancel(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}
